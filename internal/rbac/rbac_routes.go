package rbac

import (
	"github.com/mirak10/PeopleIQ/internal/domain"
	"github.com/mirak10/PeopleIQ/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	service Service,
	tokens middleware.TokenParser,
	logger *zap.Logger,
) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(tokens))
	group.Use(middleware.ContextLogger(logger))
	group.Use(middleware.RateLimitByUser(5, 20))
	{
		group.GET("/policies", middleware.RBACAuthorize(service, ResourceRBAC, ActionRead), handler.ListPolicies)
		// Admin only, checked without casbin.
		group.POST("/enforce", middleware.RoleMiddleware(domain.RoleAdmin), handler.Enforce)
		group.GET("/fields", middleware.RBACAuthorize(service, ResourceField, ActionRead), handler.MyFields)
	}
}
