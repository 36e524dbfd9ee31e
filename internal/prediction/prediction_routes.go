package prediction

import (
	"github.com/mirak10/PeopleIQ/internal/middleware"
	"github.com/mirak10/PeopleIQ/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	tokens middleware.TokenParser,
	logger *zap.Logger,
) {
	authorize := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, rbac.ResourcePrediction, action)
	}

	predictions := r.Group("/predictions")
	predictions.Use(middleware.AuthMiddleware(tokens))
	predictions.Use(middleware.ContextLogger(logger))
	predictions.Use(middleware.RateLimitByUser(5, 20))
	{
		predictions.GET("/summary", authorize(rbac.ActionSummary), handler.Summary)
		predictions.GET("/alerts", authorize(rbac.ActionAlerts), handler.Alerts)
		predictions.GET("/turnover", authorize(rbac.ActionTurnover), handler.Turnover)
		predictions.GET("/performance", authorize(rbac.ActionPerformance), handler.Performance)
		predictions.GET("/absenteeism", authorize(rbac.ActionAbsenteeism), handler.Absenteeism)
		predictions.GET("/recommendations", authorize(rbac.ActionRecommendations), handler.Recommendations)
		predictions.GET("/department/:dept", authorize(rbac.ActionDepartment), handler.ByDepartment)
		predictions.GET("/:employeeCode", authorize(rbac.ActionDetail), handler.ByEmployeeCode)
		predictions.GET("", authorize(rbac.ActionList), handler.List)
	}
}
