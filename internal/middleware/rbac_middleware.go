package middleware

import (
	autherrors "github.com/mirak10/PeopleIQ/internal/auth/errors"
	"github.com/mirak10/PeopleIQ/internal/domain"
	"github.com/mirak10/PeopleIQ/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// RBACService is any policy store that answers (role, resource, action).
type RBACService interface {
	Enforce(role domain.Role, resource, action string) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFrom(c)
		if !ok {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			abortWith(c, apperror.ErrInternal.WithErr(err))
			return
		}

		if !allowed {
			abortWith(c, autherrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
