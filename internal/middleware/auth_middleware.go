package middleware

import (
	"errors"
	"strings"

	autherrors "github.com/mirak10/PeopleIQ/internal/auth/errors"
	"github.com/mirak10/PeopleIQ/internal/domain"
	"github.com/mirak10/PeopleIQ/internal/shared/apperror"
	"github.com/mirak10/PeopleIQ/internal/shared/contextutil"
	"github.com/mirak10/PeopleIQ/internal/shared/response"
	"github.com/mirak10/PeopleIQ/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// TokenParser is satisfied by *token.Manager.
type TokenParser interface {
	Parse(raw string) (token.Identity, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		tokenString = strings.TrimSpace(tokenString)

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		identity, err := tokens.Parse(tokenString)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, token.ErrExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortWith(c, errObj)
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextRole, identity.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), identity.UserID)
		ctx = contextutil.WithRole(ctx, identity.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware rejects callers whose role is not in allowedRoles.
func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFrom(c)
		if !ok || !domain.Allowed(role, allowedRoles...) {
			abortWith(c, autherrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RoleFrom reads the role set by AuthMiddleware.
func RoleFrom(c *gin.Context) (domain.Role, bool) {
	v, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := v.(domain.Role)
	return role, ok && role.Valid()
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}
