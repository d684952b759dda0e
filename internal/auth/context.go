package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"

	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Actor is the authenticated caller, as asserted by the upstream identity
// service. This service trusts the gateway's headers and only enforces roles.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) IsAdmin() bool  { return a.Role == RoleAdmin }
func (a Actor) IsSeller() bool { return a.Role == RoleSeller || a.Role == RoleAdmin }

type actorKey struct{}

// Middleware copies the identity headers into the request context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor{
			UserID: c.GetHeader(headerUserID),
			Role:   c.GetHeader(headerUserRole),
		}
		ctx := context.WithValue(c.Request.Context(), actorKey{}, actor)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin rejects the request unless the actor holds the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFromContext(c.Request.Context()).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"success": false, "error": "administrator role required"})
			return
		}
		c.Next()
	}
}

// RequireSeller admits sellers and admins.
func RequireSeller() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFromContext(c.Request.Context()).IsSeller() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"success": false, "error": "seller role required"})
			return
		}
		c.Next()
	}
}

func ActorFromContext(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey{}).(Actor)
	return actor
}

// WithActor is used by tests and the event listener to run as a known actor.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}
