package http

import (
	"net/http"
	"strings"

	"tailorshop/internal/core/ports"
	"tailorshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the auth middleware stores the authenticated actor.
const actorContextKey = "tailorshop.actor"

// NewAuthMiddleware returns echo middleware that validates the bearer token
// on every request and stores the resulting actor in the request context.
// Requests without a valid token are rejected with 401.
func NewAuthMiddleware(provider ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			actor, err := provider.Authenticate(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid bearer token",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFromContext retrieves the actor placed by the auth middleware.
func actorFromContext(ctx echo.Context) (ports.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(ports.Actor)
	return actor, ok
}
