// Package middleware holds the access gate that guards protected routes.
package middleware

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"machinehub/internal/auth"
	apperrors "machinehub/internal/errors"
	"machinehub/internal/model"
	"machinehub/internal/service"
)

const sessionContextKey = "session"

// Gate authenticates requests from the session cookie and enforces roles.
type Gate struct {
	auth     service.AuthService
	sessions *auth.SessionManager
	cookie   string
}

// NewGate creates an access gate reading the named session cookie.
func NewGate(authService service.AuthService, sessions *auth.SessionManager, cookieName string) *Gate {
	return &Gate{auth: authService, sessions: sessions, cookie: cookieName}
}

// RequireAuth admits requests carrying a valid, unrevoked session whose user
// still exists. The freshly loaded user is placed on the request context.
func (g *Gate) RequireAuth() echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + g.cookie,
		ContextKey:  sessionContextKey,
		ParseTokenFunc: func(_ echo.Context, token string) (interface{}, error) {
			return g.sessions.Parse(token)
		},
		ErrorHandler: func(_ echo.Context, _ error) error {
			return refuse(apperrors.ErrUnauthenticated)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			claims, ok := c.Get(sessionContextKey).(*auth.SessionClaims)
			if !ok {
				return refuse(apperrors.ErrUnauthenticated)
			}

			ctx := c.Request().Context()
			actor, err := g.auth.LoadActor(ctx, claims)
			if err != nil {
				return refuse(err)
			}
			c.SetRequest(c.Request().WithContext(auth.WithActor(ctx, actor)))
			return next(c)
		})
	}
}

// Identify attaches the caller when a usable session is present and lets every
// request through. Missing, invalid, revoked or orphaned sessions read as anonymous.
func (g *Gate) Identify() echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + g.cookie,
		ContextKey:  sessionContextKey,
		ParseTokenFunc: func(_ echo.Context, token string) (interface{}, error) {
			return g.sessions.Parse(token)
		},
		ErrorHandler: func(_ echo.Context, _ error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			claims, ok := c.Get(sessionContextKey).(*auth.SessionClaims)
			if !ok {
				return next(c)
			}

			ctx := c.Request().Context()
			if actor, err := g.auth.LoadActor(ctx, claims); err == nil {
				c.SetRequest(c.Request().WithContext(auth.WithActor(ctx, actor)))
			}
			return next(c)
		})
	}
}

// RequireRole authenticates first and then admits only the listed roles.
func (g *Gate) RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	authenticate := g.RequireAuth()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return authenticate(func(c echo.Context) error {
			actor, _ := auth.ActorFromContext(c.Request().Context())
			for _, role := range roles {
				if actor.User.Role == role {
					return next(c)
				}
			}
			return refuse(apperrors.ErrForbidden)
		})
	}
}

func refuse(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}
