package echoconsole

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/auth"
)

const (
	sessionCookie     = "session"
	contextSessionKey = "session"
)

// sessionMiddleware lets through requests carrying a valid session cookie and sends the others to the login page.
func (s *server) sessionMiddleware() echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey:    []byte(s.deps.Conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextSessionKey,
		Claims:        new(auth.Claims),
		TokenLookup:   "cookie:" + sessionCookie,
		ErrorHandlerWithContext: func(_ error, ctx echo.Context) error {
			target := "/login"
			if next := ctx.Request().URL.RequestURI(); next != "/" {
				target += "?next=" + url.QueryEscape(next)
			}
			return ctx.Redirect(http.StatusSeeOther, target)
		},
	})
}

func contextClaims(ctx echo.Context) (*auth.Claims, bool) {
	if token, ok := ctx.Get(contextSessionKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*auth.Claims); ok {
			return claims, true
		}
	}
	return nil, false
}

func contextPerson(ctx echo.Context) core.Person {
	if claims, ok := contextClaims(ctx); ok {
		return claims.Person()
	}
	return core.Person{}
}

// safeNext keeps redirects after login on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/login") {
		return "/"
	}
	return next
}

func (s *server) loginPage(ctx echo.Context) error {
	// already signed in
	if cookie, err := ctx.Cookie(sessionCookie); err == nil {
		if _, err := auth.ParseToken(cookie.Value, []byte(s.deps.Conf.SecretKey)); err == nil {
			return ctx.Redirect(http.StatusSeeOther, safeNext(ctx.QueryParam("next")))
		}
	}
	return ctx.Render(http.StatusOK, "login", loginView{
		shell: s.newShell(ctx, "Đăng nhập", ""),
		Next:  ctx.QueryParam("next"),
	})
}

func (s *server) login(ctx echo.Context) error {
	var data auth.LoginForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginForm")
	}
	view := loginView{
		shell:    s.newShell(ctx, "Đăng nhập", ""),
		Username: data.Username,
		Next:     ctx.FormValue("next"),
	}

	if err := data.Validate(s.deps.Validate, s.deps.Translator); err != nil {
		vErr, ok := errors.Cause(err).(*core.ValidationError)
		if !ok {
			return errors.Wrap(err, "validating LoginForm")
		}
		view.Username = data.Username
		view.Errors = vErr.Map()
		return ctx.Render(http.StatusUnprocessableEntity, "login", view)
	}

	if err := s.deps.Admin.Authenticate(data.Username, data.Password); err != nil {
		s.deps.Logger.Warn("failed login", map[string]interface{}{"username": data.Username, "ip": ctx.RealIP()})
		view.Error = err.Error()
		return ctx.Render(http.StatusUnauthorized, "login", view)
	}

	expiresIn := s.deps.Conf.Server.SessionExpirationDelta
	token, err := auth.GenerateToken(auth.NewClaims(s.deps.Admin, s.deps.Conf.AppName, expiresIn), []byte(s.deps.Conf.SecretKey))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(expiresIn.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.deps.Logger.Info("logged in", s.deps.Admin.Person())
	return ctx.Redirect(http.StatusSeeOther, safeNext(view.Next))
}

func (s *server) logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return ctx.Redirect(http.StatusSeeOther, "/login")
}
