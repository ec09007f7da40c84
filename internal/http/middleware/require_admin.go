package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"ordersadmin.com/app/internal/session"
	"ordersadmin.com/app/internal/shared/apperr"
)

const CtxKeySession = "session"

type AdminCfg struct {
	Sessions  session.Lookup
	LoginPath string
	HomePath  string
}

// RequireAdmin:
// - no session: redirect to login with return_to (JSON: 401)
// - session without admin role: redirect home (JSON: 403)
// Neither case sets a banner.
func RequireAdmin(cfg AdminCfg) gin.HandlerFunc {
	login := cfg.LoginPath
	if login == "" {
		login = "/login"
	}
	home := cfg.HomePath
	if home == "" {
		home = "/"
	}

	return func(c *gin.Context) {
		s, ok := cfg.Sessions.Lookup(c.Request)
		if !ok {
			if WantsJSON(c) {
				Fail(c, apperr.UnauthorizedErr("Authentication required."))
				return
			}

			returnTo := c.Request.URL.RequestURI()
			c.Redirect(http.StatusFound, login+"?return_to="+url.QueryEscape(returnTo))
			c.Abort()
			return
		}

		if !s.IsAdmin() {
			if WantsJSON(c) {
				Fail(c, apperr.ForbiddenErr("Admin access required."))
				return
			}

			c.Redirect(http.StatusFound, home)
			c.Abort()
			return
		}

		c.Set(CtxKeySession, s)
		c.Next()
	}
}

// CurrentSession returns the session RequireAdmin accepted.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(CtxKeySession)
	if !ok {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}
