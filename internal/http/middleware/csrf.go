package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const (
	CtxKeyCSRF    = "csrf_token"
	CSRFFieldName = "csrf_token"
)

// CSRF wraps gorilla/csrf for gin. Forms post the token in CSRFFieldName.
func CSRF(key []byte, secure bool) gin.HandlerFunc {
	protect := csrf.Protect(key,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.FieldName(CSRFFieldName),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid csrf token", http.StatusForbidden)
		})),
	)

	return func(c *gin.Context) {
		passed := false

		protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Set(CtxKeyCSRF, csrf.Token(r))
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)

		if !passed {
			c.Abort()
		}
	}
}

func GetCSRFToken(c *gin.Context) string {
	return c.GetString(CtxKeyCSRF)
}
