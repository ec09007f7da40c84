package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersadmin.com/app/internal/http/flash"
	"ordersadmin.com/app/internal/http/middleware"
	"ordersadmin.com/app/pkg/view"
)

// RedirectWithFlash sets f as the one-shot banner and redirects (Post/Redirect/Get).
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, f view.Flash) {
	middleware.SetFlashCookie(c, codec, f)
	c.Redirect(http.StatusSeeOther, location)
	c.Abort()
}
