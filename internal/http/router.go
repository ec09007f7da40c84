package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ordersadmin.com/app/internal/http/flash"
	"ordersadmin.com/app/internal/http/handlers/admin"
	"ordersadmin.com/app/internal/http/middleware"
	"ordersadmin.com/app/internal/modules/orders"
	"ordersadmin.com/app/internal/session"
	"ordersadmin.com/app/internal/shared/apperr"
)

type RouterDeps struct {
	Logger   *slog.Logger
	Console  *orders.Console
	Flash    *flash.Codec
	Sessions session.Lookup

	// CSRFKey enables CSRF protection on admin forms when set.
	CSRFKey      []byte
	CookieSecure bool

	LoginPath     string
	HomePath      string
	DashboardPath string
	BannerTTL     time.Duration

	Now func() time.Time
}

func NewRouter(d RouterDeps) *gin.Engine {
	l := d.Logger
	if l == nil {
		l = slog.Default()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(l, "/healthz"))
	r.Use(middleware.ErrorHandler(l))
	r.Use(middleware.Recovery(l))
	r.Use(middleware.FlashMiddleware(d.Flash, d.Now))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.NoRoute(func(c *gin.Context) {
		middleware.Fail(c, apperr.NotFoundErr("Page not found."))
	})

	ah := admin.NewOrdersHandler(d.Console, d.Flash, d.DashboardPath, l)
	if d.BannerTTL > 0 {
		ah.BannerTTL = d.BannerTTL
	}
	if d.Now != nil {
		ah.Now = d.Now
	}

	g := r.Group("/admin")
	if len(d.CSRFKey) > 0 {
		g.Use(middleware.CSRF(d.CSRFKey, d.CookieSecure))
	}
	g.Use(middleware.RequireAdmin(middleware.AdminCfg{
		Sessions:  d.Sessions,
		LoginPath: d.LoginPath,
		HomePath:  d.HomePath,
	}))
	{
		g.GET("/orders", ah.List)
		g.POST("/orders/:id/status", ah.UpdateStatus)
		g.POST("/orders/:id/delete", ah.Delete)
	}

	return r
}
