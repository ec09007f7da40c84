// Package pages holds the server-rendered pages of the admin console.
// Each page is an html/template set over a shared layout, exposed as a templ.Component.
package pages

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/a-h/templ"

	"ordersadmin.com/app/pkg/view"
)

//go:embed html/*.html
var files embed.FS

var (
	adminOrdersTmpl = parse("html/admin_orders.html")
	errorTmpl       = parse("html/error.html")
)

func parse(page string) *template.Template {
	return template.Must(template.New("").ParseFS(files, "html/layout.html", page))
}

type adminOrdersData struct {
	Banners   []view.Banner
	CSRFToken string
	Page      view.AdminOrdersListPage
}

// AdminOrdersList renders the order management console. Banners are shown in order.
func AdminOrdersList(banners []view.Banner, csrfToken string, p view.AdminOrdersListPage) templ.Component {
	return templ.FromGoHTML(adminOrdersTmpl.Lookup("layout"), adminOrdersData{
		Banners:   banners,
		CSRFToken: csrfToken,
		Page:      p,
	})
}

type errorData struct {
	Status     int
	StatusText string
	Message    string
	RequestID  string
}

func Error(status int, msg, requestID string) templ.Component {
	return templ.FromGoHTML(errorTmpl.Lookup("layout"), errorData{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    msg,
		RequestID:  requestID,
	})
}
