package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"ordersadmin.com/app/internal/http/flash"
	"ordersadmin.com/app/internal/http/middleware"
	"ordersadmin.com/app/internal/http/render"
	"ordersadmin.com/app/internal/http/validation"
	"ordersadmin.com/app/internal/modules/orders"
	"ordersadmin.com/app/internal/orderapi"
	"ordersadmin.com/app/internal/shared/apperr"
	"ordersadmin.com/app/pkg/view"
	"ordersadmin.com/app/templates/pages"
)

const (
	ListPath = "/admin/orders"

	previewItems = 2
)

type OrdersHandler struct {
	Console       *orders.Console
	Flash         *flash.Codec
	DashboardPath string
	BannerTTL     time.Duration
	Log           *slog.Logger
	Now           func() time.Time
}

func NewOrdersHandler(console *orders.Console, codec *flash.Codec, dashboardPath string, l *slog.Logger) *OrdersHandler {
	if l == nil {
		l = slog.Default()
	}
	return &OrdersHandler{
		Console:       console,
		Flash:         codec,
		DashboardPath: dashboardPath,
		BannerTTL:     view.BannerTTL,
		Log:           l,
		Now:           time.Now,
	}
}

// List renders the console: GET /admin/orders[?view=<id>|?confirm_delete=<id>]
func (h *OrdersHandler) List(c *gin.Context) {
	now := h.now()
	var banners []view.Banner
	if b := middleware.GetFlash(c).Banner(now); b != nil {
		banners = append(banners, *b)
	}

	// a failed re-fetch after a mutation keeps the mutation's banner and adds its own
	list, err := h.Console.List(h.ctx(c))
	if err != nil {
		fail := view.Flash{Kind: view.FlashError, Message: failureMsg(err, orders.MsgLoadFailed), Persistent: true}
		banners = append(banners, *fail.Banner(now))
	}

	p := view.AdminOrdersListPage{
		State:         orders.StateOf(list).String(),
		Count:         len(list),
		Items:         lo.Map(list, func(o orders.Order, _ int) view.AdminOrderListItem { return listItem(o) }),
		Statuses:      statusOptions(),
		DashboardPath: h.DashboardPath,
	}

	if id := strings.TrimSpace(c.Query("view")); id != "" {
		if o, ok := orders.Find(list, id); ok {
			d := detail(o)
			p.Detail = &d
		}
	}
	if id := strings.TrimSpace(c.Query("confirm_delete")); id != "" {
		if o, ok := orders.Find(list, id); ok {
			p.Confirm = &view.AdminDeleteConfirm{
				ID:     o.ID,
				Number: o.OrderNumber,
				Prompt: orders.DeletePrompt(o.OrderNumber),
			}
		}
	}

	render.Component(c, http.StatusOK, pages.AdminOrdersList(banners, middleware.GetCSRFToken(c), p))
}

type statusForm struct {
	Status string `form:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// UpdateStatus: POST /admin/orders/:id/status
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var in statusForm
	if err := c.ShouldBind(&in); err != nil {
		fields := validation.FromBindError(err, &in)
		if middleware.WantsJSON(c) {
			middleware.Fail(c, apperr.InvalidErr(orders.MsgUpdateFailed, fields))
			return
		}
		h.Log.LogAttrs(c.Request.Context(), slog.LevelWarn, "order_status_form_invalid",
			slog.String("order_id", id),
			slog.Any("fields", fields),
		)
		h.redirect(c, view.FlashError, orders.MsgUpdateFailed)
		return
	}

	msg, err := h.Console.ChangeStatus(h.ctx(c), h.actorID(c), id, in.Status)
	if err != nil {
		h.redirect(c, view.FlashError, failureMsg(err, orders.MsgUpdateFailed))
		return
	}
	h.redirect(c, view.FlashSuccess, msg)
}

// Delete: POST /admin/orders/:id/delete
// Only acts when the confirmation dialog posted confirm=1.
func (h *OrdersHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if c.PostForm("confirm") != "1" {
		c.Redirect(http.StatusSeeOther, ListPath)
		return
	}

	msg, err := h.Console.Delete(h.ctx(c), h.actorID(c), id)
	if err != nil {
		h.redirect(c, view.FlashError, failureMsg(err, orders.MsgDeleteFailed))
		return
	}
	h.redirect(c, view.FlashSuccess, msg)
}

func (h *OrdersHandler) redirect(c *gin.Context, kind view.FlashKind, msg string) {
	ttl := h.BannerTTL
	if ttl <= 0 {
		ttl = view.BannerTTL
	}
	render.RedirectWithFlash(c, h.Flash, ListPath, view.NewFlash(kind, msg, h.now(), ttl))
}

// ctx forwards the operator's bearer token to the order service.
func (h *OrdersHandler) ctx(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if s, ok := middleware.CurrentSession(c); ok && s.Token != "" {
		ctx = orderapi.WithToken(ctx, s.Token)
	}
	return ctx
}

func (h *OrdersHandler) actorID(c *gin.Context) string {
	s, _ := middleware.CurrentSession(c)
	return s.UserID
}

func (h *OrdersHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func failureMsg(err error, fallback string) string {
	var f *orders.Failure
	if errors.As(err, &f) && f.Msg != "" {
		return f.Msg
	}
	return fallback
}

func statusOptions() []view.StatusOption {
	return lo.Map(orders.Statuses, func(s orders.Status, _ int) view.StatusOption {
		return view.StatusOption{Value: string(s), Label: s.Label()}
	})
}

func listItem(o orders.Order) view.AdminOrderListItem {
	preview := lo.Map(lo.Slice(o.Items, 0, previewItems), func(it orders.OrderItem, _ int) view.AdminOrderItemPreview {
		return view.AdminOrderItemPreview{ProductName: it.ProductName, Qty: it.Quantity}
	})
	return view.AdminOrderListItem{
		ID:            o.ID,
		Number:        o.OrderNumber,
		ShortUserID:   view.ShortID(o.UserID),
		ItemCount:     len(o.Items),
		Preview:       preview,
		MoreItems:     max(len(o.Items)-previewItems, 0),
		Total:         view.Money(o.TotalAmount),
		Status:        string(o.Status),
		Chip:          view.NewStatusChip(string(o.Status)),
		PaymentStatus: o.PaymentStatus,
		Date:          view.DateOnly(o.CreatedAt),
		Time:          view.TimeOnly(o.CreatedAt),
	}
}

func detail(o orders.Order) view.AdminOrderDetail {
	d := view.AdminOrderDetail{
		ID:            o.ID,
		Number:        o.OrderNumber,
		Chip:          view.NewStatusChip(string(o.Status)),
		CreatedAt:     view.DateTime(o.CreatedAt),
		PaymentStatus: o.PaymentStatus,
		Total:         view.Money(o.TotalAmount),
		Items: lo.Map(o.Items, func(it orders.OrderItem, _ int) view.AdminOrderItem {
			return view.AdminOrderItem{
				ProductName: it.ProductName,
				Qty:         it.Quantity,
				Unit:        view.Money(it.Price),
				Line:        view.Money(it.LineTotal()),
			}
		}),
	}
	if a := o.ShippingAddress; a != nil {
		d.Address = &view.AdminAddress{
			Street:  a.Street,
			City:    a.City,
			State:   a.State,
			ZipCode: a.ZipCode,
			Country: a.Country,
			Phone:   a.Phone,
		}
	}
	return d
}
