package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ordersadmin.com/app/internal/audit"
)

const (
	MsgLoadFailed   = "Failed to load orders"
	MsgUpdateFailed = "Failed to update order status"
	MsgDeleteFailed = "Failed to delete order"
	MsgDeleted      = "Order deleted successfully!"
)

var (
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrMissingOrderID = errors.New("missing order id")
)

// API is the external order service as seen by the console.
type API interface {
	ListAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
	Delete(ctx context.Context, orderID string) error
}

type ViewState int

const (
	ViewLoading ViewState = iota
	ViewEmpty
	ViewPopulated
)

func (s ViewState) String() string {
	switch s {
	case ViewEmpty:
		return "empty"
	case ViewPopulated:
		return "populated"
	default:
		return "loading"
	}
}

// StateOf returns the list view for a fetched order list.
func StateOf(list []Order) ViewState {
	if len(list) == 0 {
		return ViewEmpty
	}
	return ViewPopulated
}

// Failure is a console operation error with the banner text to show for it.
type Failure struct {
	Msg string
	Err error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Msg + ": " + f.Err.Error()
	}
	return f.Msg
}

func (f *Failure) Unwrap() error { return f.Err }

type publicMessager interface {
	PublicMessage() string
}

// PublicMessage returns the service-provided message carried by err, or fallback.
func PublicMessage(err error, fallback string) string {
	var pm publicMessager
	if errors.As(err, &pm) {
		if msg := strings.TrimSpace(pm.PublicMessage()); msg != "" {
			return msg
		}
	}
	return fallback
}

func StatusUpdatedMsg(s Status) string {
	return fmt.Sprintf("Order status updated to %s!", s)
}

func DeletePrompt(orderNumber string) string {
	return fmt.Sprintf("Are you sure you want to delete order %s?", orderNumber)
}

type Console struct {
	api   API
	audit audit.Publisher
	log   *slog.Logger
	now   func() time.Time
}

func NewConsole(api API, pub audit.Publisher, l *slog.Logger) *Console {
	if l == nil {
		l = slog.Default()
	}
	if pub == nil {
		pub = audit.NewLogPublisher(l)
	}
	return &Console{api: api, audit: pub, log: l, now: time.Now}
}

// List fetches every order. The returned slice is never nil.
func (c *Console) List(ctx context.Context) ([]Order, error) {
	list, err := c.api.ListAll(ctx)
	if err != nil {
		c.log.LogAttrs(ctx, slog.LevelError, "orders_list_failed", slog.Any("err", err))
		return []Order{}, &Failure{Msg: PublicMessage(err, MsgLoadFailed), Err: err}
	}
	if list == nil {
		list = []Order{}
	}
	return list, nil
}

// ChangeStatus sets the order's status and returns the success banner text.
func (c *Console) ChangeStatus(ctx context.Context, actorID, orderID, raw string) (string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", &Failure{Msg: MsgUpdateFailed, Err: ErrMissingOrderID}
	}
	st, ok := ParseStatus(strings.TrimSpace(raw))
	if !ok {
		return "", &Failure{Msg: MsgUpdateFailed, Err: fmt.Errorf("%w: %q", ErrInvalidStatus, raw)}
	}

	if err := c.api.UpdateStatus(ctx, orderID, st); err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "order_status_update_failed",
			slog.String("order_id", orderID),
			slog.String("status", string(st)),
			slog.Any("err", err),
		)
		return "", &Failure{Msg: PublicMessage(err, MsgUpdateFailed), Err: err}
	}

	ev := audit.NewEvent(audit.TypeStatusChanged, orderID, actorID, c.now())
	ev.Status = string(st)
	c.publish(ctx, ev)

	return StatusUpdatedMsg(st), nil
}

// Delete removes the order and returns the success banner text.
// Callers must have collected the operator's confirmation first.
func (c *Console) Delete(ctx context.Context, actorID, orderID string) (string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", &Failure{Msg: MsgDeleteFailed, Err: ErrMissingOrderID}
	}

	if err := c.api.Delete(ctx, orderID); err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "order_delete_failed",
			slog.String("order_id", orderID),
			slog.Any("err", err),
		)
		return "", &Failure{Msg: PublicMessage(err, MsgDeleteFailed), Err: err}
	}

	c.publish(ctx, audit.NewEvent(audit.TypeDeleted, orderID, actorID, c.now()))
	return MsgDeleted, nil
}

// publish never fails the operation: the mutation already happened.
func (c *Console) publish(ctx context.Context, e audit.Event) {
	if err := c.audit.Publish(ctx, e); err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "audit_publish_failed",
			slog.String("type", e.Type),
			slog.String("order_id", e.OrderID),
			slog.Any("err", err),
		)
	}
}
