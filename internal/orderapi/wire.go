package orderapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"ordersadmin.com/app/internal/modules/orders"
)

var validate = validator.New()

type wireOrder struct {
	MongoID         string          `json:"_id"`
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          string          `json:"userId"`
	Items           []wireItem      `json:"items" validate:"dive"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShippingAddress *wireAddress    `json:"shippingAddress"`
}

type wireItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity" validate:"gte=1"`
	Price       decimal.Decimal `json:"price"`
}

type wireAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

var (
	errNoID          = errors.New("order has no id")
	errNegativePrice = errors.New("item price is negative")
)

func (w wireOrder) id() string {
	if w.MongoID != "" {
		return w.MongoID
	}
	return w.ID
}

func (w wireOrder) check() error {
	if strings.TrimSpace(w.id()) == "" {
		return errNoID
	}
	if err := validate.Struct(w); err != nil {
		return err
	}
	for _, it := range w.Items {
		if it.Price.IsNegative() {
			return errNegativePrice
		}
	}
	return nil
}

// decode turns one wire record into an order. Records that cannot be decoded or acted on
// are dropped and logged; unknown statuses are kept as orders.StatusUnknown.
func (c *Client) decode(ctx context.Context, index int, rec gjson.Result) (orders.Order, bool) {
	var w wireOrder
	err := json.Unmarshal([]byte(rec.Raw), &w)
	if err == nil {
		err = w.check()
	}
	if err != nil {
		id := rec.Get("_id").String()
		if id == "" {
			id = rec.Get("id").String()
		}
		c.log.LogAttrs(ctx, slog.LevelWarn, "order_record_rejected",
			slog.Int("index", index),
			slog.String("order_id", id),
			slog.Any("err", err),
		)
		return orders.Order{}, false
	}

	st, ok := orders.ParseStatus(w.Status)
	if !ok {
		c.log.LogAttrs(ctx, slog.LevelWarn, "order_status_unknown",
			slog.String("order_id", w.id()),
			slog.String("status", w.Status),
		)
	}

	o := orders.Order{
		ID:            w.id(),
		OrderNumber:   w.OrderNumber,
		UserID:        w.UserID,
		Items:         make([]orders.OrderItem, 0, len(w.Items)),
		TotalAmount:   w.TotalAmount,
		Status:        st,
		PaymentStatus: w.PaymentStatus,
		CreatedAt:     w.CreatedAt,
	}
	for _, it := range w.Items {
		o.Items = append(o.Items, orders.OrderItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	if a := w.ShippingAddress; a != nil {
		o.ShippingAddress = &orders.Address{
			Street:  a.Street,
			City:    a.City,
			State:   a.State,
			ZipCode: a.ZipCode,
			Country: a.Country,
			Phone:   a.Phone,
		}
	}
	return o, true
}
