package orders

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"

	// StatusUnknown stands in for any status value the console does not recognise.
	StatusUnknown Status = "unknown"
)

// Statuses lists the selectable statuses in display order.
var Statuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// ParseStatus returns the status for s and whether it is one of Statuses.
// Unrecognised values map to StatusUnknown.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return StatusUnknown, false
}

func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

type Order struct {
	ID              string
	OrderNumber     string
	UserID          string
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Status          Status
	PaymentStatus   string
	CreatedAt       time.Time
	ShippingAddress *Address
}

type OrderItem struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// LineTotal is price × quantity.
func (it OrderItem) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
	Phone   string
}

// Find returns the order with the given id from a fetched list.
func Find(list []Order, id string) (Order, bool) {
	return lo.Find(list, func(o Order) bool { return o.ID == id })
}
