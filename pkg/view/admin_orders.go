package view

type AdminOrderItemPreview struct {
	ProductName string
	Qty         int
}

type AdminOrderListItem struct {
	ID            string
	Number        string
	ShortUserID   string
	ItemCount     int
	Preview       []AdminOrderItemPreview
	MoreItems     int
	Total         string
	Status        string
	Chip          StatusChip
	PaymentStatus string
	Date          string
	Time          string
}

type StatusOption struct {
	Value string
	Label string
}

type AdminOrderItem struct {
	ProductName string
	Qty         int
	Unit        string
	Line        string
}

type AdminAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
	Phone   string
}

type AdminOrderDetail struct {
	ID            string
	Number        string
	Chip          StatusChip
	CreatedAt     string
	PaymentStatus string
	Items         []AdminOrderItem
	Total         string
	Address       *AdminAddress
}

type AdminDeleteConfirm struct {
	ID     string
	Number string
	Prompt string
}

// AdminOrdersListPage is the whole order console. Items is empty when State is "empty".
type AdminOrdersListPage struct {
	State         string
	Count         int
	Items         []AdminOrderListItem
	Statuses      []StatusOption
	Detail        *AdminOrderDetail
	Confirm       *AdminDeleteConfirm
	DashboardPath string
}
