package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// mockorderapi serves an in-memory order service for running the console locally.
//
//	go run ./cmd/tools/mockorderapi -addr :5000
//	ORDER_API_BASE_URL=http://localhost:5000/api
type item struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
}

type order struct {
	ID              string    `json:"_id"`
	OrderNumber     string    `json:"orderNumber"`
	UserID          string    `json:"userId"`
	Items           []item    `json:"items"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	ShippingAddress *address  `json:"shippingAddress,omitempty"`
}

type store struct {
	mu     sync.Mutex
	orders []order
}

var statuses = map[string]bool{
	"pending": true, "processing": true, "shipped": true, "delivered": true, "cancelled": true,
}

func main() {
	addr := flag.String("addr", ":5000", "Listen address")
	token := flag.String("token", "", "Require this bearer token (empty: any)")
	count := flag.Int("orders", 5, "Number of seeded orders")

	flag.Parse()

	s := &store{orders: seed(*count)}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api", requireToken(*token))
	api.GET("/orders/admin/all", s.list)
	api.PUT("/orders/:id/status", s.updateStatus)
	api.DELETE("/orders/:id", s.delete)

	log.Printf("mock order api listening on %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Fatal(err)
	}
}

func requireToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token != "" && c.GetHeader("Authorization") != "Bearer "+token {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied. Admin only."})
			return
		}
		c.Next()
	}
}

func (s *store) list(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": s.orders})
}

func (s *store) updateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || !statuses[in.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == c.Param("id") {
			s.orders[i].Status = in.Status
			c.JSON(http.StatusOK, gin.H{"success": true, "data": s.orders[i]})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
}

func (s *store) delete(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != c.Param("id") {
			continue
		}
		if s.orders[i].Status == "shipped" {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Cannot delete a shipped order"})
			return
		}
		s.orders = append(s.orders[:i], s.orders[i+1:]...)
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
}

func seed(n int) []order {
	products := []item{
		{ProductName: "Laptop", Quantity: 1, Price: 1200},
		{ProductName: "Mouse", Quantity: 2, Price: 25.5},
		{ProductName: "Keyboard", Quantity: 1, Price: 79.99},
		{ProductName: "Monitor", Quantity: 1, Price: 349},
	}
	cycle := []string{"pending", "processing", "shipped", "delivered", "cancelled"}

	out := make([]order, 0, n)
	for i := 0; i < n; i++ {
		items := products[:1+i%len(products)]
		var total float64
		for _, it := range items {
			total += it.Price * float64(it.Quantity)
		}
		o := order{
			ID:            strings.ReplaceAll(uuid.NewString(), "-", "")[:24],
			OrderNumber:   fmt.Sprintf("ORD-%d", 1001+i),
			UserID:        uuid.NewString(),
			Items:         items,
			TotalAmount:   total,
			Status:        cycle[i%len(cycle)],
			PaymentStatus: "paid",
			CreatedAt:     time.Now().Add(-time.Duration(i) * 26 * time.Hour).UTC(),
		}
		if i%2 == 0 {
			o.ShippingAddress = &address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "USA", Phone: "555-0100"}
		}
		out = append(out, o)
	}
	return out
}
