package view

import "strings"

const (
	statusColorDefault = "#6b7280"

	// chipAlpha is appended to the hex color for the chip background only.
	chipAlpha = "20"
)

var statusColors = map[string]string{
	"pending":    "#f59e0b",
	"processing": "#3b82f6",
	"shipped":    "#8b5cf6",
	"delivered":  "#10b981",
	"cancelled":  "#ef4444",
}

// StatusColor maps an order status to its chip color. Unknown statuses are gray.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return statusColorDefault
}

type StatusChip struct {
	Label      string
	Color      string
	Background string
}

func NewStatusChip(status string) StatusChip {
	c := StatusColor(status)
	return StatusChip{
		Label:      strings.ToUpper(status),
		Color:      c,
		Background: c + chipAlpha,
	}
}
