package models

import "time"

// Order status codes as the authority reports them.
const (
	OrderStatusPending  = "n"
	OrderStatusPaid     = "p"
	OrderStatusExpired  = "e"
	OrderStatusCanceled = "c"
)

// OrderPosition is one ticket of an order together with its known check-ins.
type OrderPosition struct {
	ID          int64
	OrderCode   string
	Status      string
	Secret      string
	ItemID      int64
	VariationID int64
	CheckIns    []CheckIn
}

// CheckIn is one historical entry or exit on a list.
type CheckIn struct {
	ListID     int64
	PositionID int64
	Secret     string
	Type       string
	Date       *time.Time
}
