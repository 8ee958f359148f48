package model

import (
	"time"

	"beautyhub/shared/clock"
	"beautyhub/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldStaffID    = "staff_id"
	FieldCustomerID = "customer_id"
	FieldCustomer   = "customer_name"
	FieldDate       = "date"
	FieldStartTime  = "start_time"
	FieldStatus     = "status"
)

// Reservation is a committed booking. Items are copied from the catalog at
// checkout so later price or duration edits never change it.
type Reservation struct {
	ID            string          `db:"id"`
	TenantID      string          `db:"tenant_id"`
	StaffID       string          `db:"staff_id"`
	CustomerID    string          `db:"customer_id"`
	CustomerName  string          `db:"customer_name"`
	CustomerEmail string          `db:"customer_email"`
	CustomerPhone string          `db:"customer_phone"`
	Items         Items           `db:"items"`
	Date          time.Time       `db:"date"`
	StartTime     int             `db:"start_time"`
	TotalDuration int             `db:"total_duration"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	Status        Status          `db:"status"`
	Notes         string          `db:"notes"`
	model.Metadata
}

func (r Reservation) GetTenantID() string {
	return r.TenantID
}

func (r Reservation) IsZero() bool {
	return r.ID == ""
}

// End is the first minute after the reservation.
func (r Reservation) End() int {
	return r.StartTime + r.TotalDuration
}

// Blocks reports whether the reservation still occupies its staff member's time.
func (r Reservation) Blocks() bool {
	return r.Status != StatusCancelled
}

// Overlaps reports whether both reservations hold the same staff member at
// intersecting times on the same date. Touching intervals do not overlap.
func (r Reservation) Overlaps(other Reservation) bool {
	if r.StaffID != other.StaffID || !clock.SameDate(r.Date, other.Date) {
		return false
	}

	return r.StartTime < other.End() && other.StartTime < r.End()
}

// Draft is what a finished cart hands to the ledger.
type Draft struct {
	StaffID       string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         Items
	Date          time.Time
	StartTime     int
	Notes         string
}
