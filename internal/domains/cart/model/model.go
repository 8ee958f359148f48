package model

import (
	"slices"
	"time"

	reservationModel "beautyhub/internal/domains/reservation/model"
	"beautyhub/shared/clock"
	"beautyhub/shared/failure"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "cart"

	FieldStaffID   = "staff_id"
	FieldServiceID = "service_id"
	FieldQuantity  = "quantity"
	FieldItems     = "items"
	FieldSlot      = "slot"
	FieldCart      = "cart_id"
)

type State string

const (
	StateEmpty    State = "empty"
	StateBuilding State = "building"
	StateReady    State = "ready"
)

// Line is one service in the cart, priced when it was added.
type Line struct {
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Duration  int             `json:"duration"`
	Quantity  int             `json:"quantity"`
}

// Slot is the tentative date and start minute picked from availability.
type Slot struct {
	Date      time.Time `json:"date"`
	StartTime int       `json:"start_time"`
}

// Cart is a customer's booking in progress. It never touches the ledger
// until Checkout; abandoning it leaves no trace.
type Cart struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	Notes         string          `json:"notes"`
	StaffID       string          `json:"staff_id"`
	Lines         []Line          `json:"lines"`
	Slot          *Slot           `json:"slot,omitempty"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	TotalDuration int             `json:"total_duration"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (c *Cart) IsZero() bool {
	return c.ID == ""
}

// State is derived: no staff member means empty, a chosen slot means ready.
func (c *Cart) State() State {
	switch {
	case c.StaffID == "":
		return StateEmpty
	case c.Slot != nil:
		return StateReady
	default:
		return StateBuilding
	}
}

// SelectStaff picks who performs the services. Switching to someone else
// drops the slot, which was only free for the previous staff member.
func (c *Cart) SelectStaff(staffID string) error {
	if staffID == "" {
		return failure.InvalidInput(FieldStaffID, "a staff member is required")
	}

	if c.StaffID != staffID {
		c.Slot = nil
	}

	c.StaffID = staffID

	return nil
}

// Add puts a service in the cart, or one more of it if already present.
func (c *Cart) Add(line Line) error {
	if c.State() == StateEmpty {
		return failure.InvalidInput(FieldStaffID, "select a staff member first")
	}

	if line.ServiceID == "" {
		return failure.InvalidInput(FieldServiceID, "a service is required")
	}

	if line.Quantity <= 0 {
		line.Quantity = 1
	}

	c.mutate(func() {
		if i := c.find(line.ServiceID); i >= 0 {
			c.Lines[i].Quantity += line.Quantity

			return
		}

		c.Lines = append(c.Lines, line)
	})

	return nil
}

// Adjust changes a line's quantity by delta. Reaching zero removes the line.
func (c *Cart) Adjust(serviceID string, delta int) error {
	i := c.find(serviceID)
	if i < 0 {
		return failure.NotFoundField(FieldServiceID, "service is not in the cart")
	}

	c.mutate(func() {
		c.Lines[i].Quantity += delta
		if c.Lines[i].Quantity <= 0 {
			c.Lines = slices.Delete(c.Lines, i, i+1)
		}
	})

	return nil
}

// SetQuantity replaces a line's quantity. Use Remove to drop a line.
func (c *Cart) SetQuantity(serviceID string, quantity int) error {
	if quantity < 1 {
		return failure.InvalidInput(FieldQuantity, "quantity must be at least 1")
	}

	i := c.find(serviceID)
	if i < 0 {
		return failure.NotFoundField(FieldServiceID, "service is not in the cart")
	}

	c.mutate(func() {
		c.Lines[i].Quantity = quantity
	})

	return nil
}

func (c *Cart) Remove(serviceID string) error {
	i := c.find(serviceID)
	if i < 0 {
		return failure.NotFoundField(FieldServiceID, "service is not in the cart")
	}

	c.mutate(func() {
		c.Lines = slices.Delete(c.Lines, i, i+1)
	})

	return nil
}

// CanChooseSlot reports why the cart cannot take a slot yet, if it cannot.
func (c *Cart) CanChooseSlot() error {
	if c.State() == StateEmpty {
		return failure.InvalidInput(FieldStaffID, "select a staff member first")
	}

	if len(c.Lines) == 0 {
		return failure.InvalidInput(FieldItems, "add at least one service before choosing a time")
	}

	return nil
}

// ChooseSlot moves the cart to ready. The caller checks the slot against
// availability for the current total duration.
func (c *Cart) ChooseSlot(date time.Time, startTime int) error {
	if err := c.CanChooseSlot(); err != nil {
		return err
	}

	c.Slot = &Slot{Date: clock.Date(date), StartTime: startTime}

	return nil
}

// ClearSlot sends a ready cart back to building.
func (c *Cart) ClearSlot() {
	c.Slot = nil
}

// Checkout turns a ready cart into a ledger draft.
func (c *Cart) Checkout() (reservationModel.Draft, error) {
	if len(c.Lines) == 0 {
		return reservationModel.Draft{}, failure.InvalidInput(FieldItems, "the cart is empty")
	}

	if c.State() != StateReady {
		return reservationModel.Draft{}, failure.InvalidInput(FieldSlot, "choose a date and time first")
	}

	items := make(reservationModel.Items, len(c.Lines))
	for i, line := range c.Lines {
		items[i] = reservationModel.Item(line)
	}

	return reservationModel.Draft{
		StaffID:       c.StaffID,
		CustomerID:    c.CustomerID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		Items:         items,
		Date:          c.Slot.Date,
		StartTime:     c.Slot.StartTime,
		Notes:         c.Notes,
	}, nil
}

// mutate applies a line change, recomputes totals and drops the slot when
// the total duration moved.
func (c *Cart) mutate(change func()) {
	before := c.TotalDuration

	change()
	c.recompute()

	if c.TotalDuration != before {
		c.Slot = nil
	}
}

func (c *Cart) recompute() {
	c.TotalPrice = decimal.Zero
	c.TotalDuration = 0

	for _, line := range c.Lines {
		c.TotalPrice = c.TotalPrice.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		c.TotalDuration += line.Duration * line.Quantity
	}
}

func (c *Cart) find(serviceID string) int {
	return slices.IndexFunc(c.Lines, func(line Line) bool { return line.ServiceID == serviceID })
}
