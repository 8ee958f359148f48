package dto

import (
	"beautyhub/internal/domains/cart/model"
	"beautyhub/shared/clock"
)

type StartRequest struct {
	StaffID       string `json:"staff_id"       validate:"omitempty,uuid"`
	CustomerName  string `json:"customer_name"  validate:"omitempty,max=100"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,max=30"`
	Notes         string `json:"notes"          validate:"omitempty,max=500"`
}

type SelectStaffRequest struct {
	StaffID string `json:"staff_id" validate:"required,uuid"`
}

type AddServiceRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"omitempty,min=1,max=20"`
}

// UpdateItemRequest either sets the quantity or shifts it by Delta.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"omitempty,min=1,max=20"`
	Delta    int  `json:"delta"    validate:"omitempty,min=-20,max=20"`
}

type ChooseSlotRequest struct {
	Date string `json:"date" validate:"required,isodate"`
	Time string `json:"time" validate:"required,clock"`
}

type LineResponse struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Duration  int     `json:"duration"`
	Quantity  int     `json:"quantity"`
}

type SlotResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type CartResponse struct {
	ID            string         `json:"id"`
	TenantID      string         `json:"tenant_id"`
	State         string         `json:"state"`
	StaffID       string         `json:"staff_id,omitempty"`
	Lines         []LineResponse `json:"lines"`
	Slot          *SlotResponse  `json:"slot,omitempty"`
	TotalPrice    float64        `json:"total_price"`
	TotalDuration int            `json:"total_duration"`
	Notes         string         `json:"notes,omitempty"`
}

func (r *CartResponse) FromModel(cart model.Cart) {
	r.ID = cart.ID
	r.TenantID = cart.TenantID
	r.State = string(cart.State())
	r.StaffID = cart.StaffID
	r.TotalPrice = cart.TotalPrice.InexactFloat64()
	r.TotalDuration = cart.TotalDuration
	r.Notes = cart.Notes

	r.Lines = make([]LineResponse, len(cart.Lines))
	for i, line := range cart.Lines {
		r.Lines[i] = LineResponse{
			ServiceID: line.ServiceID,
			Name:      line.Name,
			Price:     line.Price.InexactFloat64(),
			Duration:  line.Duration,
			Quantity:  line.Quantity,
		}
	}

	if cart.Slot != nil {
		r.Slot = &SlotResponse{
			Date: clock.FormatDate(cart.Slot.Date),
			Time: clock.Format(cart.Slot.StartTime),
		}
	}
}
