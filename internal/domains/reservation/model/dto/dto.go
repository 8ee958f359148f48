package dto

import (
	"beautyhub/internal/domains/reservation/model"
	"beautyhub/shared"
	"beautyhub/shared/clock"
	gDto "beautyhub/shared/dto"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type RescheduleRequest struct {
	Date string `json:"date" validate:"required,isodate"`
	Time string `json:"time" validate:"required,clock"`
}

// ListRequest carries the optional listing filters of the shop's reservation board.
type ListRequest struct {
	Status     string `json:"status"      validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Date       string `json:"date"        validate:"omitempty,isodate"`
	From       string `json:"from"        validate:"omitempty,isodate"`
	To         string `json:"to"          validate:"omitempty,isodate"`
	StaffID    string `json:"staff_id"    validate:"omitempty,uuid"`
	CustomerID string `json:"customer_id" validate:"omitempty"`
	Customer   string `json:"customer"    validate:"omitempty,max=100"`
}

// ToFilter assumes the request passed validation.
func (r ListRequest) ToFilter() model.Filter {
	filter := model.Filter{
		Status:     model.Status(r.Status),
		StaffID:    r.StaffID,
		CustomerID: r.CustomerID,
		Customer:   r.Customer,
	}

	if date, err := clock.ParseDate(r.Date); err == nil {
		filter.Date = &date
	}

	if from, err := clock.ParseDate(r.From); err == nil {
		filter.From = &from
	}

	if to, err := clock.ParseDate(r.To); err == nil {
		filter.To = &to
	}

	return filter
}

type ItemResponse struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Duration  int     `json:"duration"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type ReservationResponse struct {
	ID            string         `json:"id"`
	TenantID      string         `json:"tenant_id"`
	StaffID       string         `json:"staff_id"`
	CustomerID    string         `json:"customer_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	CustomerPhone string         `json:"customer_phone"`
	Items         []ItemResponse `json:"items"`
	Date          string         `json:"date"`
	StartTime     string         `json:"start_time"`
	EndTime       string         `json:"end_time"`
	TotalDuration int            `json:"total_duration"`
	TotalPrice    float64        `json:"total_price"`
	Status        string         `json:"status"`
	Notes         string         `json:"notes"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(reservation model.Reservation) {
	r.ID = reservation.ID
	r.TenantID = reservation.TenantID
	r.StaffID = reservation.StaffID
	r.CustomerID = reservation.CustomerID
	r.CustomerName = reservation.CustomerName
	r.CustomerEmail = reservation.CustomerEmail
	r.CustomerPhone = reservation.CustomerPhone
	r.Date = clock.FormatDate(reservation.Date)
	r.StartTime = clock.Format(reservation.StartTime)
	r.EndTime = clock.Format(reservation.End())
	r.TotalDuration = reservation.TotalDuration
	r.TotalPrice = reservation.TotalPrice.InexactFloat64()
	r.Status = string(reservation.Status)
	r.Notes = reservation.Notes
	r.Metadata.FromModel(reservation.Metadata)

	r.Items = make([]ItemResponse, len(reservation.Items))
	for i, item := range reservation.Items {
		r.Items[i] = ItemResponse{
			ServiceID: item.ServiceID,
			Name:      item.Name,
			Price:     item.Price.InexactFloat64(),
			Duration:  item.Duration,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal().InexactFloat64(),
		}
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
