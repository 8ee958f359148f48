package dto

import (
	"time"

	"beautyhub/shared/clock"
)

type DatesRequest struct {
	Horizon int `json:"horizon" validate:"omitempty,gt=0,max=365"`
}

type SlotsRequest struct {
	Date        string `json:"date"        validate:"required,isodate"`
	Duration    int    `json:"duration"    validate:"required,gt=0,max=1440"`
	Granularity int    `json:"granularity" validate:"omitempty,gt=0,max=1440"`
	StaffID     string `json:"staff_id"    validate:"omitempty,uuid"`
}

type DatesResponse struct {
	Dates []string `json:"dates"`
}

func (r *DatesResponse) FromDates(dates []time.Time) {
	r.Dates = make([]string, len(dates))
	for i, date := range dates {
		r.Dates[i] = clock.FormatDate(date)
	}
}

type SlotsResponse struct {
	Date     string   `json:"date"`
	Duration int      `json:"duration"`
	StaffID  string   `json:"staff_id,omitempty"`
	Slots    []string `json:"slots"`
}

func (r *SlotsResponse) FromSlots(date time.Time, duration int, staffID string, slots []int) {
	r.Date = clock.FormatDate(date)
	r.Duration = duration
	r.StaffID = staffID

	r.Slots = make([]string, len(slots))
	for i, slot := range slots {
		r.Slots[i] = clock.Format(slot)
	}
}
