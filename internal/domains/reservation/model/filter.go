package model

import (
	"strings"
	"time"

	"beautyhub/shared/clock"
	gDto "beautyhub/shared/dto"
)

// Filter narrows ledger listings. Zero fields match everything.
// Date pins a single day; From and To bound an inclusive day range.
type Filter struct {
	Status     Status
	Date       *time.Time
	From       *time.Time
	To         *time.Time
	StaffID    string
	CustomerID string
	Customer   string
}

func (f Filter) Matches(r Reservation) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}

	if f.Date != nil && !clock.SameDate(*f.Date, r.Date) {
		return false
	}

	day := clock.FormatDate(r.Date)

	if f.From != nil && day < clock.FormatDate(*f.From) {
		return false
	}

	if f.To != nil && day > clock.FormatDate(*f.To) {
		return false
	}

	if f.StaffID != "" && r.StaffID != f.StaffID {
		return false
	}

	if f.CustomerID != "" && r.CustomerID != f.CustomerID {
		return false
	}

	if f.Customer != "" && !strings.Contains(strings.ToLower(r.CustomerName), strings.ToLower(f.Customer)) {
		return false
	}

	return true
}

func (f Filter) FilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.Status != "" {
		filters = append(filters, gDto.Filter{Field: FieldStatus, Value: string(f.Status), Operator: gDto.FilterOperatorEq, Table: TableName})
	}

	if f.Date != nil {
		filters = append(filters, gDto.Filter{Field: FieldDate, Value: clock.FormatDate(*f.Date), Operator: gDto.FilterOperatorEq, Table: TableName})
	}

	if f.From != nil {
		filters = append(filters, gDto.Filter{ArgName: "date_from", Field: FieldDate, Value: clock.FormatDate(*f.From), Operator: gDto.FilterOperatorGreaterEq, Table: TableName})
	}

	if f.To != nil {
		filters = append(filters, gDto.Filter{ArgName: "date_to", Field: FieldDate, Value: clock.FormatDate(*f.To), Operator: gDto.FilterOperatorLessEq, Table: TableName})
	}

	if f.StaffID != "" {
		filters = append(filters, gDto.Filter{Field: FieldStaffID, Value: f.StaffID, Operator: gDto.FilterOperatorEq, Table: TableName})
	}

	if f.CustomerID != "" {
		filters = append(filters, gDto.Filter{Field: FieldCustomerID, Value: f.CustomerID, Operator: gDto.FilterOperatorEq, Table: TableName})
	}

	if f.Customer != "" {
		filters = append(filters, gDto.Filter{Field: FieldCustomer, Value: f.Customer, Operator: gDto.FilterOperatorLike, Table: TableName})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}
