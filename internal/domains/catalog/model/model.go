package model

import (
	"beautyhub/shared/model"

	"github.com/shopspring/decimal"
)

const (
	StaffTableName    = "staff"
	StaffEntityName   = "staff"
	ServiceTableName  = "services"
	ServiceEntityName = "service"

	FieldID       = "id"
	FieldTenantID = "tenant_id"
	FieldName     = "name"
	FieldActive   = "active"
	FieldPrice    = "price"
	FieldDuration = "duration"
)

// Staff is a person who performs services and owns a calendar.
type Staff struct {
	ID         string `db:"id"`
	TenantID   string `db:"tenant_id"`
	Name       string `db:"name"`
	Specialty  string `db:"specialty"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
	Avatar     string `db:"avatar"`
	Commission int    `db:"commission"`
	Active     bool   `db:"active"`
	model.Metadata
}

func (s Staff) GetTenantID() string {
	return s.TenantID
}

func (s Staff) IsZero() bool {
	return s.ID == ""
}

// Service is a bookable offering. Duration is in minutes.
type Service struct {
	ID          string          `db:"id"`
	TenantID    string          `db:"tenant_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Duration    int             `db:"duration"`
	Active      bool            `db:"active"`
	model.Metadata
}

func (s Service) GetTenantID() string {
	return s.TenantID
}

func (s Service) IsZero() bool {
	return s.ID == ""
}
