package model

import (
	"time"

	"beautyhub/shared/clock"
	"beautyhub/shared/constant"
	"beautyhub/shared/model"
)

const (
	TableName  = "tenants"
	EntityName = "tenant"

	FieldID           = "id"
	FieldSlug         = "slug"
	FieldName         = "name"
	FieldLogo         = "logo"
	FieldSchedule     = "schedule"
	FieldOwnerID      = "owner_id"
	FieldActive       = "active"
	FieldBusinessType = "business_type"
)

const (
	SubscriptionFree = "free"

	DefaultStaffLabel         = "Empleados"
	DefaultStaffLabelSingular = "Empleado"
)

// Tenant is one storefront. Every other record in the system carries its ID.
type Tenant struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Slug               string         `db:"slug"`
	BusinessType       string         `db:"business_type"`
	Description        string         `db:"description"`
	Logo               string         `db:"logo"`
	Address            string         `db:"address"`
	Phone              string         `db:"phone"`
	WhatsApp           string         `db:"whatsapp"`
	Email              string         `db:"email"`
	StaffLabel         string         `db:"staff_label"`
	StaffLabelSingular string         `db:"staff_label_singular"`
	ThemePrimary       string         `db:"theme_primary"`
	ThemeSecondary     string         `db:"theme_secondary"`
	ThemeAccent        string         `db:"theme_accent"`
	Subscription       string         `db:"subscription"`
	Schedule           WeeklySchedule `db:"schedule"`
	OwnerID            string         `db:"owner_id"`
	Active             bool           `db:"active"`
	model.Metadata
}

func (t Tenant) IsZero() bool {
	return t.ID == ""
}

// IsOpenAt reports whether the wall clock of at falls inside that weekday's
// opening hours, both ends included. A closed or malformed day is never open.
func (t Tenant) IsOpenAt(at time.Time) bool {
	window, open, err := t.Schedule.Window(at.Weekday())
	if err != nil || !open {
		return false
	}

	minute := clock.OfDay(at)

	return minute >= window.Open && minute <= window.Close
}

// CanManage reports whether the user may change the shop and its catalog.
func (t Tenant) CanManage(userID, role string) bool {
	if role == constant.RoleSuperAdmin {
		return true
	}

	return userID != "" && userID == t.OwnerID
}

// Label returns the plural or singular staff noun shown on the storefront.
func (t Tenant) Label(plural bool) string {
	if plural {
		if t.StaffLabel == "" {
			return DefaultStaffLabel
		}

		return t.StaffLabel
	}

	if t.StaffLabelSingular == "" {
		return DefaultStaffLabelSingular
	}

	return t.StaffLabelSingular
}
