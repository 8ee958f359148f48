package model

import (
	"time"

	"beautyhub/shared/model"
)

const (
	TableName  = "accounts"
	EntityName = "account"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldFullName  = "full_name"
	FieldPhone     = "phone"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// Account is a customer or a shop owner. Customers book, owners run shops.
type Account struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	FullName  string     `db:"full_name"`
	Phone     string     `db:"phone"`
	LastLogin *time.Time `db:"last_login"`
	Active    bool       `db:"active"`
	model.Metadata
}

func (a Account) IsZero() bool {
	return a.ID == ""
}
