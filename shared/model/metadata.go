package model

import "time"

// Metadata is the audit trail shared by every persisted row.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

func NewMetadata(at time.Time, actor string) Metadata {
	return Metadata{
		CreatedAt:  at,
		ModifiedAt: at,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}

// Touch records a modification by actor at the given instant.
func (m *Metadata) Touch(at time.Time, actor string) {
	m.ModifiedAt = at
	m.ModifiedBy = actor
}
