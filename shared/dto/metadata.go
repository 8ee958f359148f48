package dto

import (
	"time"

	"beautyhub/shared/constant"
	"beautyhub/shared/model"
	"beautyhub/shared/timezone"
)

// Metadata is the audit trail as rendered in API responses, with timestamps
// in the business timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}

func (m *Metadata) FromModel(meta model.Metadata) {
	*m = Metadata{
		CreatedAt:  stamp(meta.CreatedAt),
		ModifiedAt: stamp(meta.ModifiedAt),
		CreatedBy:  meta.CreatedBy,
		ModifiedBy: meta.ModifiedBy,
	}
}
