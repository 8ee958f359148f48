package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"beautyhub/shared/dto"
	"beautyhub/shared/model"
	"beautyhub/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	restore := timezone.Override(jakarta)
	defer restore()

	created := time.Date(2025, time.June, 2, 2, 0, 0, 0, time.UTC)

	var meta dto.Metadata
	meta.FromModel(model.NewMetadata(created, "owner-1"))

	assert.Equal(t, "2025-06-02T09:00:00+07:00", meta.CreatedAt)
	assert.Equal(t, meta.CreatedAt, meta.ModifiedAt)
	assert.Equal(t, "owner-1", meta.CreatedBy)

	meta.FromModel(model.Metadata{CreatedBy: "guest"})
	assert.Empty(t, meta.CreatedAt)
	assert.Equal(t, "guest", meta.CreatedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "page=2&limit=20&sort_by=name&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults fill page and limit",
			query:        "",
			withDefaults: true,
			want:         dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:  "limit is capped",
			query: "limit=5000",
			want:  dto.QueryParams{Limit: 100},
		},
		{
			name:         "malformed numbers are ignored",
			query:        "page=-1&limit=abc",
			withDefaults: true,
			want:         dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:  "sort column must be an identifier",
			query: "sort_by=name;DROP%20TABLE%20tenants&sort_dir=sideways",
			want:  dto.QueryParams{},
		},
		{
			name:  "qualified sort column",
			query: "sort_by=Services.Price",
			want:  dto.QueryParams{SortBy: "services.price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tt.query, nil)

			var got dto.QueryParams
			got.FromRequest(r, tt.withDefaults)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryParams_OffsetAndOrder(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())

	assert.Empty(t, dto.QueryParams{}.OrderBy())
	assert.Empty(t, dto.QueryParams{SortBy: "1; --"}.OrderBy())
	assert.Equal(t, "ORDER BY name DESC", dto.QueryParams{SortBy: "name"}.OrderBy())
	assert.Equal(t, "ORDER BY name ASC", dto.QueryParams{SortBy: "name", SortDir: "asc"}.OrderBy())
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality on a qualified column",
			filter:    dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "reservations"},
			wantWhere: "reservations.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name:      "range with a custom arg name",
			filter:    dto.Filter{ArgName: "date_from", Field: "date", Value: "2025-06-01", Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "date >= :date_from",
			wantArgs:  map[string]any{"date_from": "2025-06-01"},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "customer_name", Value: "50%_off", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(customer_name) LIKE LOWER(:customer_name)",
			wantArgs:  map[string]any{"customer_name": `%50\%\_off%`},
		},
		{
			name:      "in expands one arg per element",
			filter:    dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn, Table: "services"},
			wantWhere: "services.id IN (:id_0, :id_1)",
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:      "empty in matches nothing",
			filter:    dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: "x", Operator: "regex"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "staff_id", Value: "s1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{},
			dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "date", Value: "2025-06-02", Operator: dto.FilterOperatorEq},
			}},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(staff_id = :staff_id OR (status = :status AND date = :date))", where)
	assert.Len(t, args, 3)

	where, args = (&dto.FilterGroup{}).GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
