package shared_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"beautyhub/shared"
	cacheMocks "beautyhub/shared/cache/mocks"
	"beautyhub/shared/constant"
	"beautyhub/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 1},
		{5, 0, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 20, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

type staffPatch struct {
	Name     string  `db:"name"`
	Title    *string `db:"title"`
	Duration int     `db:"duration_minutes"`
	Scratch  string  `db:"-"`
	Untagged string
}

func TestTransformFields(t *testing.T) {
	empty := ""

	fields := shared.TransformFields(staffPatch{
		Name:     "Rina",
		Title:    &empty,
		Scratch:  "skip",
		Untagged: "skip",
	}, "owner-1")

	require.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])
	assert.Equal(t, "owner-1", fields[constant.FieldModifiedBy])
	assert.Equal(t, "Rina", fields["name"])
	assert.Equal(t, &empty, fields["title"])
	assert.NotContains(t, fields, "duration_minutes")
	assert.NotContains(t, fields, "-")
	assert.Len(t, fields, 4)
}

func TestTransformFields_Pointer(t *testing.T) {
	fields := shared.TransformFields(&staffPatch{Duration: 45}, "owner-1")

	assert.Equal(t, 45, fields["duration_minutes"])
	assert.Len(t, fields, 3)

	fields = shared.TransformFields(nil, "owner-1")
	assert.Len(t, fields, 2)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("st-1", "id", "staff")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(staff.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "st-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "tenant:slug:demo-barberia", shared.BuildCacheKey("tenant:slug", "demo-barberia"))
	assert.Equal(t, "limiter:127.0.0.1:curl", shared.BuildCacheKey("limiter", "127.0.0.1", "curl"))
	assert.Equal(t, "tenant:gets", shared.BuildCacheKey("tenant:gets"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filterA := shared.FilterByID("a", "id", "staff")
	filterB := shared.FilterByID("b", "id", "staff")

	keyA := shared.BuildCacheKeyWithQuery("staff:gets", params, filterA)
	keyAAgain := shared.BuildCacheKeyWithQuery("staff:gets", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("staff:gets", params, filterB)
	keyPage2 := shared.BuildCacheKeyWithQuery("staff:gets", dto.QueryParams{Page: 2, Limit: 10}, filterA)

	assert.True(t, strings.HasPrefix(keyA, "staff:gets:"))
	assert.Equal(t, keyA, keyAAgain)
	assert.NotEqual(t, keyA, keyB)
	assert.NotEqual(t, keyA, keyPage2)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "reservation:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "reservation:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "reservation:count:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "reservation:count")
}
