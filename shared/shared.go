package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"beautyhub/shared/cache"
	"beautyhub/shared/constant"
	"beautyhub/shared/dto"
	"beautyhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// CalculateTotalPage never reports fewer than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields turns the non-zero `db` tagged fields of a patch struct into
// an update map stamped with the modification time and actor.
func TransformFields(patch any, actor string) map[string]any {
	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	val := reflect.Indirect(reflect.ValueOf(patch))
	if val.Kind() != reflect.Struct {
		return fields
	}

	for i := range val.NumField() {
		column := val.Type().Field(i).Tag.Get("db")
		if column == "" || column == "-" || val.Field(i).IsZero() {
			continue
		}

		fields[column] = val.Field(i).Interface()
	}

	return fields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Table: table, Field: fieldID, Value: id, Operator: dto.FilterOperatorEq},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from paging and filter arguments.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	payload, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Where  string          `json:"where"`
		Args   map[string]any  `json:"args"`
	}{params, where, args})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key query")

		payload = fmt.Appendf(nil, "%v%s%v", params, where, args)
	}

	sum := sha256.Sum256(payload)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches clears every key under prefix. Failures are logged, not returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
