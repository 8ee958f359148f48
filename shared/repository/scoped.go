package repository

import (
	"context"
	"errors"
	"fmt"

	"beautyhub/infras/otel"
	"beautyhub/infras/postgres"
	"beautyhub/shared/constant"
	"beautyhub/shared/dto"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const scopeTenantArg = "scope_tenant_id"

var (
	ErrMissingTenant  = errors.New("tenant scope is required")
	ErrTenantMismatch = errors.New("record does not belong to the scoped tenant")
)

// TenantOwned is implemented by every record that lives inside a single shop.
type TenantOwned interface {
	GetTenantID() string
}

// Scoped wraps Repository so that every read and write is constrained to one tenant.
type Scoped[T TenantOwned] struct {
	Repository[T]
}

func NewScoped[T TenantOwned](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Scoped[T] {
	return Scoped[T]{
		Repository: NewRepository[T](entitasName, tableName, primaryColumn, dbConnection, otl),
	}
}

// Scope returns filter AND tenant_id = tenantID.
func (repo *Scoped[T]) Scope(tenantID string, filter dto.FilterGroup) dto.FilterGroup {
	tenantFilter := dto.Filter{
		ArgName:  scopeTenantArg,
		Field:    constant.FieldTenantID,
		Value:    tenantID,
		Operator: dto.FilterOperatorEq,
		Table:    repo.table,
	}

	if len(filter.Filters) == 0 {
		return dto.FilterGroup{Filters: []any{tenantFilter}}
	}

	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{tenantFilter, filter},
	}
}

func (repo *Scoped[T]) Insert(ctx context.Context, tenantID string, model T) error {
	if err := checkOwner(tenantID, model); err != nil {
		return err
	}

	return repo.Repository.Insert(ctx, model)
}

func (repo *Scoped[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, tenantID string, model T) error {
	if err := checkOwner(tenantID, model); err != nil {
		return err
	}

	return repo.Repository.InsertTx(ctx, sqltx, model)
}

func (repo *Scoped[T]) Get(ctx context.Context, tenantID string, filter dto.FilterGroup, columns ...string) (T, error) {
	if tenantID == "" {
		var zero T

		return zero, ErrMissingTenant
	}

	return repo.Repository.Get(ctx, repo.Scope(tenantID, filter), columns...)
}

func (repo *Scoped[T]) GetAll(ctx context.Context, tenantID string, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	if tenantID == "" {
		return nil, ErrMissingTenant
	}

	return repo.Repository.GetAll(ctx, params, repo.Scope(tenantID, filter), columns...)
}

func (repo *Scoped[T]) Count(ctx context.Context, tenantID string, filter dto.FilterGroup) (int, error) {
	if tenantID == "" {
		return 0, ErrMissingTenant
	}

	return repo.Repository.Count(ctx, repo.Scope(tenantID, filter))
}

func (repo *Scoped[T]) Exist(ctx context.Context, tenantID string, filter dto.FilterGroup) (bool, error) {
	if tenantID == "" {
		return false, ErrMissingTenant
	}

	return repo.Repository.Exist(ctx, repo.Scope(tenantID, filter))
}

func (repo *Scoped[T]) Update(ctx context.Context, tenantID string, mod map[string]any, filter dto.FilterGroup) error {
	if tenantID == "" {
		return ErrMissingTenant
	}

	delete(mod, constant.FieldTenantID)

	return repo.Repository.Update(ctx, mod, repo.Scope(tenantID, filter))
}

func (repo *Scoped[T]) Delete(ctx context.Context, tenantID string, filter dto.FilterGroup) error {
	if tenantID == "" {
		return ErrMissingTenant
	}

	return repo.Repository.Delete(ctx, repo.Scope(tenantID, filter))
}

// OwnerOf returns the tenant that owns the record with the given primary key, or
// an empty string when no such record exists. It is the only unscoped lookup and
// exists so callers can tell a foreign reference apart from a missing one.
func (repo *Scoped[T]) OwnerOf(ctx context.Context, id string) (string, error) {
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    repo.primaryColumn,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    repo.table,
			},
		},
	}

	model, err := repo.Repository.Get(ctx, filter, constant.FieldTenantID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve owner (%s): %w", repo.entitas, err)
	}

	return model.GetTenantID(), nil
}

func checkOwner[T TenantOwned](tenantID string, model T) error {
	if tenantID == "" {
		return ErrMissingTenant
	}

	if model.GetTenantID() != tenantID {
		return ErrTenantMismatch
	}

	return nil
}

// IsUniqueViolation reports whether err carries a postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
