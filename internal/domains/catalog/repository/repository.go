package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"beautyhub/infras/otel"
	"beautyhub/infras/postgres"
	"beautyhub/internal/domains/catalog/model"
	gDto "beautyhub/shared/dto"
	gRepo "beautyhub/shared/repository"
)

// Staff and Service take the tenant id on every call. OwnerOf is the only
// lookup that crosses tenants and returns nothing but the owning tenant id.
type Staff interface {
	Insert(ctx context.Context, tenantID string, model model.Staff) error
	Get(ctx context.Context, tenantID string, filter gDto.FilterGroup, columns ...string) (model.Staff, error)
	GetAll(ctx context.Context, tenantID string, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Staff, error)
	Count(ctx context.Context, tenantID string, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, tenantID string, req map[string]any, filter gDto.FilterGroup) error
	OwnerOf(ctx context.Context, id string) (string, error)
}

type Service interface {
	Insert(ctx context.Context, tenantID string, model model.Service) error
	Get(ctx context.Context, tenantID string, filter gDto.FilterGroup, columns ...string) (model.Service, error)
	GetAll(ctx context.Context, tenantID string, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Service, error)
	Count(ctx context.Context, tenantID string, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, tenantID string, req map[string]any, filter gDto.FilterGroup) error
	OwnerOf(ctx context.Context, id string) (string, error)
}

type staffRepository struct {
	gRepo.Scoped[model.Staff]
}

func NewStaff(db *postgres.Connection, otel otel.Otel) Staff {
	return &staffRepository{
		Scoped: gRepo.NewScoped[model.Staff](model.StaffEntityName, model.StaffTableName, model.FieldID, db, otel),
	}
}

type serviceRepository struct {
	gRepo.Scoped[model.Service]
}

func NewService(db *postgres.Connection, otel otel.Otel) Service {
	return &serviceRepository{
		Scoped: gRepo.NewScoped[model.Service](model.ServiceEntityName, model.ServiceTableName, model.FieldID, db, otel),
	}
}

func FilterActive(table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func FilterByIDs(ids []string, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    table,
			},
		},
	}
}
