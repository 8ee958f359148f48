package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"beautyhub/infras/otel"
	"beautyhub/infras/postgres"
	"beautyhub/internal/domains/tenant/model"
	gDto "beautyhub/shared/dto"
	gRepo "beautyhub/shared/repository"
)

type Tenant interface {
	Insert(ctx context.Context, model model.Tenant) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Tenant, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Tenant, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Tenant]
}

func New(db *postgres.Connection, otel otel.Otel) Tenant {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Tenant](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func FilterBySlug(slug string, activeOnly bool) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldSlug,
			Value:    slug,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if activeOnly {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func FilterByOwner(ownerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Value:    ownerID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
