package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"beautyhub/config"
	"beautyhub/infras/otel"
	"beautyhub/internal/domains/catalog/model"
	"beautyhub/internal/domains/catalog/model/dto"
	"beautyhub/internal/domains/catalog/repository"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared"
	"beautyhub/shared/cache"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	"beautyhub/shared/failure"
	"beautyhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllStaff   = "catalog:staff"
	cacheGetAllService = "catalog:services"
)

// Accessor reads and edits the staff and services of one shop. A record that
// belongs to another shop is reported as not found.
type Accessor interface {
	ListStaff(ctx context.Context, tenant tenantModel.Tenant, params gDto.QueryParams, includeInactive bool) (dto.GetStaffResponse, error)
	GetStaff(ctx context.Context, tenant tenantModel.Tenant, id string) (model.Staff, error)
	CreateStaff(ctx context.Context, tenant tenantModel.Tenant, req dto.CreateStaffRequest) (model.Staff, error)
	UpdateStaff(ctx context.Context, tenant tenantModel.Tenant, id string, req dto.UpdateStaffRequest) (model.Staff, error)
	DeleteStaff(ctx context.Context, tenant tenantModel.Tenant, id string) error

	ListServices(ctx context.Context, tenant tenantModel.Tenant, params gDto.QueryParams, includeInactive bool) (dto.GetServicesResponse, error)
	GetService(ctx context.Context, tenant tenantModel.Tenant, id string) (model.Service, error)
	GetServices(ctx context.Context, tenant tenantModel.Tenant, ids []string) ([]model.Service, error)
	CreateService(ctx context.Context, tenant tenantModel.Tenant, req dto.CreateServiceRequest) (model.Service, error)
	UpdateService(ctx context.Context, tenant tenantModel.Tenant, id string, req dto.UpdateServiceRequest) (model.Service, error)
	DeleteService(ctx context.Context, tenant tenantModel.Tenant, id string) error

	StaffOwner(ctx context.Context, id string) (string, error)
	ServiceOwner(ctx context.Context, id string) (string, error)
}

type serviceImpl struct {
	staffRepo   repository.Staff
	serviceRepo repository.Service
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(staffRepo repository.Staff, serviceRepo repository.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Accessor {
	return &serviceImpl{
		staffRepo:   staffRepo,
		serviceRepo: serviceRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) ListStaff(ctx context.Context, tenant tenantModel.Tenant, params gDto.QueryParams, includeInactive bool) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListStaff")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenant.ID)

	filter := gDto.FilterGroup{}
	if !includeInactive {
		filter = repository.FilterActive(model.StaffTableName)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllStaff, tenant.ID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	total, err := s.staffRepo.Count(ctx, tenant.ID, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	staff, err := s.staffRepo.GetAll(ctx, tenant.ID, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(staff, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetStaff(ctx context.Context, tenant tenantModel.Tenant, id string) (res model.Staff, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStaff")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.staffRepo.Get(ctx, tenant.ID, shared.FilterByID(id, model.FieldID, model.StaffTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return res, fmt.Errorf("failed to get staff member: %w", err)
	}

	if res.IsZero() {
		return res, failure.NotFoundField("staff_id", "staff member not found")
	}

	return res, nil
}

func (s *serviceImpl) CreateStaff(ctx context.Context, tenant tenantModel.Tenant, req dto.CreateStaffRequest) (res model.Staff, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateStaff")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := authorize(ctx, tenant)
	if err != nil {
		return res, err
	}

	res = req.ToModel(tenant.ID, user, s.cfg.App.Booking.DefaultCommission)

	if err = s.staffRepo.Insert(ctx, tenant.ID, res); err != nil {
		log.Error().Err(err).Msg("failed to create staff member")

		return model.Staff{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	s.invalidate(ctx, cacheGetAllStaff, tenant.ID)

	return res, nil
}

func (s *serviceImpl) UpdateStaff(ctx context.Context, tenant tenantModel.Tenant, id string, req dto.UpdateStaffRequest) (res model.Staff, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStaff")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := authorize(ctx, tenant)
	if err != nil {
		return res, err
	}

	if _, err = s.GetStaff(ctx, tenant, id); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.StaffTableName)

	if err = s.staffRepo.Update(ctx, tenant.ID, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update staff member")

		return res, fmt.Errorf("failed to update staff member: %w", err)
	}

	s.invalidate(ctx, cacheGetAllStaff, tenant.ID)

	return s.GetStaff(ctx, tenant, id)
}

// DeleteStaff deactivates the member. Past reservations keep pointing at it.
func (s *serviceImpl) DeleteStaff(ctx context.Context, tenant tenantModel.Tenant, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteStaff")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := authorize(ctx, tenant)
	if err != nil {
		return err
	}

	if _, err = s.GetStaff(ctx, tenant, id); err != nil {
		return err
	}

	if err = s.staffRepo.Update(ctx, tenant.ID, deactivation(user), shared.FilterByID(id, model.FieldID, model.StaffTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete staff member")

		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	s.invalidate(ctx, cacheGetAllStaff, tenant.ID)

	return nil
}

func (s *serviceImpl) ListServices(ctx context.Context, tenant tenantModel.Tenant, params gDto.QueryParams, includeInactive bool) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListServices")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenant.ID)

	filter := gDto.FilterGroup{}
	if !includeInactive {
		filter = repository.FilterActive(model.ServiceTableName)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllService, tenant.ID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.serviceRepo.Count(ctx, tenant.ID, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	services, err := s.serviceRepo.GetAll(ctx, tenant.ID, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(services, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetService(ctx context.Context, tenant tenantModel.Tenant, id string) (res model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetService")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.serviceRepo.Get(ctx, tenant.ID, shared.FilterByID(id, model.FieldID, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if res.IsZero() {
		return res, failure.NotFoundField("service_id", "service not found")
	}

	return res, nil
}

// GetServices returns the services in the order of ids, duplicates collapsed.
// Any id the shop does not own makes the whole lookup fail.
func (s *serviceImpl) GetServices(ctx context.Context, tenant tenantModel.Tenant, ids []string) (res []model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer scope.TraceIfError(&err)

	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}

	if len(unique) == 0 {
		return []model.Service{}, nil
	}

	found, err := s.serviceRepo.GetAll(ctx, tenant.ID, gDto.QueryParams{}, repository.FilterByIDs(unique, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	byID := make(map[string]model.Service, len(found))
	for _, service := range found {
		byID[service.ID] = service
	}

	res = make([]model.Service, 0, len(unique))

	for _, id := range unique {
		service, ok := byID[id]
		if !ok {
			return nil, failure.NotFoundField("service_id", fmt.Sprintf("service %s not found", id))
		}

		res = append(res, service)
	}

	return res, nil
}

func (s *serviceImpl) CreateService(ctx context.Context, tenant tenantModel.Tenant, req dto.CreateServiceRequest) (res model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateService")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := authorize(ctx, tenant)
	if err != nil {
		return res, err
	}

	if req.Price.IsNegative() {
		return res, failure.InvalidInput(model.FieldPrice, "price must not be negative")
	}

	if req.Duration <= 0 {
		return res, failure.InvalidInput(model.FieldDuration, "duration must be positive")
	}

	res = req.ToModel(tenant.ID, user)

	if err = s.serviceRepo.Insert(ctx, tenant.ID, res); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return model.Service{}, fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidate(ctx, cacheGetAllService, tenant.ID)

	return res, nil
}

func (s *serviceImpl) UpdateService(ctx context.Context, tenant tenantModel.Tenant, id string, req dto.UpdateServiceRequest) (res model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateService")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := authorize(ctx, tenant)
	if err != nil {
		return res, err
	}

	if req.Price != nil && req.Price.IsNegative() {
		return res, failure.InvalidInput(model.FieldPrice, "price must not be negative")
	}

	if _, err = s.GetService(ctx, tenant, id); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.ServiceTableName)

	if err = s.serviceRepo.Update(ctx, tenant.ID, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return res, fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidate(ctx, cacheGetAllService, tenant.ID)

	return s.GetService(ctx, tenant, id)
}

// DeleteService retires the service. Reservations already carry a snapshot of it.
func (s *serviceImpl) DeleteService(ctx context.Context, tenant tenantModel.Tenant, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteService")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := authorize(ctx, tenant)
	if err != nil {
		return err
	}

	if _, err = s.GetService(ctx, tenant, id); err != nil {
		return err
	}

	if err = s.serviceRepo.Update(ctx, tenant.ID, deactivation(user), shared.FilterByID(id, model.FieldID, model.ServiceTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.invalidate(ctx, cacheGetAllService, tenant.ID)

	return nil
}

func (s *serviceImpl) StaffOwner(ctx context.Context, id string) (string, error) {
	owner, err := s.staffRepo.OwnerOf(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve staff owner")

		return constant.Empty, fmt.Errorf("failed to resolve staff owner: %w", err)
	}

	return owner, nil
}

func (s *serviceImpl) ServiceOwner(ctx context.Context, id string) (string, error) {
	owner, err := s.serviceRepo.OwnerOf(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve service owner")

		return constant.Empty, fmt.Errorf("failed to resolve service owner: %w", err)
	}

	return owner, nil
}

func authorize(ctx context.Context, tenant tenantModel.Tenant) (string, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !tenant.CanManage(user, role) {
		return constant.Empty, failure.ResourceRestrictedError
	}

	return user, nil
}

func deactivation(user string) map[string]any {
	return map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save catalog cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, prefix, tenantID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(prefix, tenantID))
	}()
}
