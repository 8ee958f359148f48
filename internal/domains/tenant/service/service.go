package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"beautyhub/config"
	"beautyhub/infras/otel"
	"beautyhub/infras/s3"
	"beautyhub/internal/domains/tenant/model"
	"beautyhub/internal/domains/tenant/model/dto"
	"beautyhub/internal/domains/tenant/repository"
	"beautyhub/shared"
	"beautyhub/shared/cache"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	"beautyhub/shared/failure"
	gRepo "beautyhub/shared/repository"
	"beautyhub/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheTenantBySlug = "tenant:slug"
	cacheTenantByID   = "tenant:id"
	cacheGetAllTenant = "tenant:gets"
)

// Directory is the single source of truth for shop records.
type Directory interface {
	ResolveBySlug(ctx context.Context, slug string) (model.Tenant, error)
	Get(ctx context.Context, id string) (model.Tenant, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetTenantsResponse, error)
	Create(ctx context.Context, req dto.CreateTenantRequest) (model.Tenant, error)
	Update(ctx context.Context, tenant model.Tenant, req dto.UpdateTenantRequest) (model.Tenant, error)
	Deactivate(ctx context.Context, tenant model.Tenant) error
	UploadLogo(ctx context.Context, tenant model.Tenant, req dto.UploadLogoRequest) (string, error)
	IsOpenAt(tenant model.Tenant, at time.Time) bool
}

type serviceImpl struct {
	repo  repository.Tenant
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Tenant, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Directory {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) ResolveBySlug(ctx context.Context, slug string) (res model.Tenant, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveBySlug")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if slug == constant.Empty {
		return res, failure.NotFoundField("tenant", "shop not found")
	}

	cacheKey := shared.BuildCacheKey(cacheTenantBySlug, slug)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil && !res.IsZero() {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tenant")

		return res, nil
	}

	res, err = s.repo.Get(ctx, repository.FilterBySlug(slug, true))
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to resolve tenant")

		return res, fmt.Errorf("failed to resolve tenant: %w", err)
	}

	if res.IsZero() {
		return res, failure.NotFoundField("tenant", "shop not found")
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Tenant, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheTenantByID, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil && !res.IsZero() {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tenant")

		return res, nil
	}

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant")

		return res, fmt.Errorf("failed to get tenant: %w", err)
	}

	if res.IsZero() {
		return res, failure.NotFoundField("tenant", "shop not found")
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetTenantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTenant, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tenants")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tenants")

		return res, fmt.Errorf("failed to count tenants: %w", err)
	}

	tenants, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenants")

		return res, fmt.Errorf("failed to get tenants: %w", err)
	}

	res.FromModels(tenants, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTenantRequest) (res model.Tenant, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	owner, _ := ctx.Value(constant.ContextKeyUserID).(string)

	base := model.Slugify(req.Name)
	if base == constant.Empty {
		return res, failure.InvalidInput("name", "name must contain at least one letter or digit")
	}

	if req.Schedule != nil {
		if err = req.Schedule.Validate(); err != nil {
			return res, failure.InvalidInput(model.FieldSchedule, err.Error())
		}
	}

	for attempt := 1; attempt <= model.MaxSlugAttempts; attempt++ {
		slug := model.SlugCandidate(base, attempt)

		taken, err := s.repo.Exist(ctx, repository.FilterBySlug(slug, false))
		if err != nil {
			log.Error().Err(err).Str("slug", slug).Msg("failed to check slug")

			return res, fmt.Errorf("failed to check slug: %w", err)
		}

		if taken {
			continue
		}

		tenant := req.ToModel(uuid.NewString(), slug, owner)

		err = s.repo.Insert(ctx, tenant)
		if gRepo.IsUniqueViolation(err) {
			log.Warn().Str("slug", slug).Msg("slug taken concurrently, trying next suffix")

			continue
		}

		if err != nil {
			log.Error().Err(err).Msg("failed to create tenant")

			return res, fmt.Errorf("failed to create tenant: %w", err)
		}

		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, cacheGetAllTenant)
		}()

		return tenant, nil
	}

	return res, failure.Conflict(fmt.Sprintf("no free slug for %q", base))
}

func (s *serviceImpl) Update(ctx context.Context, tenant model.Tenant, req dto.UpdateTenantRequest) (res model.Tenant, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := s.authorizeOwner(ctx, tenant)
	if err != nil {
		return res, err
	}

	if req.Schedule != nil {
		if err = req.Schedule.Validate(); err != nil {
			return res, failure.InvalidInput(model.FieldSchedule, err.Error())
		}
	}

	s.evict(ctx, tenant)

	if err = s.repo.Update(ctx, req.ToUpdate(user), shared.FilterByID(tenant.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update tenant")

		return res, fmt.Errorf("failed to update tenant: %w", err)
	}

	s.invalidate(ctx, tenant)

	res, err = s.repo.Get(ctx, shared.FilterByID(tenant.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to reload tenant")

		return res, fmt.Errorf("failed to reload tenant: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Deactivate(ctx context.Context, tenant model.Tenant) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := s.authorizeOwner(ctx, tenant)
	if err != nil {
		return err
	}

	update := map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	s.evict(ctx, tenant)

	if err = s.repo.Update(ctx, update, shared.FilterByID(tenant.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to deactivate tenant")

		return fmt.Errorf("failed to deactivate tenant: %w", err)
	}

	s.invalidate(ctx, tenant)

	return nil
}

func (s *serviceImpl) UploadLogo(ctx context.Context, tenant model.Tenant, req dto.UploadLogoRequest) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadLogo")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := s.authorizeOwner(ctx, tenant)
	if err != nil {
		return url, err
	}

	if req.Logo == nil {
		return url, failure.InvalidInput(model.FieldLogo, "logo is required")
	}

	key := logoKey(tenant.ID, req.Logo.Filename)

	url, err = s.s3.Put(ctx, key, req.LogoFile, req.Logo.Size, req.Logo.Header.Get(constant.RequestHeaderContentType))
	if err != nil {
		return url, fmt.Errorf("failed to upload logo: %w", err)
	}

	update := map[string]any{
		model.FieldLogo:          url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	s.evict(ctx, tenant)

	if err = s.repo.Update(ctx, update, shared.FilterByID(tenant.ID, model.FieldID, model.TableName)); err != nil {
		if derr := s.s3.Delete(context.WithoutCancel(ctx), key); derr != nil {
			log.Warn().Err(derr).Str("key", key).Msg("failed to remove orphaned logo")
		}

		log.Error().Err(err).Msg("failed to store tenant logo")

		return constant.Empty, fmt.Errorf("failed to store tenant logo: %w", err)
	}

	if previous := s.s3.KeyFromURL(tenant.Logo); previous != constant.Empty {
		go func() {
			if err := s.s3.Delete(context.WithoutCancel(ctx), previous); err != nil {
				log.Error().Err(err).Str("key", previous).Msg("failed to delete previous logo")
			}
		}()
	}

	s.invalidate(ctx, tenant)

	return url, nil
}

// logoKey namespaces logos by tenant so a shop's assets can be listed or
// purged together.
func logoKey(tenantID, filename string) string {
	return path.Join(model.TableName, tenantID, model.FieldLogo, uuid.NewString()+strings.ToLower(path.Ext(filename)))
}

func (s *serviceImpl) IsOpenAt(tenant model.Tenant, at time.Time) bool {
	return tenant.IsOpenAt(at)
}

func (s *serviceImpl) authorizeOwner(ctx context.Context, tenant model.Tenant) (string, error) {
	if tenant.IsZero() {
		return constant.Empty, failure.NotFoundField("tenant", "shop not found")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if tenant.CanManage(user, role) {
		return user, nil
	}

	return constant.Empty, failure.ResourceRestrictedError
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save tenant cache")
	}
}

// evict drops the cached copies of tenant so the next resolve reads the row.
func (s *serviceImpl) evict(ctx context.Context, tenant model.Tenant) {
	for _, key := range []string{
		shared.BuildCacheKey(cacheTenantBySlug, tenant.Slug),
		shared.BuildCacheKey(cacheTenantByID, tenant.ID),
	} {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to delete tenant cache")
		}
	}
}

// invalidate runs after a write: the tenant keys are evicted again before
// returning, catching any fill that raced the write. Listings expire in the
// background.
func (s *serviceImpl) invalidate(ctx context.Context, tenant model.Tenant) {
	s.evict(ctx, tenant)

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllTenant)
}
