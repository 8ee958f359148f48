package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"time"

	"beautyhub/config"
	"beautyhub/infras/otel"
	availabilityService "beautyhub/internal/domains/availability/service"
	"beautyhub/internal/domains/cart/model"
	"beautyhub/internal/domains/cart/model/dto"
	"beautyhub/internal/domains/cart/repository"
	catalogService "beautyhub/internal/domains/catalog/service"
	reservationModel "beautyhub/internal/domains/reservation/model"
	reservationService "beautyhub/internal/domains/reservation/service"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared/constant"
	"beautyhub/shared/failure"
	"beautyhub/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Cart drives a customer's booking from first pick to checkout. Every call
// reads the cart fresh from storage and writes it back after the change.
type Cart interface {
	Start(ctx context.Context, tenant tenantModel.Tenant, req dto.StartRequest) (model.Cart, error)
	Get(ctx context.Context, tenant tenantModel.Tenant, id string) (model.Cart, error)
	SelectStaff(ctx context.Context, tenant tenantModel.Tenant, id, staffID string) (model.Cart, error)
	AddService(ctx context.Context, tenant tenantModel.Tenant, id, serviceID string, quantity int) (model.Cart, error)
	AdjustQuantity(ctx context.Context, tenant tenantModel.Tenant, id, serviceID string, delta int) (model.Cart, error)
	SetQuantity(ctx context.Context, tenant tenantModel.Tenant, id, serviceID string, quantity int) (model.Cart, error)
	RemoveService(ctx context.Context, tenant tenantModel.Tenant, id, serviceID string) (model.Cart, error)
	ChooseSlot(ctx context.Context, tenant tenantModel.Tenant, id string, date time.Time, startTime int) (model.Cart, error)
	Abandon(ctx context.Context, tenant tenantModel.Tenant, id string) error
	Checkout(ctx context.Context, tenant tenantModel.Tenant, id string) (reservationModel.Reservation, error)
}

type serviceImpl struct {
	repo         repository.Store
	catalog      catalogService.Accessor
	availability availabilityService.Engine
	ledger       reservationService.Ledger
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Store,
	catalog catalogService.Accessor,
	availability availabilityService.Engine,
	ledger reservationService.Ledger,
	cfg *config.Config,
	otel otel.Otel,
) Cart {
	return &serviceImpl{
		repo:         repo,
		catalog:      catalog,
		availability: availability,
		ledger:       ledger,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context, tenant tenantModel.Tenant, req dto.StartRequest) (res model.Cart, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cart.Start")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if tenant.IsZero() {
		return res, failure.InvalidInput("tenant", "shop could not be resolved")
	}

	customer, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if customer == constant.Empty {
		return res, failure.Unauthorized("sign in to start a booking")
	}

	email := req.CustomerEmail
	if email == constant.Empty {
		email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	}

	now := timezone.Now()

	res = model.Cart{
		ID:            uuid.NewString(),
		TenantID:      tenant.ID,
		CustomerID:    customer,
		CustomerName:  req.CustomerName,
		CustomerEmail: email,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		Lines:         []model.Line{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if req.StaffID != constant.Empty {
		if err = s.selectStaff(ctx, tenant, &res, req.StaffID); err != nil {
			return model.Cart{}, err
		}
	}

	if err = s.repo.Save(ctx, tenant.ID, res); err != nil {
		log.Error().Err(err).Msg("failed to save cart")

		return model.Cart{}, fmt.Errorf("failed to save cart: %w", err)
	}

	return res, nil
}

// Get returns the caller's own cart. Someone else's cart is reported as not found.
func (s *serviceImpl) Get(ctx context.Context, tenant tenantModel.Tenant, id string) (res model.Cart, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cart.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if tenant.IsZero() {
		return res, failure.InvalidInput("tenant", "shop could not be resolved")
	}

	res, err = s.repo.Get(ctx, tenant.ID, id)
	if err != nil {
		log.Error().Err(err).Str("cart", id).Msg("failed to get cart")

		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	customer, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if res.IsZero() || res.CustomerID != customer {
		return model.Cart{}, failure.NotFoundField(model.FieldCart, "cart not found or expired")
	}

	return res, nil
}

func (s *serviceImpl) SelectStaff(ctx context.Context, tenant tenantModel.Tenant, id, staffID string) (model.Cart, error) {
	return s.update(ctx, tenant, id, "SelectStaff", func(ctx context.Context, cart *model.Cart) error {
		return s.selectStaff(ctx, tenant, cart, staffID)
	})
}

func (s *serviceImpl) AddService(ctx context.Context, tenant tenantModel.Tenant, id, serviceID string, quantity int) (model.Cart, error) {
	return s.update(ctx, tenant, id, "AddService", func(ctx context.Context, cart *model.Cart) error {
		service, err := s.catalog.GetService(ctx, tenant, serviceID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !service.Active {
			return failure.InvalidInput(model.FieldServiceID, "service is no longer offered")
		}

		return cart.Add(model.Line{
			ServiceID: service.ID,
			Name:      service.Name,
			Price:     service.Price,
			Duration:  service.Duration,
			Quantity:  quantity,
		})
	})
}

func (s *serviceImpl) AdjustQuantity(ctx context.Context, tenant tenantModel.Tenant, id, serviceID string, delta int) (model.Cart, error) {
	return s.update(ctx, tenant, id, "AdjustQuantity", func(_ context.Context, cart *model.Cart) error {
		return cart.Adjust(serviceID, delta)
	})
}

func (s *serviceImpl) SetQuantity(ctx context.Context, tenant tenantModel.Tenant, id, serviceID string, quantity int) (model.Cart, error) {
	return s.update(ctx, tenant, id, "SetQuantity", func(_ context.Context, cart *model.Cart) error {
		return cart.SetQuantity(serviceID, quantity)
	})
}

func (s *serviceImpl) RemoveService(ctx context.Context, tenant tenantModel.Tenant, id, serviceID string) (model.Cart, error) {
	return s.update(ctx, tenant, id, "RemoveService", func(_ context.Context, cart *model.Cart) error {
		return cart.Remove(serviceID)
	})
}

// ChooseSlot accepts a start only if the shop is open for the whole visit and
// the staff member is still free at that time.
func (s *serviceImpl) ChooseSlot(ctx context.Context, tenant tenantModel.Tenant, id string, date time.Time, startTime int) (model.Cart, error) {
	return s.update(ctx, tenant, id, "ChooseSlot", func(ctx context.Context, cart *model.Cart) error {
		if err := cart.CanChooseSlot(); err != nil {
			return err //nolint:wrapcheck
		}

		slots, err := s.availability.ListSlotsForDate(ctx, tenant, date, cart.TotalDuration, 0)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !slices.Contains(slots, startTime) {
			return failure.OutOfHours("the shop does not offer that start time for this visit")
		}

		open, err := s.availability.ListOpenSlots(ctx, tenant, cart.StaffID, date, cart.TotalDuration, 0)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !slices.Contains(open, startTime) {
			return failure.SlotConflict("that time is no longer available, please pick another")
		}

		return cart.ChooseSlot(date, startTime)
	})
}

// Abandon discards the cart. Nothing else is touched.
func (s *serviceImpl) Abandon(ctx context.Context, tenant tenantModel.Tenant, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cart.Abandon")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.Get(ctx, tenant, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, tenant.ID, id); err != nil {
		log.Error().Err(err).Str("cart", id).Msg("failed to delete cart")

		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}

// Checkout hands the cart to the ledger. If the slot was taken meanwhile the
// cart goes back to building so the customer can pick another time.
func (s *serviceImpl) Checkout(ctx context.Context, tenant tenantModel.Tenant, id string) (res reservationModel.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cart.Checkout")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cart, err := s.Get(ctx, tenant, id)
	if err != nil {
		return res, err
	}

	draft, err := cart.Checkout()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.ledger.Commit(ctx, tenant, draft)
	if err != nil {
		if failure.HasReason(err, failure.ReasonSlotConflict) {
			cart.ClearSlot()
			cart.UpdatedAt = timezone.Now()

			if saveErr := s.repo.Save(ctx, tenant.ID, cart); saveErr != nil {
				log.Error().Err(saveErr).Str("cart", id).Msg("failed to reopen cart after slot conflict")
			}
		}

		return res, err //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, tenant.ID, id); err != nil {
		log.Error().Err(err).Str("cart", id).Msg("failed to delete checked out cart")
	}

	return res, nil
}

func (s *serviceImpl) selectStaff(ctx context.Context, tenant tenantModel.Tenant, cart *model.Cart, staffID string) error {
	staff, err := s.catalog.GetStaff(ctx, tenant, staffID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !staff.Active {
		return failure.InvalidInput(model.FieldStaffID, "staff member is not taking reservations")
	}

	return cart.SelectStaff(staff.ID)
}

func (s *serviceImpl) update(ctx context.Context, tenant tenantModel.Tenant, id, operation string, change func(context.Context, *model.Cart) error) (res model.Cart, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cart."+operation)
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.Get(ctx, tenant, id)
	if err != nil {
		return res, err
	}

	if err = change(ctx, &res); err != nil {
		return model.Cart{}, err
	}

	res.UpdatedAt = timezone.Now()

	if err = s.repo.Save(ctx, tenant.ID, res); err != nil {
		log.Error().Err(err).Str("cart", id).Msg("failed to save cart")

		return model.Cart{}, fmt.Errorf("failed to save cart: %w", err)
	}

	return res, nil
}
