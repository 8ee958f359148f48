package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"beautyhub/config"
	"beautyhub/infras/jwt"
	"beautyhub/infras/otel"
	"beautyhub/internal/domains/account/model"
	"beautyhub/internal/domains/account/model/dto"
	"beautyhub/internal/domains/account/repository"
	"beautyhub/shared"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	"beautyhub/shared/failure"
	"beautyhub/shared/password"
	gRepo "beautyhub/shared/repository"
	"beautyhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

const invalidCredentials = "invalid email or password"

// Auth covers sign-up and sign-in for customers and shop owners.
type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AccountResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (dto.TokenResponse, error)
	Me(ctx context.Context) (dto.AccountResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	repo repository.Account
	cfg  *config.Config
	otel otel.Otel
	jwt  jwt.JWT
}

func New(repo repository.Account, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		jwt:  jwt,
	}
}

func byEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.Register")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exists, err := s.repo.Exist(ctx, byEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if account exists")

		return res, fmt.Errorf("failed to check if account exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	account := req.ToModel(hashed)

	if err = s.repo.Insert(ctx, account); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("email already registered")
		}

		log.Error().Err(err).Msg("failed to create account")

		return res, fmt.Errorf("failed to create account: %w", err)
	}

	res.FromModel(account)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.Login")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := byEmail(req.Email)

	account, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	// verify even when the email is unknown so both failures take as long
	if verr := password.Verify(req.Password, account.Password); verr != nil || account.IsZero() {
		log.Warn().Str("email", req.Email).Bool("known", !account.IsZero()).Msg("failed login attempt")

		return res, failure.Unauthorized(invalidCredentials)
	}

	if !account.Active {
		return res, failure.Forbidden("account is deactivated")
	}

	pair, err := s.jwt.Issue(ctx, jwt.Identity{AccountID: account.ID, Email: account.Email, Role: account.Role})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}, account.ID)
	if err := s.repo.Update(ctx, lastLogin, filter); err != nil {
		log.Warn().Err(err).Str("account", account.ID).Msg("failed to update last login")
	}

	if password.NeedsRehash(account.Password) {
		s.rehash(ctx, account.ID, req.Password)
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.Refresh")
	defer scope.End()
	defer scope.TraceIfError(&err)

	pair, err := s.jwt.Refresh(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		if errors.Is(err, jwt.ErrExpiredToken) {
			return res, failure.Unauthorized("refresh token has expired")
		}

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.Me")
	defer scope.End()
	defer scope.TraceIfError(&err)

	account, err := s.current(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(account)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(&err)

	account, err := s.current(ctx)
	if err != nil {
		return err
	}

	if err = password.Verify(req.CurrentPassword, account.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashed}, account.ID)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(account.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// rehash upgrades a hash made with an older bcrypt cost. Failures only cost
// the upgrade, never the login.
func (s *serviceImpl) rehash(ctx context.Context, id, plain string) {
	hashed, err := password.Hash(plain)
	if err != nil {
		log.Warn().Err(err).Str("account", id).Msg("failed to rehash password")

		return
	}

	fields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashed}, id)
	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Warn().Err(err).Str("account", id).Msg("failed to store rehashed password")
	}
}

// current loads the signed-in account named by the request context.
func (s *serviceImpl) current(ctx context.Context) (model.Account, error) {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if id == constant.Empty {
		return model.Account{}, failure.Unauthorized("sign in required")
	}

	account, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return account, fmt.Errorf("failed to get account: %w", err)
	}

	if account.IsZero() {
		return account, failure.NotFound(model.EntityName)
	}

	return account, nil
}
