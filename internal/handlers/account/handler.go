package account

import (
	"net/http"

	"beautyhub/infras/otel"
	"beautyhub/internal/domains/account/model/dto"
	"beautyhub/internal/domains/account/service"
	"beautyhub/shared/constant"
	"beautyhub/shared/failure"
	"beautyhub/shared/validator"
	"beautyhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// maxBodyBytes caps credential payloads; none of them come close.
const maxBodyBytes = 64 << 10

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh", handler.Refresh)
	})

	r.Get("/me", handler.Me)
	r.Put("/me/password", handler.ChangePassword)
}

func (handler *Handler) scope(r *http.Request, name string) (*http.Request, otel.Scope) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".account."+name)

	return r.WithContext(ctx), scope
}

// fail traces err and renders it. Rejections by the client's own input are
// logged at warn level so failed logins do not page anyone.
func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	event := log.Warn()
	if failure.GetCode(err) >= http.StatusInternalServerError {
		event = log.Error()
	}

	event.Err(err).Msg(msg)
	response.WithError(w, err)
}

func bind[T any](w http.ResponseWriter, r *http.Request, req *T) error {
	return validator.Validate(http.MaxBytesReader(w, r.Body, maxBodyBytes), req)
}

// Register handles account sign-up
// @Summary Register an account
// @Description Create a customer account, or an owner account with role=owner.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.AccountResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "Register")
	defer scope.End()

	req := dto.RegisterRequest{}
	if err := bind(w, r, &req); err != nil {
		fail(w, scope, err, "invalid register request")

		return
	}

	res, err := handler.service.Register(r.Context(), req)
	if err != nil {
		fail(w, scope, err, "failed to register account")

		return
	}

	scope.AddEvent("Account registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Login handles account sign-in
// @Summary Login
// @Description Exchange e-mail and password for an access and refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.TokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "Login")
	defer scope.End()

	req := dto.LoginRequest{}
	if err := bind(w, r, &req); err != nil {
		fail(w, scope, err, "invalid login request")

		return
	}

	res, err := handler.service.Login(r.Context(), req)
	if err != nil {
		fail(w, scope, err, "failed to login")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Refresh rotates a token pair
// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh Request"
// @Success 200 {object} response.Data[dto.TokenResponse]
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "Refresh")
	defer scope.End()

	req := dto.RefreshRequest{}
	if err := bind(w, r, &req); err != nil {
		fail(w, scope, err, "invalid refresh request")

		return
	}

	res, err := handler.service.Refresh(r.Context(), req)
	if err != nil {
		fail(w, scope, err, "failed to refresh tokens")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Me returns the signed-in account
// @Summary Current account
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.AccountResponse]
// @Failure 401 {object} response.Error
// @Router /v1/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "Me")
	defer scope.End()

	res, err := handler.service.Me(r.Context())
	if err != nil {
		fail(w, scope, err, "failed to get account")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword replaces the signed-in account's password
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/me/password [put]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	r, scope := handler.scope(r, "ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}
	if err := bind(w, r, &req); err != nil {
		fail(w, scope, err, "invalid change password request")

		return
	}

	if err := handler.service.ChangePassword(r.Context(), req); err != nil {
		fail(w, scope, err, "failed to change password")

		return
	}

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
