package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"beautyhub/config"
	"beautyhub/infras/jwt"
	jwtMocks "beautyhub/infras/jwt/mocks"
	"beautyhub/infras/otel/mocks"
	tenantMocks "beautyhub/internal/domains/tenant/mocks"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/permissions"
	"beautyhub/shared/constant"
	"beautyhub/shared/failure"
	"beautyhub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPermissions = `{
  "endpoints": [
    {"path": "/public", "method": "GET", "skip": true},
    {"path": "/owners", "method": "GET", "permissions": ["owner", "superadmin"]},
    {"path": "/members", "method": "GET", "permissions": []}
  ]
}`

type seen struct {
	userID string
	role   string
}

func newAuthRouter(t *testing.T, tokens jwt.JWT) (http.Handler, *seen) {
	t.Helper()

	data, err := permissions.Parse([]byte(testPermissions))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	m := middleware.NewAuthRoleMiddleware(tokens, mocks.NewOtel(), data, cfg)
	got := &seen{}

	router := chi.NewRouter()
	router.Use(m.APIKey, m.Auth, m.RBAC)

	handler := func(w http.ResponseWriter, r *http.Request) {
		got.userID, got.role = middleware.Actor(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}

	router.Get("/public", handler)
	router.Get("/owners", handler)
	router.Get("/members", handler)

	return router, got
}

func call(handler http.Handler, path string, headers map[string]string) int {
	request := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder.Code
}

func claims(accountID, email, role string) *jwt.Claims {
	return &jwt.Claims{Email: email, Role: role, RegisteredClaims: gojwt.RegisteredClaims{Subject: accountID}}
}

func bearer(token string) map[string]string {
	return map[string]string{constant.RequestHeaderAuthorization: "Bearer " + token}
}

func TestAuthRole(t *testing.T) {
	t.Run("public route without token", func(t *testing.T) {
		router, got := newAuthRouter(t, jwtMocks.NewMockJWT(gomock.NewController(t)))

		assert.Equal(t, http.StatusNoContent, call(router, "/public", nil))
		assert.Empty(t, got.userID)
	})

	t.Run("public route picks up a valid token", func(t *testing.T) {
		tokens := jwtMocks.NewMockJWT(gomock.NewController(t))
		tokens.EXPECT().Verify(gomock.Any(), "good", jwt.AccessToken).
			Return(claims("u-1", "ana@example.com", constant.RoleCustomer), nil)

		router, got := newAuthRouter(t, tokens)

		assert.Equal(t, http.StatusNoContent, call(router, "/public", bearer("good")))
		assert.Equal(t, "u-1", got.userID)
	})

	t.Run("public route ignores a bad token", func(t *testing.T) {
		tokens := jwtMocks.NewMockJWT(gomock.NewController(t))
		tokens.EXPECT().Verify(gomock.Any(), "bad", jwt.AccessToken).Return(nil, jwt.ErrInvalidToken)

		router, got := newAuthRouter(t, tokens)

		assert.Equal(t, http.StatusNoContent, call(router, "/public", bearer("bad")))
		assert.Empty(t, got.userID)
	})

	t.Run("protected route without token", func(t *testing.T) {
		router, _ := newAuthRouter(t, jwtMocks.NewMockJWT(gomock.NewController(t)))

		assert.Equal(t, http.StatusUnauthorized, call(router, "/members", nil))
	})

	t.Run("expired token", func(t *testing.T) {
		tokens := jwtMocks.NewMockJWT(gomock.NewController(t))
		tokens.EXPECT().Verify(gomock.Any(), "old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

		router, _ := newAuthRouter(t, tokens)

		assert.Equal(t, http.StatusUnauthorized, call(router, "/members", bearer("old")))
	})

	t.Run("role not allowed", func(t *testing.T) {
		tokens := jwtMocks.NewMockJWT(gomock.NewController(t))
		tokens.EXPECT().Verify(gomock.Any(), "customer", jwt.AccessToken).
			Return(claims("u-1", "ana@example.com", constant.RoleCustomer), nil)

		router, _ := newAuthRouter(t, tokens)

		assert.Equal(t, http.StatusForbidden, call(router, "/owners", bearer("customer")))
	})

	t.Run("role allowed", func(t *testing.T) {
		tokens := jwtMocks.NewMockJWT(gomock.NewController(t))
		tokens.EXPECT().Verify(gomock.Any(), "owner", jwt.AccessToken).
			Return(claims("u-2", "owner@example.com", constant.RoleOwner), nil)

		router, got := newAuthRouter(t, tokens)

		assert.Equal(t, http.StatusNoContent, call(router, "/owners", bearer("owner")))
		assert.Equal(t, constant.RoleOwner, got.role)
	})

	t.Run("api key acts as superadmin", func(t *testing.T) {
		router, got := newAuthRouter(t, jwtMocks.NewMockJWT(gomock.NewController(t)))

		code := call(router, "/owners", map[string]string{constant.RequestHeaderAPIKey: "internal-key"})

		assert.Equal(t, http.StatusNoContent, code)
		assert.Equal(t, constant.RoleSuperAdmin, got.role)
	})

	t.Run("wrong api key", func(t *testing.T) {
		router, _ := newAuthRouter(t, jwtMocks.NewMockJWT(gomock.NewController(t)))

		code := call(router, "/public", map[string]string{constant.RequestHeaderAPIKey: "guess"})

		assert.Equal(t, http.StatusForbidden, code)
	})
}

func TestTenant_Resolve(t *testing.T) {
	newRouter := func(t *testing.T) (*tenantMocks.MockDirectory, http.Handler, *tenantModel.Tenant) {
		t.Helper()

		directory := tenantMocks.NewMockDirectory(gomock.NewController(t))
		resolved := &tenantModel.Tenant{}

		router := chi.NewRouter()
		router.Route("/shops/{slug}", func(r chi.Router) {
			r.Use(middleware.NewTenantMiddleware(directory, mocks.NewOtel()).Resolve)
			r.Get("/staff", func(w http.ResponseWriter, r *http.Request) {
				*resolved = middleware.TenantFrom(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})
		})

		return directory, router, resolved
	}

	t.Run("known shop", func(t *testing.T) {
		directory, router, resolved := newRouter(t)

		directory.EXPECT().ResolveBySlug(gomock.Any(), "glow").Return(tenantModel.Tenant{ID: "t-1", Slug: "glow"}, nil)

		assert.Equal(t, http.StatusNoContent, call(router, "/shops/glow/staff", nil))
		assert.Equal(t, "t-1", resolved.ID)
	})

	t.Run("unknown shop", func(t *testing.T) {
		directory, router, resolved := newRouter(t)

		directory.EXPECT().ResolveBySlug(gomock.Any(), "nope").Return(tenantModel.Tenant{}, failure.NotFound("tenant"))

		assert.Equal(t, http.StatusNotFound, call(router, "/shops/nope/staff", nil))
		assert.True(t, resolved.IsZero())
	})
}
