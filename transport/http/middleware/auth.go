package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"beautyhub/config"
	"beautyhub/infras/jwt"
	"beautyhub/infras/otel"
	"beautyhub/permissions"
	"beautyhub/shared/constant"
	"beautyhub/shared/failure"
	"beautyhub/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// internalCaller is the actor recorded for requests authenticated by API key.
const internalCaller = "internal"

type trustedKey struct{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	tokens     jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	apiKey     []byte
}

func NewAuthRoleMiddleware(tokens jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		tokens:     tokens,
		otel:       otel,
		permission: permissions,
		apiKey:     []byte(cfg.App.APIKey),
	}
}

func trusted(r *http.Request) bool {
	ok, _ := r.Context().Value(trustedKey{}).(bool)

	return ok
}

// permissionRoutePattern resolves the registered chi pattern for r, which is what
// permissions.json is keyed by.
func permissionRoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
}

func (m *authRoleImpl) permissionFor(r *http.Request) (permissions.Permission, bool) {
	if m.permission == nil {
		return permissions.Permission{}, false
	}

	return m.permission.FindPermissions(permissionRoutePattern(r), r.Method), true
}

// Auth validates bearer tokens. Public routes still pick up the caller's
// identity when a valid token is sent, and ignore an invalid one.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if trusted(r) {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		permission, _ := m.permissionFor(r)
		header := r.Header.Get(constant.RequestHeaderAuthorization)

		scope.SetAttributes(map[string]any{
			"http.route":  permissionRoutePattern(r),
			"http.method": r.Method,
			"auth.public": permission.Skip,
		})

		if permission.Skip && header == "" {
			scope.End()
			next.ServeHTTP(w, r)

			return
		}

		claims, err := m.authenticate(ctx, header)
		if err != nil {
			scope.TraceError(err)
		}

		scope.End()

		switch {
		case err == nil:
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
		case permission.Skip:
			next.ServeHTTP(w, r)
		default:
			response.WithError(w, err)
		}
	})
}

func withIdentity(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.Subject)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

	return context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)
}

func (m *authRoleImpl) authenticate(ctx context.Context, header string) (*jwt.Claims, error) {
	if header == "" {
		return nil, failure.Unauthorized("Missing authorization header")
	}

	token, ok := jwt.BearerToken(header)
	if !ok {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.tokens.Verify(ctx, token, jwt.AccessToken)

	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrExpiredToken):
		return nil, failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return nil, failure.Unauthorized("Invalid token claims")
	default:
		return nil, failure.Unauthorized("Invalid token")
	}
}

// RBAC enforces the roles listed for the route. It must run after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if trusted(r) {
			next.ServeHTTP(w, r)

			return
		}

		permission, ok := m.permissionFor(r)
		if !ok {
			response.WithError(w, failure.ForbiddenError)

			return
		}

		_, role := Actor(r.Context())
		if m.permission.Skip || permission.Allows(role) {
			next.ServeHTTP(w, r)

			return
		}

		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		scope.SetAttributes(map[string]any{
			"user_role":     role,
			"allowed_roles": permission.Permissions,
			"http.route":    permissionRoutePattern(r),
		})
		scope.TraceError(failure.ForbiddenError)
		scope.End()

		response.WithError(w, failure.ForbiddenError)
	})
}

// APIKey lets internal callers through as superadmin. Requests without the
// header continue to Auth unchanged.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			next.ServeHTTP(w, r)

			return
		}

		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		if len(m.apiKey) == 0 || subtle.ConstantTimeCompare([]byte(key), m.apiKey) != 1 {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(w, failure.ForbiddenError)

			return
		}

		ctx := context.WithValue(r.Context(), trustedKey{}, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, internalCaller)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
