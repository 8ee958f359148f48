package middleware

import (
	"context"
	"net/http"

	"beautyhub/infras/otel"
	tenantModel "beautyhub/internal/domains/tenant/model"
	tenantService "beautyhub/internal/domains/tenant/service"
	"beautyhub/shared/constant"
	"beautyhub/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Tenant resolves the {slug} path segment into the shop the request is about.
type Tenant interface {
	Resolve(next http.Handler) http.Handler
}

type tenantImpl struct {
	directory tenantService.Directory
	otel      otel.Otel
}

func NewTenantMiddleware(directory tenantService.Directory, otel otel.Otel) Tenant {
	return &tenantImpl{
		directory: directory,
		otel:      otel,
	}
}

func (m *tenantImpl) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "tenant.middleware")

		slug := chi.URLParam(request, constant.RequestParamSlug)

		tenant, err := m.directory.ResolveBySlug(ctx, slug)
		if err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.SetAttribute(constant.OtelTenantAttributeKey, tenant.ID)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(WithTenant(request.Context(), tenant)))
	})
}

func WithTenant(ctx context.Context, tenant tenantModel.Tenant) context.Context {
	return context.WithValue(ctx, constant.ContextKeyTenant, tenant)
}

// TenantFrom returns the shop resolved for this request, or a zero tenant
// outside shop routes.
func TenantFrom(ctx context.Context) tenantModel.Tenant {
	tenant, _ := ctx.Value(constant.ContextKeyTenant).(tenantModel.Tenant)

	return tenant
}

// Actor returns the signed-in user id and role, empty for anonymous callers.
func Actor(ctx context.Context) (userID, role string) {
	userID, _ = ctx.Value(constant.ContextKeyUserID).(string)
	role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return userID, role
}
