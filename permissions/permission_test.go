package permissions_test

import (
	"net/http"
	"testing"

	"beautyhub/permissions"
	"beautyhub/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedRoutes(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		path, method string
		public       bool
		allowed      []string
		denied       []string
	}{
		{path: "/v1/shops", method: http.MethodGet, public: true},
		{path: "/v1/shops/{slug}/availability/slots", method: http.MethodGet, public: true},
		{path: "/v1/auth/login", method: http.MethodPost, public: true},
		{
			path:    "/v1/shops",
			method:  http.MethodPost,
			allowed: []string{constant.RoleOwner, constant.RoleSuperAdmin},
			denied:  []string{constant.RoleCustomer},
		},
		{
			path:    "/v1/shops/{slug}/reservations",
			method:  http.MethodGet,
			allowed: []string{constant.RoleOwner},
			denied:  []string{constant.RoleCustomer},
		},
		{
			path:    "/v1/shops/{slug}/carts/{id}/checkout",
			method:  http.MethodPost,
			allowed: []string{constant.RoleCustomer, constant.RoleOwner},
		},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.path, permission.Path)
			assert.Equal(t, tt.public, permission.Skip)

			for _, role := range tt.allowed {
				assert.True(t, permission.Allows(role), role)
			}

			for _, role := range tt.denied {
				assert.False(t, permission.Allows(role), role)
			}
		})
	}
}

func TestFindPermissions_Unknown(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/a","method":"GET","skip":true}]}`))
	require.NoError(t, err)

	assert.True(t, data.FindPermissions("/a", http.MethodGet).Skip)
	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/a", http.MethodPost))
	assert.True(t, data.FindPermissions("/b", http.MethodGet).Allows(constant.RoleCustomer))
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}
