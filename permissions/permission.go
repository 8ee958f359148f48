package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes who may call one route pattern. An empty role list
// admits any signed-in caller.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func key(path, method string) string {
	return method + " " + path
}

// FindPermissions looks up the entry for a chi route pattern. Unknown routes
// yield the zero Permission, which requires a signed-in caller.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
			return rp.Path == path && rp.Method == method
		})

		if idx == -1 {
			return Permission{}
		}

		return r.Endpoints[idx]
	}

	return r.index[key(path, method)]
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err
	}

	permissions.index = make(map[string]Permission, len(permissions.Endpoints))
	for _, endpoint := range permissions.Endpoints {
		permissions.index[key(endpoint.Path, endpoint.Method)] = endpoint
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
