package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var (
	loaded     *PermissionData
	loadedOnce sync.Once
)

// Permission lists the roles allowed on one route pattern. Skip marks a
// public route that needs no token.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. An empty role list allows
// any authenticated caller.
func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

func routeKey(path, method string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return strings.ToUpper(method) + " " + path
}

// FindPermissions looks up a chi route pattern. Method case and a trailing
// slash are ignored. Unlisted routes get the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx, ok := r.index[routeKey(path, method)]
	if !ok {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Parse decodes a permissions document and indexes it by route.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	permissions.index = make(map[string]int, len(permissions.Endpoints))

	for idx, endpoint := range permissions.Endpoints {
		key := routeKey(endpoint.Path, endpoint.Method)
		if _, exists := permissions.index[key]; exists {
			log.Warn().Str("route", key).Msg("Duplicate permission entry, keeping the first")

			continue
		}

		permissions.index[key] = idx
	}

	return &permissions, nil
}

// Get returns the embedded permissions, decoded once. A malformed embedded
// file is a build defect and stops the process.
func Get() *PermissionData {
	loadedOnce.Do(func() {
		permissions, err := Parse(permissionsData)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
		}

		log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

		loaded = permissions
	})

	return loaded
}
