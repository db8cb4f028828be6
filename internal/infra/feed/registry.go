// Package feed resolves feed keys to GTFS-RT endpoints and decodes vehicle positions.
package feed

import (
	"net/url"
	"slices"
	"strings"

	"gtfstrigger/config"
	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrInvalidRegistry is returned when the configured feed list is unusable.
var ErrInvalidRegistry = errors.New("invalid feed registry")

// Registry is the closed set of known feeds, built once at startup.
type Registry struct {
	definitions map[string]entity.FeedDefinition
	keys        []string
}

var _ service.FeedRegistry = (*Registry)(nil)

// NewRegistry builds the registry from the feeds section of the configuration.
func NewRegistry(cfg *config.Config) (service.FeedRegistry, error) {
	if cfg.Feeds == nil {
		return nil, errors.Wrap(ErrInvalidRegistry, "feeds section is missing")
	}

	return NewRegistryFromEntries(cfg.Feeds.APIBaseURL, cfg.Feeds.Entries)
}

// NewRegistryFromEntries resolves every entry to an absolute URL. Entries with a
// path are joined to baseURL. Duplicate keys and non-http URLs are rejected.
func NewRegistryFromEntries(baseURL string, entries []config.FeedEntry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, errors.Wrap(ErrInvalidRegistry, "no feeds configured")
	}

	registry := &Registry{
		definitions: make(map[string]entity.FeedDefinition, len(entries)),
		keys:        make([]string, 0, len(entries)),
	}

	for _, entry := range entries {
		key := strings.TrimSpace(entry.Key)
		if key == "" {
			return nil, errors.Wrap(ErrInvalidRegistry, "feed key is empty")
		}
		if _, exists := registry.definitions[key]; exists {
			return nil, errors.Wrapf(ErrInvalidRegistry, "duplicate feed key %q", key)
		}

		resolved, err := resolveURL(baseURL, entry)
		if err != nil {
			return nil, errors.Wrapf(err, "feed %q", key)
		}

		registry.definitions[key] = entity.FeedDefinition{
			Key:         key,
			URL:         resolved,
			StopsGTFSID: entry.StopsGTFSID,
			ReadOnly:    entry.ReadOnly,
		}
		registry.keys = append(registry.keys, key)
	}

	slices.Sort(registry.keys)

	return registry, nil
}

// Lookup returns the definition of feedKey.
func (r *Registry) Lookup(feedKey string) (entity.FeedDefinition, bool) {
	def, ok := r.definitions[feedKey]

	return def, ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	return slices.Clone(r.keys)
}

func resolveURL(baseURL string, entry config.FeedEntry) (string, error) {
	raw := strings.TrimSpace(entry.URL)
	if raw == "" {
		if strings.TrimSpace(baseURL) == "" {
			return "", errors.Wrap(ErrInvalidRegistry, "path given without apiBaseUrl")
		}
		raw = strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(entry.Path, "/")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrap(ErrInvalidRegistry, err.Error())
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.Wrapf(ErrInvalidRegistry, "unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", errors.Wrap(ErrInvalidRegistry, "missing host")
	}

	return parsed.String(), nil
}
