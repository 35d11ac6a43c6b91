package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/studylit/internal/keyring"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/storage/postgres"
	"github.com/julianstephens/studylit/internal/storage/sqlite"
)

// OpenStore picks a storage backend from the config value: a PostgreSQL URL, a .json
// file, ":memory:", or otherwise a SQLite database path. Nothing is loaded yet.
func OpenStore(config string) (storage.Provider, error) {
	switch {
	case postgres.IsConnString(config):
		if postgres.HasEmbeddedCredentials(config) {
			return nil, errors.New("PostgreSQL connection strings with embedded credentials are not allowed, " +
				"store the full connection string with 'studylit keyring set' or in $STUDYLIT_DB_CONNECTION instead")
		}
		conn, src, err := keyring.ResolveConnectionString(config)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve connection string: %w", err)
		}
		if err := postgres.ValidateConnString(conn, src != keyring.SourceFlag); err != nil {
			return nil, err
		}
		logger.Debug("Using PostgreSQL storage", "source", src)
		return postgres.New(conn), nil
	case config == ":memory:":
		return storage.NewMemoryStore(), nil
	case strings.HasSuffix(strings.ToLower(config), ".json"):
		return storage.NewJSONStore(config), nil
	default:
		return sqlite.NewStore(config), nil
	}
}

// CopyRecords copies every record from src into dst and returns how many were copied
func CopyRecords(dst, src storage.Provider) (int, error) {
	keys, err := src.Keys()
	if err != nil {
		return 0, fmt.Errorf("failed to list source records: %w", err)
	}
	for _, k := range keys {
		v, err := src.Get(k)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", k, err)
		}
		if err := dst.Set(k, v); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", k, err)
		}
	}
	return len(keys), nil
}
