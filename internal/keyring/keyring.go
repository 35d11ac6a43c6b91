package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/studylit/internal/constants"
)

var (
	// ErrNotFound is returned when no connection string has been stored
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrUnavailable is returned when the OS keyring cannot be reached
	ErrUnavailable = errors.New("OS keyring is not available")
)

// Source names where a resolved connection string came from
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceKeyring Source = "keyring"
)

func GetConnectionString() (string, error) {
	conn, err := gokeyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if errors.Is(err, gokeyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return conn, nil
}

func SetConnectionString(conn string) error {
	if strings.TrimSpace(conn) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := gokeyring.Set(constants.AppName, constants.DefaultKeyringUser, conn); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func DeleteConnectionString() error {
	err := gokeyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if errors.Is(err, gokeyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable probes the keyring with a read. A missing entry still counts as available.
func IsAvailable() bool {
	_, err := gokeyring.Get(constants.AppName, "probe")
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}

// ResolveConnectionString picks the Postgres connection string to use. The environment
// variable wins over the keyring, and both win over a password-less flag value so that
// the secret never has to appear on the command line.
func ResolveConnectionString(flagValue string) (string, Source, error) {
	if env := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); env != "" {
		return env, SourceEnv, nil
	}

	conn, err := GetConnectionString()
	switch {
	case err == nil:
		return conn, SourceKeyring, nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnavailable):
		if flagValue == "" {
			return "", "", err
		}
		return flagValue, SourceFlag, nil
	default:
		return "", "", err
	}
}
