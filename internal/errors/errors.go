// Package errors turns command failures into the message studylit prints before
// exiting, with a hint for the failures a user can fix themselves.
package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/studylit/internal/keyring"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/storage/postgres"
	"github.com/julianstephens/studylit/internal/tracker"
)

var hints = []struct {
	err  error
	hint string
}{
	{storage.ErrNotInitialized, "run 'studylit init' to create the database"},
	{keyring.ErrNotFound, "store a connection string with 'studylit keyring set <url>' or set STUDYLIT_DB_CONNECTION"},
	{keyring.ErrUnavailable, "no OS keyring here, set STUDYLIT_DB_CONNECTION instead"},
	{postgres.ErrEmbeddedCredentials, "keep the password out of --config, use 'studylit keyring set' instead"},
	{tracker.ErrInvalidHours, "hours must be zero or more, in steps of 0.5"},
	{tracker.ErrBadgesNotSaved, "do not log the session again, badges are re-checked on the next run"},
}

// Format renders err with the "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Hint returns a suggested next step for err, or "" when there is none
func Hint(err error) string {
	for _, h := range hints {
		if stderrors.Is(err, h.err) {
			return h.hint
		}
	}
	return ""
}

// Report writes the formatted error and its hint to w
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, Format(err))
	if hint := Hint(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// Fatal logs err, reports it on stderr and exits with status 1. A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	Report(os.Stderr, err)
	os.Exit(1)
}
