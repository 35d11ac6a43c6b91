package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/julianstephens/studylit/internal/keyring"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/tracker"
)

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not initialized", storage.ErrNotInitialized, "studylit init"},
		{"wrapped not initialized", fmt.Errorf("open: %w", storage.ErrNotInitialized), "studylit init"},
		{"keyring empty", fmt.Errorf("failed to resolve connection string: %w", keyring.ErrNotFound), "keyring set"},
		{"keyring missing", keyring.ErrUnavailable, "STUDYLIT_DB_CONNECTION"},
		{"bad hours", fmt.Errorf("entry 2: %w", tracker.ErrInvalidHours), "steps of 0.5"},
		{"badges unsaved", fmt.Errorf("session logged: %w", tracker.ErrBadgesNotSaved), "do not log the session again"},
		{"unknown", stderrors.New("unknown subject \"latin\""), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hint(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("expected no hint, got %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Hint(%v) = %q, want it to mention %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, fmt.Errorf("failed to load storage: %w", storage.ErrNotInitialized))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected error and hint lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "Error: failed to load storage") {
		t.Errorf("unexpected error line %q", lines[0])
	}
	if lines[1] != "Hint: run 'studylit init' to create the database" {
		t.Errorf("unexpected hint line %q", lines[1])
	}

	buf.Reset()
	Report(&buf, stderrors.New("unknown subject \"latin\""))
	if buf.String() != "Error: unknown subject \"latin\"\n" {
		t.Errorf("expected a single line without hint, got %q", buf.String())
	}

	buf.Reset()
	Report(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output for nil, got %q", buf.String())
	}
}

// TestFatal runs Fatal in a helper process and checks the exit code and output
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(storage.ErrNotInitialized)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatalf("Fatal() did not exit with error: %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("Fatal() exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Hint: run 'studylit init'") {
		t.Errorf("Fatal() stderr = %q, want the init hint", stderr.String())
	}
}

func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal_NilError$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")
	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, got %v", err)
	}
}
