package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/backup"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/notifier"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/storage/sqlite"
	"github.com/julianstephens/studylit/internal/tracker"
)

type Context struct {
	Store storage.Provider
	// Out receives command output; nil means stdout
	Out io.Writer
	// TrackerOptions are applied when the tracker is first built
	TrackerOptions []tracker.Option

	tracker *tracker.Tracker
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Tracker loads the store on first use and returns the shared tracker. Badge
// announcements are always printed; extra notifiers are added alongside.
func (c *Context) Tracker(extra ...tracker.Notifier) (*tracker.Tracker, error) {
	if c.tracker != nil {
		return c.tracker, nil
	}
	if err := c.Store.Load(); err != nil {
		return nil, err
	}

	notifiers := tracker.MultiNotifier{notifier.NewConsole(c.Stdout())}
	notifiers = append(notifiers, extra...)

	opts := append([]tracker.Option{tracker.WithNotifier(notifiers)}, c.TrackerOptions...)
	c.tracker = tracker.New(c.Store, opts...)

	// award anything the stored log already qualifies for
	if _, err := c.tracker.Evaluate(); err != nil {
		logger.Warn("Failed to evaluate badges on startup", "error", err)
	}
	return c.tracker, nil
}

// SQLiteStore returns the store as a SQLite store, or an error naming the command
// that needs one
func (c *Context) SQLiteStore(command string) (*sqlite.Store, error) {
	s, ok := c.Store.(*sqlite.Store)
	if !ok {
		return nil, fmt.Errorf("%s is only supported for SQLite storage", command)
	}
	return s, nil
}

// PerformAutomaticBackup snapshots SQLite stores and only logs failures
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	if _, err := backup.NewManager(c.Store.GetConfigPath()).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// ResolveSubject accepts a subject id or a case-insensitive subject name
func ResolveSubject(input string) (models.Subject, error) {
	needle := strings.TrimSpace(input)
	if s, ok := models.LookupSubject(needle); ok {
		return s, nil
	}
	for _, s := range models.Subjects() {
		if strings.EqualFold(s.ID, needle) || strings.EqualFold(s.Name, needle) {
			return s, nil
		}
	}

	ids := make([]string, 0, len(models.Subjects()))
	for _, s := range models.Subjects() {
		ids = append(ids, s.ID)
	}
	return models.Subject{}, fmt.Errorf("unknown subject %q (choose one of: %s)", input, strings.Join(ids, ", "))
}

// ParseHours validates a session length for the hours selector grid
func ParseHours(h float64) (float64, error) {
	if h < 0 {
		return 0, errors.New("hours cannot be negative")
	}
	if !models.IsHoursStep(h) {
		return 0, errors.New("hours must be a multiple of 0.5")
	}
	return h, nil
}

// FormatHours renders hours without trailing zeros: 2.5h, 3h
func FormatHours(h float64) string {
	return fmt.Sprintf("%gh", h)
}

// FormatDate renders an RFC3339 timestamp in local time, or returns it unchanged
func FormatDate(t string, layout string) string {
	e := models.LogEntry{Date: t}
	parsed := e.Time()
	if parsed.IsZero() {
		return t
	}
	return parsed.Local().Format(layout)
}
