// Package notifier delivers badge announcements outside the core pipeline: to the
// terminal and, when it is running, to the studylit tray app over its local webhook.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess

	ErrTrayNotRunning = errors.New("studylit-tray is not running")
)

// Message renders the announcement text for a newly earned badge
func Message(b models.Badge) string {
	return fmt.Sprintf("%s New Badge Earned! %s (%g hours)", b.Emoji, b.Name, b.HoursRequired)
}

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFD700"))

// Console prints badge announcements to a writer, typically stdout
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(b models.Badge) error {
	_, err := fmt.Fprintln(c.w, bannerStyle.Render(Message(b)))
	return err
}

// Tray forwards badge announcements to the desktop tray app
type Tray struct {
	client *http.Client
}

type payload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

type lockfile struct {
	Port   int
	PID    int
	Secret string
}

func NewTray() *Tray {
	return &Tray{
		client: &http.Client{Timeout: constants.NotifyTimeout},
	}
}

func (t *Tray) Notify(b models.Badge) error {
	dir, err := TrayConfigDir()
	if err != nil {
		return err
	}

	lock, err := readLockfile(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}
	if err := checkTrayProcess(lock.PID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.NotifyTimeout)
	defer cancel()
	return t.send(ctx, fmt.Sprintf("http://127.0.0.1:%d", lock.Port), lock.Secret, payload{
		Text:       Message(b),
		DurationMs: constants.NotificationDurationMs,
	})
}

// TrayConfigDir returns the directory holding the tray app's lockfile. The tray app may
// relocate it with "lockfile_dir" in its settings.json.
func TrayConfigDir() (string, error) {
	base, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	dir := filepath.Join(base, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	if err != nil {
		return dir, nil
	}
	var cfg struct {
		Settings struct {
			LockfileDir string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if json.Unmarshal(data, &cfg) == nil && cfg.Settings.LockfileDir != "" {
		return cfg.Settings.LockfileDir, nil
	}
	return dir, nil
}

// readLockfile parses "port|pid|secret"
func readLockfile(path string) (lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lockfile{}, ErrTrayNotRunning
	}
	return parseLockfile(string(data))
}

func parseLockfile(content string) (lockfile, error) {
	parts := strings.Split(strings.TrimSpace(content), "|")
	if len(parts) != 3 {
		return lockfile{}, errors.New("lockfile is malformed")
	}

	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return lockfile{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return lockfile{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return lockfile{}, errors.New("invalid process ID in lockfile")
	}

	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return lockfile{}, errors.New("secret in lockfile is empty")
	}

	return lockfile{Port: port, PID: pid, Secret: secret}, nil
}

// checkTrayProcess guards against a stale lockfile whose pid was reused
func checkTrayProcess(pid int) error {
	proc, err := findProcessFunc(pid)
	if err != nil || proc == nil {
		return ErrTrayNotRunning
	}
	if !strings.HasPrefix(proc.Executable(), constants.TrayExecutablePrefix) {
		return fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayExecutablePrefix, proc.Executable())
	}
	return nil
}

func (t *Tray) send(ctx context.Context, url, secret string, p payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Studylit-Secret", secret)

	res, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach tray app: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
}
