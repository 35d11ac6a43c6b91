package constants

import "time"

// SessionState represents the current view of the TUI application
type SessionState int

const (
	AppName            = "studylit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/studylit/studylit.db"
	Version            = "v0.1.0"

	// Persisted record keys
	KeyStudyLog = "studyLog"
	KeyBadges   = "badges"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is used when showing session and badge timestamps to the user
	DateTimeFormat = "2006-01-02 15:04"

	// Log file constants
	LogDirName   = "logs"
	LogFileName  = AppName + ".log"
	LogMaxSizeMB = 5
	LogMaxFiles  = 3
	LogMaxAgeDay = 30

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "studylit-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "studylit-notifier.lock"
	NotificationDurationMs = 5000
	NotifyTimeout          = 2 * time.Second
	TrayAppIdentifier      = "com.julianstephens.studylit"
	TrayExecutablePrefix   = "studylit-tray"

	// Environment variables
	EnvDBConnection = "STUDYLIT_DB_CONNECTION"
)

// Session States
const (
	StateLog SessionState = iota
	StateHistory
	StateBadges
	StateAddSession
	StateConfirmDelete
)
