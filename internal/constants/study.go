package constants

const (
	// HoursStep is the increment used by the hours selector
	HoursStep = 0.5

	// DefaultSessionHours is the value the hours selector starts at and resets to after a commit
	DefaultSessionHours = 2.5

	// DailyGoalHours drives the progress bar in the TUI
	DailyGoalHours = 8.0

	// UnknownSubjectLabel is rendered for log entries whose subject id is not in the catalog
	UnknownSubjectLabel = "unknown subject"
)
