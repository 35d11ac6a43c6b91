package tracker

import (
	"errors"

	"github.com/julianstephens/studylit/internal/models"
)

// Notifier surfaces a newly earned badge to the user. Dismissal is up to the
// implementation.
type Notifier interface {
	Notify(badge models.Badge) error
}

// NotifierFunc adapts a plain function to the Notifier interface
type NotifierFunc func(badge models.Badge) error

func (f NotifierFunc) Notify(badge models.Badge) error {
	return f(badge)
}

// MultiNotifier fans a notification out to every notifier, joining their errors
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(badge models.Badge) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(badge); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
