package ui

import (
	"github.com/wagoodman/go-partybus"
)

// UI reacts to application events published during a scan. Implementations
// call the provided unsubscribe function once the final report event has
// been handled.
type UI interface {
	Setup(unsubscribe func() error) error
	partybus.Handler
	Teardown(force bool) error
}
