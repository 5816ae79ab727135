package calculation

import (
	"time"

	"github.com/steuerkit/rechner/pkg/dateutil"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// today is the calendar date of nowFunc in local time.
func today() dateutil.Date { return dateutil.DateOf(nowFunc()) }
