package ledger

import "time"

// Clock supplies transaction timestamps. Production code uses SystemClock;
// tests may inject a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
