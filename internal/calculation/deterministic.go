package calculation

import "time"

// nowFunc stamps ScenarioComparison.GeneratedAt (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider and returns a func restoring the previous one.
func SetNowFunc(f func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = f
	return func() { nowFunc = prev }
}
