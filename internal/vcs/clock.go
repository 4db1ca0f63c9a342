package vcs

import "time"

// now is a variable so tests can pin a deterministic timestamp instead of
// depending on wall-clock time.
var now = func() int64 {
	return time.Now().Unix()
}
