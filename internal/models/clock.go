package models

import "time"

// timeNow is swapped out by tests that need a deterministic clock.
var timeNow = time.Now
