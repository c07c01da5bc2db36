package testsupport

import "time"

// Today is the fixed instant returned by Clock.
var Today = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

// Clock returns a time source frozen at Today.
func Clock() func() time.Time {
	return func() time.Time { return Today }
}
