package ports

import "time"

// Clock supplies the monotonically non-decreasing current time used for
// all window checks
type Clock interface {
	Now() time.Time
}
