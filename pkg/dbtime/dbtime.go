//nolint:revive // exported
package dbtime

import "time"

// DBNow is the timestamp stamped on newly created and cloned records.
// Millisecond precision matches what the store keeps.
func DBNow() time.Time {
	return DBTime(time.Now())
}

func DBTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func FromUnixMilli(ms int64) time.Time {
	return DBTime(time.UnixMilli(ms))
}
