package util

import "time"

// HourlyBucketLayout is the wire format of bucket starts, e.g. 2024-01-01T10:00:00.000Z.
const HourlyBucketLayout = "2006-01-02T15:04:05.000Z07:00"

// FromUnixMilli converts epoch milliseconds to a UTC time.
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// HourFloorUTC truncates t to the start of its UTC hour.
func HourFloorUTC(t time.Time) time.Time {
	return t.UTC().Truncate(time.Hour)
}

// HourBucket returns the UTC hour the epoch millisecond timestamp falls in.
func HourBucket(ms int64) time.Time {
	return HourFloorUTC(FromUnixMilli(ms))
}
