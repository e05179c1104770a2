package ptr

import "time"

// Int64 return a pointer to the input value
func Int64(value int64) *int64 {
	return &value
}

// Time return a pointer to the input value
func Time(value time.Time) *time.Time {
	return &value
}
