package services

import "time"

// DateAtLocation truncates an instant to its calendar day in the given
// location. Access and unlock comparisons all happen at this granularity, so
// writer and reader must use the same location to agree on day boundaries.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}
