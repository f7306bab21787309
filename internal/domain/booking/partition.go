package booking

import "time"

// Partition splits an item's non-rejected bookings, ordered by start
// ascending, around now: last is the latest booking starting strictly before
// now, next the earliest starting strictly after. A booking starting exactly
// at now lands in neither slot; the two sides are not a covering partition.
func Partition(bookings []*Booking, now time.Time) (last, next *Booking) {
	for _, b := range bookings {
		if b.StartsBefore(now) {
			last = b
		} else if b.StartsAfter(now) && next == nil {
			next = b
		}
	}
	return last, next
}
