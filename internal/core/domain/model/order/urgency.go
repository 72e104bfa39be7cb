package order

import "time"

// Urgency classifies how close an order is to its expected delivery date.
// It is derived on every read from expectedDelivery and "now" and is never
// stored: a persisted urgency would go stale overnight.
type Urgency string

const (
	// UrgencyNormal means the delivery date is more than two days away.
	UrgencyNormal Urgency = "Normal"

	// UrgencyUrgent means the delivery date is one or two days away.
	UrgencyUrgent Urgency = "Urgent"

	// UrgencyVeryUrgent means the delivery date is today or already past.
	UrgencyVeryUrgent Urgency = "VeryUrgent"
)

// String returns the urgency bucket name.
func (u Urgency) String() string {
	return string(u)
}

// DaysUntilDue returns the number of whole days until the expected delivery,
// rounding any partial day up. Due today or overdue yields zero or negative.
func DaysUntilDue(expectedDelivery, now time.Time) int {
	remaining := expectedDelivery.Sub(now)
	days := int(remaining / (24 * time.Hour))
	if remaining > 0 && remaining%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// ClassifyUrgency buckets an order by days until its expected delivery:
// VeryUrgent when due today or overdue, Urgent when due within two days,
// Normal otherwise.
func ClassifyUrgency(expectedDelivery, now time.Time) Urgency {
	days := DaysUntilDue(expectedDelivery, now)
	switch {
	case days <= 0:
		return UrgencyVeryUrgent
	case days <= 2:
		return UrgencyUrgent
	default:
		return UrgencyNormal
	}
}
