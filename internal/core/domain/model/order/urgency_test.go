package order_test

import (
	"testing"
	"time"

	"tailorshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUrgency(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("overdue order is VeryUrgent", func(t *testing.T) {
		due := now.AddDate(0, 0, -1)
		assert.Equal(t, order.UrgencyVeryUrgent, order.ClassifyUrgency(due, now))
	})

	t.Run("due right now is VeryUrgent", func(t *testing.T) {
		assert.Equal(t, order.UrgencyVeryUrgent, order.ClassifyUrgency(now, now))
	})

	t.Run("due within two days is Urgent", func(t *testing.T) {
		assert.Equal(t, order.UrgencyUrgent, order.ClassifyUrgency(now.AddDate(0, 0, 1), now))
		assert.Equal(t, order.UrgencyUrgent, order.ClassifyUrgency(now.AddDate(0, 0, 2), now))
	})

	t.Run("due in ten days is Normal", func(t *testing.T) {
		assert.Equal(t, order.UrgencyNormal, order.ClassifyUrgency(now.AddDate(0, 0, 10), now))
	})

	t.Run("partial days round up", func(t *testing.T) {
		// 2.5 days out rounds up to 3 days: Normal.
		due := now.Add(60 * time.Hour)
		assert.Equal(t, order.UrgencyNormal, order.ClassifyUrgency(due, now))
	})
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		due      time.Time
		expected int
	}{
		{"one day overdue", now.AddDate(0, 0, -1), -1},
		{"due now", now, 0},
		{"half a day out", now.Add(12 * time.Hour), 1},
		{"exactly two days out", now.Add(48 * time.Hour), 2},
		{"ten days out", now.AddDate(0, 0, 10), 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.DaysUntilDue(tc.due, now))
		})
	}
}
