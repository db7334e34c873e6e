// Package clock provides the wall clock used by the use cases.
package clock

import (
	"time"

	"parcels/internal/core/domain/model/pricing"
)

// NairobiClock reports the current instant in Africa/Nairobi.
type NairobiClock struct {
	now func() time.Time
}

func NewNairobiClock() *NairobiClock {
	return &NairobiClock{now: time.Now}
}

func (c *NairobiClock) Now() time.Time {
	return c.now().In(pricing.Location())
}
