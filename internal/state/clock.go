package state

import (
	"time"

	"github.com/google/uuid"
)

// strokeClock numbers strokes in the order they were started. Sequence
// numbers keep increasing across clears.
type strokeClock struct {
	counter uint64
	now     func() time.Time
}

func (c *strokeClock) tick() uint64 {
	c.counter++
	return c.counter
}

func (c *strokeClock) stamp() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// newStroke allocates an empty stroke with a fresh id.
func (c *strokeClock) newStroke() *Stroke {
	return &Stroke{
		ID:      uuid.NewString(),
		Seq:     c.tick(),
		Started: c.stamp(),
	}
}
