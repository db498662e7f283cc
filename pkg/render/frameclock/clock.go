// Package frameclock is a render.Scheduler for hosts without a display:
// frames happen when the owner advances the clock, either by hand or on a ticker.
package frameclock

import (
	"context"
	"time"

	"github.com/willbeason/fractal-trees/pkg/render"
)

// Clock queues frame callbacks until Advance runs them.
//
// The zero Clock is ready to use. A Clock is not safe for concurrent use;
// callbacks run on the goroutine calling Advance or Run.
type Clock struct {
	next    render.FrameID
	pending []request
	due     []request
	frames  uint64
}

type request struct {
	id render.FrameID
	cb func()
}

var _ render.Scheduler = (*Clock)(nil)

func (c *Clock) RequestFrame(cb func()) render.FrameID {
	c.next++
	c.pending = append(c.pending, request{id: c.next, cb: cb})
	return c.next
}

func (c *Clock) CancelFrame(id render.FrameID) {
	for i := range c.due {
		if c.due[i].id == id {
			c.due[i].cb = nil
			return
		}
	}

	for i, r := range c.pending {
		if r.id == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Advance presents one frame: it runs every callback that was pending when it
// was called, in registration order. Callbacks requested during Advance wait
// for the next frame. It returns the number of callbacks run.
func (c *Clock) Advance() int {
	c.frames++

	c.due, c.pending = c.pending, nil

	ran := 0
	for i := range c.due {
		// An earlier callback in this frame may have cancelled this one.
		cb := c.due[i].cb
		if cb == nil {
			continue
		}
		c.due[i].cb = nil
		cb()
		ran++
	}
	c.due = nil

	return ran
}

// Pending is the number of callbacks waiting for the next frame.
func (c *Clock) Pending() int {
	return len(c.pending)
}

// Frames is the number of frames presented so far.
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Run presents frames at fps until n frames have been presented or ctx is done.
// A negative n runs until ctx is done. An fps of zero presents frames back to
// back without waiting.
func (c *Clock) Run(ctx context.Context, fps int, n int) error {
	var tick <-chan time.Time
	if fps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		tick = ticker.C
	}

	for i := 0; n < 0 || i < n; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		c.Advance()
	}

	return nil
}
