package clip

import (
	"image"
	"time"
)

// Playback tracks the current frame of a looping clip.
type Playback struct {
	clip    *Clip
	index   int
	elapsed time.Duration
}

func NewPlayback(c *Clip) *Playback {
	return &Playback{clip: c}
}

// Advance moves playback forward by dt, wrapping to the first frame past the
// end of the stream.
func (p *Playback) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	p.elapsed += dt
	for p.elapsed >= p.clip.Delays[p.index] {
		p.elapsed -= p.clip.Delays[p.index]
		p.index++
		if p.index == p.clip.Len() {
			p.index = 0
		}
	}
}

// Rewind returns to the first frame.
func (p *Playback) Rewind() {
	p.index = 0
	p.elapsed = 0
}

// Index is the position of the current frame.
func (p *Playback) Index() int {
	return p.index
}

// Frame is the image of the current frame.
func (p *Playback) Frame() *image.RGBA {
	return p.clip.Frames[p.index]
}

func (p *Playback) Clip() *Clip {
	return p.clip
}
