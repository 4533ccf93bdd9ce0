// Package clip loads the menu background animation and plays it back in a
// loop, rewinding to the first frame when the last one has been shown.
package clip

import (
	"image"
	"image/draw"
	"image/gif"
	"os"
	"time"

	"github.com/pkg/errors"
)

// defaultDelay is used for frames that carry no delay of their own.
const defaultDelay = 100 * time.Millisecond

// Clip is a decoded sequence of full frames.
type Clip struct {
	Frames []*image.RGBA
	Delays []time.Duration
}

// Open decodes an animated GIF into composited frames.
func Open(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open video file %s", path)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode video file %s", path)
	}
	return FromGIF(anim)
}

// FromGIF composites each GIF frame over the previous canvas so partial
// frames become complete images.
func FromGIF(anim *gif.GIF) (*Clip, error) {
	if len(anim.Image) == 0 {
		return nil, errors.New("video has no frames")
	}

	bounds := image.Rect(0, 0, anim.Config.Width, anim.Config.Height)
	if bounds.Empty() {
		bounds = anim.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	frames := make([]*image.RGBA, 0, len(anim.Image))
	delays := make([]time.Duration, 0, len(anim.Image))

	for i, frame := range anim.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(anim.Disposal) {
			disposal = anim.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, cloneRGBA(canvas))

		delay := defaultDelay
		if i < len(anim.Delay) && anim.Delay[i] > 0 {
			delay = time.Duration(anim.Delay[i]) * 10 * time.Millisecond
		}
		delays = append(delays, delay)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	return New(frames, delays)
}

// New builds a clip from already decoded frames.
func New(frames []*image.RGBA, delays []time.Duration) (*Clip, error) {
	if len(frames) == 0 {
		return nil, errors.New("video has no frames")
	}
	if len(delays) != len(frames) {
		return nil, errors.Errorf("video has %d frames but %d delays", len(frames), len(delays))
	}
	fixed := make([]time.Duration, len(delays))
	for i, d := range delays {
		if d <= 0 {
			d = defaultDelay
		}
		fixed[i] = d
	}
	return &Clip{Frames: frames, Delays: fixed}, nil
}

func (c *Clip) Len() int {
	return len(c.Frames)
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
