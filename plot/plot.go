// SPDX-License-Identifier: EPL-2.0

// Package plot draws waveforms into a region of a tcell screen.
package plot

import (
	"github.com/gdamore/tcell"
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Scale is the value range mapped onto the height of a Rect.
type Scale struct {
	Lo, Hi int
}

var (
	// PCM16 covers every int16 sample.
	PCM16 = Scale{Lo: -32768, Hi: 32767}
	// Bytes covers raw input bytes.
	Bytes = Scale{Lo: 0, Hi: 255}
)

var (
	traceStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	axisStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Sample is anything a waveform can be drawn from.
type Sample interface {
	~int16 | ~uint8
}

// Draw plots data[x0:x1] (clamped) across r. Each column shows the min..max
// span of the samples that fall into it, so nothing is lost when the range
// is wider than the region. A horizontal axis marks zero when the scale
// crosses it.
func Draw[T Sample](s tcell.Screen, r Rect, data []T, x0, x1 int, sc Scale) {
	if r.W <= 0 || r.H <= 0 || sc.Hi <= sc.Lo {
		return
	}

	blank(s, r)

	if sc.Lo < 0 && sc.Hi > 0 {
		zero := row(0, r, sc)
		for col := r.X; col < r.X+r.W; col++ {
			s.SetContent(col, zero, tcell.RuneHLine, nil, axisStyle)
		}
	}

	x0 = min(max(x0, 0), len(data))
	x1 = min(max(x1, x0), len(data))
	n := x1 - x0
	if n == 0 {
		return
	}

	for c := range r.W {
		// narrow ranges repeat a sample over several columns
		lo := x0 + c*n/r.W
		hi := max(x0+(c+1)*n/r.W, lo+1)

		vmin, vmax := int(data[lo]), int(data[lo])
		for _, v := range data[lo+1 : hi] {
			vmin = min(vmin, int(v))
			vmax = max(vmax, int(v))
		}

		top, bottom := row(vmax, r, sc), row(vmin, r, sc)
		for y := top; y <= bottom; y++ {
			mark := tcell.RuneVLine
			if top == bottom {
				mark = tcell.RuneBullet
			}
			s.SetContent(r.X+c, y, mark, nil, traceStyle)
		}
	}
}

// row maps v onto r, Hi at the top line and Lo at the bottom.
func row(v int, r Rect, sc Scale) int {
	v = min(max(v, sc.Lo), sc.Hi)
	off := (sc.Hi - v) * (r.H - 1) / (sc.Hi - sc.Lo)
	return r.Y + off
}

func blank(s tcell.Screen, r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}
