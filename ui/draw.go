// SPDX-License-Identifier: EPL-2.0

// Package ui is the terminal front end: drawing helpers, an in-memory log
// and the interactive App.
package ui

import (
	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	errStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// DrawString writes str from (x, y) and returns the column after it.
// Nothing is drawn at or beyond maxX.
func DrawString(s tcell.Screen, x, y, maxX int, style tcell.Style, str string) int {
	for _, c := range str {
		w := runewidth.RuneWidth(c)
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, c, nil, style)
		x += w
	}
	return x
}

// Box draws a frame whose corners are (x, y) and (x+w, y+h).
func Box(s tcell.Screen, x, y, w, h int) {
	s.SetContent(x, y, tcell.RuneULCorner, nil, frameStyle)
	s.SetContent(x+w, y, tcell.RuneURCorner, nil, frameStyle)
	s.SetContent(x, y+h, tcell.RuneLLCorner, nil, frameStyle)
	s.SetContent(x+w, y+h, tcell.RuneLRCorner, nil, frameStyle)

	for col := x + 1; col < x+w; col++ {
		s.SetContent(col, y, tcell.RuneHLine, nil, frameStyle)
		s.SetContent(col, y+h, tcell.RuneHLine, nil, frameStyle)
	}
	for row := y + 1; row < y+h; row++ {
		s.SetContent(x, row, tcell.RuneVLine, nil, frameStyle)
		s.SetContent(x+w, row, tcell.RuneVLine, nil, frameStyle)
	}
}

// TitledBox is a Box with label set into its top edge.
func TitledBox(s tcell.Screen, x, y, w, h int, label string) {
	Box(s, x, y, w, h)
	DrawString(s, x+2, y, x+w-1, titleStyle, " "+label+" ")
}

// Clear blanks the w by h region at (x, y).
func Clear(s tcell.Screen, x, y, w, h int) {
	for col := x; col < x+w; col++ {
		for row := y; row < y+h; row++ {
			s.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
}
