// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell"

	"github.com/ik5/pcmextract/plot"
	"github.com/ik5/pcmextract/shell"
)

const (
	logLines  = 6
	minHeight = logLines + 10
	prompt    = "> "
)

// App shows the decoded waveform above the raw bytes (or the reference
// clip, once loaded), the log, and a command line feeding a Shell.
type App struct {
	screen tcell.Screen
	shell  *shell.Shell
	log    *RingLog
	logger *log.Logger

	input  []rune
	lastOK bool
}

// NewApp draws on an initialised screen. Command errors go to logger,
// which normally writes into rl.
func NewApp(screen tcell.Screen, sh *shell.Shell, rl *RingLog, logger *log.Logger) *App {
	return &App{
		screen: screen,
		shell:  sh,
		log:    rl,
		logger: logger,
		lastOK: true,
	}
}

// Run draws and handles events until quit. It returns when the screen
// stops producing events too.
func (a *App) Run() {
	for {
		a.Draw()

		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if a.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent processes one event and reports whether the App should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			return true
		case tcell.KeyEnter:
			return a.submit()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(a.input) > 0 {
				a.input = a.input[:len(a.input)-1]
			}
		case tcell.KeyRune:
			a.input = append(a.input, e.Rune())
		}
	}
	return false
}

func (a *App) submit() bool {
	line := string(a.input)
	a.input = a.input[:0]

	if line != "" {
		fmt.Fprintf(a.log, "%s%s\n", prompt, line)
	}

	act, err := a.shell.Exec(line)
	a.lastOK = err == nil
	if err != nil {
		a.logger.Printf("%s: %v", line, err)
	}

	return act == shell.Quit
}

// Input is the command line being typed.
func (a *App) Input() string { return string(a.input) }

// Draw renders the whole screen and shows it.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	if h >= minHeight && w >= 20 {
		a.drawPanels(w, h)
	}

	style := textStyle
	if !a.lastOK {
		style = errStyle
	}
	x := DrawString(a.screen, 0, h-1, w, style, prompt)
	x = DrawString(a.screen, x, h-1, w, textStyle, string(a.input))
	a.screen.ShowCursor(x, h-1)

	a.screen.Show()
}

func (a *App) drawPanels(w, h int) {
	sess := a.shell.Session()
	x0, x1 := a.shell.Range()

	logY := h - 1 - (logLines + 2)
	top := logY / 2

	// decoded samples
	cfg := sess.Config()
	TitledBox(a.screen, 0, 0, w-1, top-1, fmt.Sprintf("decoded %d samples [%d,%d)", sess.Len(), x0, x1))
	plot.Draw(a.screen, inner(0, top, w), sess.View(), x0, x1, plot.PCM16)

	// the reference clip replaces the raw view once loaded
	if ref, err := sess.Reference(); err == nil {
		TitledBox(a.screen, 0, top, w-1, logY-top-1, fmt.Sprintf("reference %d samples", len(ref)))
		plot.Draw(a.screen, inner(top, logY-top, w), ref, x0, x1, plot.PCM16)
	} else {
		TitledBox(a.screen, 0, top, w-1, logY-top-1, fmt.Sprintf("raw bytes, stride %d", cfg.Stride))
		plot.Draw(a.screen, inner(top, logY-top, w), sess.RawSteps(), x0, x1, plot.Bytes)
	}

	TitledBox(a.screen, 0, logY, w-1, logLines+1, cfg.String())
	for i, line := range a.log.Lines(logLines) {
		DrawString(a.screen, 2, logY+1+i, w-2, textStyle, line)
	}
}

// inner is the plot area of a full-width panel of height rows starting at y.
func inner(y, height, w int) plot.Rect {
	return plot.Rect{X: 1, Y: y + 1, W: w - 2, H: height - 2}
}
