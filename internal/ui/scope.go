package ui

import (
	"github.com/muesli/termenv"
)

const (
	resetFgSeq = termenv.OSC + "110" + string(termenv.BEL)
	resetBgSeq = termenv.OSC + "111" + string(termenv.BEL)
)

// Scope holds the theme's page colours on the terminal for as long as the
// TUI runs. Exit must be called on every path out; it is safe to call more
// than once.
type Scope struct {
	out          *termenv.Output
	setFg, setBg bool
	closed       bool
}

// EnterScope applies the theme's page colours to out. Themes without page
// colours, and colourless outputs, leave the terminal untouched.
func EnterScope(out *termenv.Output, t Theme) *Scope {
	s := &Scope{out: out}
	if out == nil || out.Profile == termenv.Ascii {
		return s
	}
	if t.PageBg != "" {
		if c := out.Color(t.PageBg); c != nil {
			out.SetBackgroundColor(c)
			s.setBg = true
		}
	}
	if t.PageFg != "" {
		if c := out.Color(t.PageFg); c != nil {
			out.SetForegroundColor(c)
			s.setFg = true
		}
	}
	return s
}

// Exit hands the colours EnterScope changed back to the terminal's own
// defaults.
func (s *Scope) Exit() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	if s.setBg {
		_, _ = s.out.WriteString(resetBgSeq)
	}
	if s.setFg {
		_, _ = s.out.WriteString(resetFgSeq)
	}
}
