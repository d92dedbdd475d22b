package richtext

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrClosed is returned by editor operations after Save or Cancel.
var ErrClosed = errors.New("editor closed")

// Editor is one authoring session over an HTML fragment. The initial
// content seeds the session exactly once: after the first user edit the
// session becomes the sole owner of the content and later Seed calls are
// ignored, so an in-progress edit is never clobbered by a refresh of the
// upstream value.
type Editor struct {
	html    string
	dirty   bool
	closed  bool
	deliver func(string)

	selStart int
	selEnd   int
}

// Open starts an editor session seeded with initial content. deliver, if
// non-nil, receives the sanitized result on Save.
func Open(initial string, deliver func(string)) *Editor {
	return &Editor{html: initial, deliver: deliver}
}

// Seed replaces the content with a fresh upstream value. It applies only
// while the session is open and untouched; once the user has edited, the
// call is a no-op.
func (e *Editor) Seed(fragment string) {
	if e.closed || e.dirty {
		return
	}
	e.html = fragment
	e.clampSelection()
}

// HTML returns the current raw, unsanitized content.
func (e *Editor) HTML() string { return e.html }

// SetHTML replaces the content wholesale, as a direct user edit.
func (e *Editor) SetHTML(fragment string) error {
	if e.closed {
		return ErrClosed
	}
	e.html = fragment
	e.dirty = true
	e.clampSelection()
	return nil
}

// Select marks the byte range subsequent formatting commands act on.
// Out-of-range bounds are clamped.
func (e *Editor) Select(start, end int) {
	if start > end {
		start, end = end, start
	}
	e.selStart, e.selEnd = start, end
	e.clampSelection()
}

func (e *Editor) clampSelection() {
	n := len(e.html)
	if e.selStart < 0 {
		e.selStart = 0
	}
	if e.selEnd > n {
		e.selEnd = n
	}
	if e.selStart > e.selEnd {
		e.selStart = e.selEnd
	}
}

// Bold wraps the selection in <b>.
func (e *Editor) Bold() error { return e.wrap("<b>", "</b>") }

// Italic wraps the selection in <i>.
func (e *Editor) Italic() error { return e.wrap("<i>", "</i>") }

// Underline wraps the selection in <u>.
func (e *Editor) Underline() error { return e.wrap("<u>", "</u>") }

// UnorderedList turns each line of the selection into a <ul> item.
func (e *Editor) UnorderedList() error { return e.list("ul") }

// OrderedList turns each line of the selection into an <ol> item.
func (e *Editor) OrderedList() error { return e.list("ol") }

// InsertLink wraps the selection in an anchor pointing at url. With an
// empty selection the url itself becomes the link text.
func (e *Editor) InsertLink(url string) error {
	if e.closed {
		return ErrClosed
	}
	text := e.selected()
	if text == "" {
		text = html.EscapeString(url)
	}
	e.replaceSelection(fmt.Sprintf("<a href=%q>%s</a>", url, text))
	return nil
}

// Clear discards all content.
func (e *Editor) Clear() error {
	if e.closed {
		return ErrClosed
	}
	e.html = ""
	e.dirty = true
	e.selStart, e.selEnd = 0, 0
	return nil
}

// Save sanitizes the content, hands it to the deliver callback, and closes
// the session.
func (e *Editor) Save() (string, error) {
	if e.closed {
		return "", ErrClosed
	}
	clean, err := Sanitize(e.html)
	if err != nil {
		return "", err
	}
	e.closed = true
	if e.deliver != nil {
		e.deliver(clean)
	}
	return clean, nil
}

// Cancel closes the session without delivering anything.
func (e *Editor) Cancel() {
	e.closed = true
}

// Closed reports whether the session has ended.
func (e *Editor) Closed() bool { return e.closed }

func (e *Editor) selected() string {
	if e.selStart == e.selEnd {
		return ""
	}
	return e.html[e.selStart:e.selEnd]
}

func (e *Editor) wrap(open, close string) error {
	if e.closed {
		return ErrClosed
	}
	text := e.selected()
	if text == "" {
		// no selection wraps the whole content, matching a select-all
		e.selStart, e.selEnd = 0, len(e.html)
		text = e.html
	}
	e.replaceSelection(open + text + close)
	return nil
}

func (e *Editor) list(tag string) error {
	if e.closed {
		return ErrClosed
	}
	text := e.selected()
	if text == "" {
		e.selStart, e.selEnd = 0, len(e.html)
		text = e.html
	}
	var b []byte
	b = append(b, '<')
	b = append(b, tag...)
	b = append(b, '>')
	for _, line := range splitLines(text) {
		b = append(b, "<li>"...)
		b = append(b, line...)
		b = append(b, "</li>"...)
	}
	b = append(b, "</"...)
	b = append(b, tag...)
	b = append(b, '>')
	e.replaceSelection(string(b))
	return nil
}

// splitLines yields the non-blank trimmed lines of text.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func (e *Editor) replaceSelection(repl string) {
	e.html = e.html[:e.selStart] + repl + e.html[e.selEnd:]
	e.selEnd = e.selStart + len(repl)
	e.dirty = true
}
