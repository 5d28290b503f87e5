package chat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Assembler reconstructs multi-line messages from the raw line stream. It
// holds at most one open message; a line either starts a new message (sealing
// the previous one), extends the open one, or is dropped because no message
// is open yet.
type Assembler struct {
	culture string
	open    *Message
	body    strings.Builder
}

func NewAssembler(culture string) *Assembler {
	return &Assembler{culture: culture}
}

// Feed consumes one raw line and returns the previously open message if this
// line sealed it, or nil.
func (a *Assembler) Feed(line string) *Message {
	line = strings.TrimRight(line, "\r")
	norm := Normalize(line)

	if h, ok := MatchHeader(norm); ok && h.Sender != "" {
		if ts, ok := ResolveTimestamp(h.Date, h.Time, h.Meridiem, a.culture); ok {
			sealed := a.seal()
			a.open = &Message{Timestamp: ts, Sender: h.Sender}
			a.body.WriteString(h.Rest)
			a.classify(h.Rest)
			return sealed
		}
	}

	// continuation line, or noise before the first header
	if a.open == nil {
		return nil
	}
	a.body.WriteString("\n")
	a.body.WriteString(line)
	a.classify(line)
	return nil
}

// Close seals the message still open at end of input, if any.
func (a *Assembler) Close() *Message {
	return a.seal()
}

func (a *Assembler) seal() *Message {
	if a.open == nil {
		return nil
	}
	m := a.open
	m.Body = strings.TrimRight(a.body.String(), " \t\r\n")
	a.open = nil
	a.body.Reset()
	return m
}

func (a *Assembler) classify(line string) {
	if !a.open.IsSystem && IsSystemLine(line) {
		a.open.IsSystem = true
	}
	if a.open.Media == MediaNone {
		a.open.Media, a.open.MediaFile = DetectMedia(line)
	}
}

// Parse streams a transcript and calls emit for each sealed message, in
// order. Only a read error on r aborts the parse; malformed content never
// does.
func Parse(r io.Reader, culture string, emit func(Message) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	a := NewAssembler(culture)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if m := a.Feed(line); m != nil {
			if err := emit(*m); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	if m := a.Close(); m != nil {
		if err := emit(*m); err != nil {
			return err
		}
	}
	return nil
}

// ParseLines parses transcript content from a string (for testing).
func ParseLines(content, culture string) ([]Message, error) {
	var messages []Message
	err := Parse(strings.NewReader(content), culture, func(m Message) error {
		messages = append(messages, m)
		return nil
	})
	return messages, err
}
