package chat

import (
	"regexp"
	"strings"
)

// Header holds the raw pieces captured from a message start line. Date and
// Time stay unparsed here; the timestamp resolver owns their interpretation.
type Header struct {
	Date     string
	Time     string
	Meridiem string // as written, may be empty
	Sender   string // trimmed
	Rest     string // remainder of the line, untrimmed
}

// Android-style export: 19/7/2025, 9:46 am - Alice: Hello
// The separator before the sender is an ASCII hyphen or an en-dash.
var dashHeaderRe = regexp.MustCompile(
	`^(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4}), (\d{1,2}:\d{2}(?::\d{2})?)(?: ?([AaPp]\.?[Mm]\.?))? [-\x{2013}] ([^:]+): (.*)$`)

// iOS-style export: [19/7/2025, 9:46:01 am] Alice: Hello
var bracketHeaderRe = regexp.MustCompile(
	`^\[(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4}), (\d{1,2}:\d{2}(?::\d{2})?)(?: ?([AaPp]\.?[Mm]\.?))?\] ([^:]+): (.*)$`)

var headerRes = []*regexp.Regexp{dashHeaderRe, bracketHeaderRe}

// MatchHeader reports whether a normalized line starts a new message, trying
// the dash grammar then the bracket grammar. A match here is only a
// candidate: the caller still has to resolve the timestamp.
func MatchHeader(line string) (Header, bool) {
	for _, re := range headerRes {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return Header{
			Date:     m[1],
			Time:     m[2],
			Meridiem: m[3],
			Sender:   strings.TrimSpace(m[4]),
			Rest:     m[5],
		}, true
	}
	return Header{}, false
}
