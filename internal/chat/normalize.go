package chat

import (
	"regexp"
	"strings"
)

// digitAndSpaceReplacer maps Arabic-Indic and Extended Arabic-Indic digits to
// ASCII and collapses the exotic space/joiner code points WhatsApp exports
// sprinkle around timestamps into plain spaces.
var digitAndSpaceReplacer = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	" ", " ", // no-break space
	" ", " ", // narrow no-break space (iOS exports)
	" ", " ", // thin space
	"​", " ", // zero-width space
	"⁠", " ", // word joiner
	"‎", " ", // left-to-right mark
	"‏", " ", // right-to-left mark
)

var meridiemSpaceRe = regexp.MustCompile(`(?i)\s+([ap]\.?m\.?)`)

// Normalize prepares a raw transcript line for header matching: locale digits
// become ASCII, odd Unicode spaces become plain spaces, and any whitespace run
// before an AM/PM marker collapses to a single space.
func Normalize(line string) string {
	line = digitAndSpaceReplacer.Replace(line)
	return meridiemSpaceRe.ReplaceAllString(line, " $1")
}
