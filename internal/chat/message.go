package chat

import "time"

// MediaStatus distinguishes messages with no media, media with a known
// filename, and media placeholders whose filename never appears in the text.
type MediaStatus int

const (
	MediaNone MediaStatus = iota
	MediaNamed
	MediaUnnamed
)

// Message is a single reconstructed chat message. It is immutable once the
// assembler seals it.
type Message struct {
	Timestamp time.Time // wall-clock time as written in the transcript
	Sender    string
	Body      string
	IsSystem  bool
	Media     MediaStatus
	MediaFile string // filename token, set only when Media == MediaNamed
}
