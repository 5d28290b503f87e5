package chat

import (
	"strings"
	"testing"
	"time"
)

func TestParseSingleMessage(t *testing.T) {
	msgs, err := ParseLines("19/7/2025, 9:46 am - Alice: Hello there", "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	m := msgs[0]
	if m.Sender != "Alice" {
		t.Errorf("Sender = %q", m.Sender)
	}
	if m.Body != "Hello there" {
		t.Errorf("Body = %q", m.Body)
	}
	want := time.Date(2025, 7, 19, 9, 46, 0, 0, time.UTC)
	if !m.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", m.Timestamp, want)
	}
}

func TestParseMultilineBody(t *testing.T) {
	msgs, err := ParseLines("[19/7/2025, 9:46 am] Alice: Hello\nWorld", "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Body != "Hello\nWorld" {
		t.Errorf("Body = %q, want %q", msgs[0].Body, "Hello\nWorld")
	}
}

func TestParseSealsOnNextHeader(t *testing.T) {
	input := strings.Join([]string{
		"19/7/2025, 9:46 am - Alice: first",
		"continued",
		"19/7/2025, 9:47 am - Bob: second",
	}, "\n")
	msgs, err := ParseLines(input, "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Body != "first\ncontinued" {
		t.Errorf("Body = %q", msgs[0].Body)
	}
	if msgs[1].Sender != "Bob" || msgs[1].Body != "second" {
		t.Errorf("second = %+v", msgs[1])
	}
}

func TestParseDropsLinesBeforeFirstHeader(t *testing.T) {
	input := "orphan line\nanother one\n19/7/2025, 9:46 am - Alice: hi"
	msgs, err := ParseLines(input, "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Body != "hi" {
		t.Fatalf("got %+v", msgs)
	}
}

func TestParseUnresolvableHeaderIsContinuation(t *testing.T) {
	// month 13 fails every parse, so the second line extends the first
	// message instead of starting one
	input := strings.Join([]string{
		"19/7/2025, 9:46 am - Alice: hi",
		"19/13/2025, 9:46 am - Bob: fake header",
	}, "\n")
	msgs, err := ParseLines(input, "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0].Body, "fake header") {
		t.Errorf("Body = %q, want the fake header appended", msgs[0].Body)
	}
}

func TestParseSystemFlagFromHeaderLine(t *testing.T) {
	msgs, err := ParseLines("19/7/2025, 9:46 am - Alice: Security code changed", "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if !msgs[0].IsSystem {
		t.Error("IsSystem = false, want true")
	}
}

func TestParseSystemFlagMonotonic(t *testing.T) {
	input := strings.Join([]string{
		"19/7/2025, 9:46 am - Alice: Missed voice call",
		"totally normal continuation",
	}, "\n")
	msgs, err := ParseLines(input, "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if !msgs[0].IsSystem {
		t.Error("IsSystem dropped by a later non-system line")
	}
}

func TestParseMediaTokenNotOverwritten(t *testing.T) {
	input := strings.Join([]string{
		"19/7/2025, 9:46 am - Alice: photo_2024.jpg (file attached)",
		"second_file.png also mentioned here",
	}, "\n")
	msgs, err := ParseLines(input, "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	m := msgs[0]
	if m.Media != MediaNamed || m.MediaFile != "photo_2024.jpg" {
		t.Errorf("got %v %q, want first token kept", m.Media, m.MediaFile)
	}
}

func TestParseMediaFromContinuationLine(t *testing.T) {
	input := strings.Join([]string{
		"19/7/2025, 9:46 am - Alice: check this",
		"<Media omitted>",
	}, "\n")
	msgs, err := ParseLines(input, "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if msgs[0].Media != MediaUnnamed {
		t.Errorf("Media = %v, want MediaUnnamed", msgs[0].Media)
	}
}

func TestParseStripsBOMAndCR(t *testing.T) {
	input := "\ufeff19/7/2025, 9:46 am - Alice: hi\r\nmore\r"
	msgs, err := ParseLines(input, "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Body != "hi\nmore" {
		t.Errorf("Body = %q", msgs[0].Body)
	}
}

func TestParseArabicDigitHeader(t *testing.T) {
	msgs, err := ParseLines("١٩/٧/٢٠٢٥, ٩:٤٦ م - أحمد: مرحبا", "ar-SA")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	// the Arabic meridiem marker is not an am/pm token, so the line never
	// matches a header grammar and gets dropped
	if len(msgs) != 0 {
		t.Fatalf("got %d messages", len(msgs))
	}
}

func TestParseArabicDigits24Hour(t *testing.T) {
	msgs, err := ParseLines("١٩/٧/٢٠٢٥, ٢١:٤٦ - أحمد: مرحبا", "ar-SA")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Sender != "أحمد" || msgs[0].Timestamp.Hour() != 21 {
		t.Errorf("got %+v", msgs[0])
	}
}

func TestParseTrailingWhitespaceTrimmed(t *testing.T) {
	msgs, err := ParseLines("19/7/2025, 9:46 am - Alice: hi   \n\n", "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if msgs[0].Body != "hi" {
		t.Errorf("Body = %q, want trailing whitespace trimmed", msgs[0].Body)
	}
}

func TestMessageCountEqualsHeaderCount(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, "19/7/2025, 9:46 am - Alice: msg", "extra line")
	}
	msgs, err := ParseLines(strings.Join(lines, "\n"), "en-GB")
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(msgs) != 50 {
		t.Errorf("got %d messages, want 50", len(msgs))
	}
}
