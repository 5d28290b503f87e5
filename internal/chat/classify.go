package chat

import (
	"regexp"
	"strings"
)

// Known system-notice openings, English and Arabic. WhatsApp localizes these
// per device language, so the list is a heuristic, not a grammar.
var systemPrefixes = []string{
	"messages and calls are end-to-end encrypted",
	"messages to this group are now secured",
	"your security code with",
	"security code changed",
	"missed voice call",
	"missed video call",
	"you created group",
	"created group",
	"created this group",
	"added you",
	"you joined",
	"joined using this group's invite link",
	"changed the subject",
	"changed this group's icon",
	"changed their phone number",
	"you blocked this contact",
	"you unblocked this contact",
	"left",
	"أنشأ المجموعة",
	"قام بإنشاء المجموعة",
	"تم تغيير رمز الأمان",
	"مكالمة صوتية فائتة",
	"مكالمة فيديو فائتة",
	"انضم",
	"غادر",
	"قام بتغيير اسم المجموعة",
	"تم تغيير اسم المجموعة",
}

// Placeholder phrases the export substitutes for attachments.
var mediaPlaceholders = []string{
	"<media omitted>",
	"image omitted",
	"video omitted",
	"audio omitted",
	"sticker omitted",
	"document omitted",
	"gif omitted",
	"(file attached)",
	"تم استبعاد الوسائط",
}

// Filename-like token with a known media extension.
var mediaTokenRe = regexp.MustCompile(`(?i)[\w-]+\.(?:jpe?g|png|gif|webp|bmp|mp4|3gp|mov|avi|mkv|webm|opus|mp3|m4a|aac|ogg|wav|amr|pdf|docx?|xlsx?|pptx?|txt|csv|zip|rar|7z)\b`)

// IsSystemLine reports whether a single line opens with a known system
// notice. The assembler keeps the flag sticky across the whole message.
func IsSystemLine(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, p := range systemPrefixes {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	return false
}

// DetectMedia classifies one line of text three ways: no media, media with a
// known filename, or a placeholder whose filename never made it into the
// export. A bare filename token without a placeholder phrase still counts as
// named media so the link column stays useful.
func DetectMedia(text string) (MediaStatus, string) {
	lower := strings.ToLower(text)
	placeholder := false
	for _, p := range mediaPlaceholders {
		if strings.Contains(lower, p) {
			placeholder = true
			break
		}
	}

	token := mediaTokenRe.FindString(text)
	switch {
	case token != "":
		return MediaNamed, token
	case placeholder:
		return MediaUnnamed, ""
	default:
		return MediaNone, ""
	}
}
