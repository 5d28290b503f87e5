// Package sheet turns the assembled message stream into worksheet groups and
// writes the workbook.
package sheet

import (
	"time"

	"github.com/IbrahimElshafey/WhatsAppParser/internal/chat"
)

// rtlThreshold is how many Arabic-containing messages flip a group to
// right-to-left rendering.
const rtlThreshold = 20

// singleKey names the one worksheet in all-in-one mode.
const singleKey = "Chat"

// Filter drops messages before they reach any group.
type Filter struct {
	SkipSystem bool
	From       time.Time // zero = unbounded; compared by calendar day
	To         time.Time
}

// Group is one worksheet's worth of messages, in input order.
type Group struct {
	Key      string
	Messages []chat.Message
	RTL      bool

	arabicCount int
}

// Grouper buckets messages by calendar day (or into a single bucket) and
// tracks the per-group RTL decision. Group order is first-seen order.
type Grouper struct {
	filter   Filter
	offset   time.Duration // caller-supplied UTC offset applied to timestamps
	single   bool
	forceRTL bool

	order  []string
	groups map[string]*Group
}

func NewGrouper(filter Filter, offset time.Duration, single, forceRTL bool) *Grouper {
	return &Grouper{
		filter:   filter,
		offset:   offset,
		single:   single,
		forceRTL: forceRTL,
		groups:   make(map[string]*Group),
	}
}

// Add routes one message into its group, or drops it per the filter.
func (g *Grouper) Add(m chat.Message) {
	if g.filter.SkipSystem && m.IsSystem {
		return
	}

	shifted := m.Timestamp.Add(g.offset)
	day := time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
	if !g.filter.From.IsZero() && day.Before(dayOf(g.filter.From)) {
		return
	}
	if !g.filter.To.IsZero() && day.After(dayOf(g.filter.To)) {
		return
	}

	key := singleKey
	if !g.single {
		key = day.Format("2006-01-02")
	}

	grp, ok := g.groups[key]
	if !ok {
		grp = &Group{Key: key, RTL: g.forceRTL}
		g.groups[key] = grp
		g.order = append(g.order, key)
	}

	m.Timestamp = shifted
	grp.Messages = append(grp.Messages, m)

	if ContainsArabic(m.Sender) || ContainsArabic(m.Body) {
		grp.arabicCount++
		if grp.arabicCount >= rtlThreshold {
			grp.RTL = true
		}
	}
}

// Groups returns the buckets in first-seen order.
func (g *Grouper) Groups() []*Group {
	out := make([]*Group, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, g.groups[key])
	}
	return out
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ContainsArabic reports whether any rune falls in the Arabic, Arabic
// Supplement, or Arabic Extended-A blocks.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if (r >= 0x0600 && r <= 0x06FF) ||
			(r >= 0x0750 && r <= 0x077F) ||
			(r >= 0x08A0 && r <= 0x08FF) {
			return true
		}
	}
	return false
}
