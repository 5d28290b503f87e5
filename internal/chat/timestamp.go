package chat

import (
	"strings"
	"time"
)

// Explicit date layouts, tried in order. Day-first comes before month-first
// so an ambiguous date like 3/4/2025 resolves the way most WhatsApp locales
// write it; a month >12 simply fails the day-first probe and falls through.
var dayFirstDates = []string{"2/1/2006", "2/1/06"}
var monthFirstDates = []string{"1/2/2006", "1/2/06"}

var (
	times24 = []string{"15:04:05", "15:04"}
	times12 = []string{"3:04:05 PM", "3:04 PM"}
)

// cultures that write month before day; everything else defaults to
// day-first, which is also what unknown culture tags get.
var monthFirstCultures = map[string]bool{
	"en-us": true,
	"en-ph": true,
	"fil-ph": true,
}

// NormalizeMeridiem strips dots and upper-cases an AM/PM marker ("a.m." ->
// "AM"). Empty stays empty.
func NormalizeMeridiem(m string) string {
	return strings.ToUpper(strings.ReplaceAll(m, ".", ""))
}

// ResolveTimestamp interprets the date and time substrings captured by the
// header matcher. It probes the explicit layout list first and only then
// falls back to a culture-guided parse; failure means the line is not a
// message start.
func ResolveTimestamp(dateStr, timeStr, meridiem, culture string) (time.Time, bool) {
	mer := NormalizeMeridiem(meridiem)

	// unify date separators so one layout set covers 19/7/2025, 19-7-2025
	// and 19.7.2025
	d := strings.NewReplacer("-", "/", ".", "/").Replace(dateStr)

	value := d + " " + timeStr
	timeLayouts := times24
	if mer != "" {
		value += " " + mer
		timeLayouts = times12
	}

	for _, dl := range append(append([]string{}, dayFirstDates...), monthFirstDates...) {
		for _, tl := range timeLayouts {
			if ts, err := time.ParseInLocation(dl+" "+tl, value, time.UTC); err == nil {
				return ts, true
			}
		}
	}

	return resolveFallback(d, timeStr, mer, culture)
}

// resolveFallback is the best-effort pass for dates the explicit layouts do
// not cover, currently year-first orderings plus a permissive retry that
// ignores whether a meridiem was captured. The culture decides which
// day/month ordering to prefer.
func resolveFallback(dateStr, timeStr, mer, culture string) (time.Time, bool) {
	dates := []string{"2006/1/2", "2006/2/1"}
	if monthFirstCultures[strings.ToLower(culture)] {
		dates = append(dates, monthFirstDates...)
		dates = append(dates, dayFirstDates...)
	} else {
		dates = append(dates, dayFirstDates...)
		dates = append(dates, monthFirstDates...)
	}

	value := dateStr + " " + timeStr
	if mer != "" {
		value += " " + mer
	}
	for _, dl := range dates {
		for _, tl := range append(append([]string{}, times24...), times12...) {
			if ts, err := time.ParseInLocation(dl+" "+tl, value, time.UTC); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}
