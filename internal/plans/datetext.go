package plans

import (
	"regexp"
	"strconv"
	"strings"
)

// The scraper leaves availability dates inside free text ("Candlelight: Best
// of Hans Zimmer 14 Mar From £22.05"). These heuristics recover just enough
// structure to tell one-off events apart from evergreen experiences.

// DateKind describes what kind of date (if any) a listing label encodes.
type DateKind int

const (
	// DateNone means no recognizable date pattern.
	DateNone DateKind = iota
	// DateSingle is "<day> <Mon> From": a time-bound one-off occurrence.
	DateSingle
	// DateRange is "<day> <Mon> - <day> <Mon>": a bounded run.
	DateRange
	// DateOpenRange is "<day> <Mon> -" with nothing parseable after the dash.
	DateOpenRange
)

// DateInfo is the parse result. SpanDays is only meaningful for DateRange.
type DateInfo struct {
	Kind DateKind

	// SpanDays is the approximate length of a DateRange in days. The year is
	// not present in the scraped text, so each month is approximated as 31
	// days (month ordinal * 31 + day of month, absolute difference of the
	// endpoints). Downstream thresholds depend on this exact granularity;
	// do not replace it with calendar-accurate arithmetic.
	SpanDays int
}

const months = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

var (
	singleDateRe = regexp.MustCompile(`(?i)(\d{1,2})\s+(` + months + `)\s+From`)
	rangeRe      = regexp.MustCompile(`(?i)(\d{1,2})\s+(` + months + `)\s*-\s*(\d{1,2})\s+(` + months + `)`)
	openRangeRe  = regexp.MustCompile(`(?i)(\d{1,2})\s+(` + months + `)\s*-(\s.*|From.*)?$`)
	ratingRe     = regexp.MustCompile(`\s+(\d\.\d)\s*$`)
)

var monthOrdinal = map[string]int{
	"jan": 0, "feb": 1, "mar": 2, "apr": 3, "may": 4, "jun": 5,
	"jul": 6, "aug": 7, "sep": 8, "oct": 9, "nov": 10, "dec": 11,
}

// ParseDateText extracts date information from a listing's name plus price
// label. Precedence: closed range, single date, open range, none.
func ParseDateText(text string) DateInfo {
	if m := rangeRe.FindStringSubmatch(text); m != nil {
		return DateInfo{Kind: DateRange, SpanDays: approxSpanDays(m[1], m[2], m[3], m[4])}
	}
	if singleDateRe.MatchString(text) {
		return DateInfo{Kind: DateSingle}
	}
	if openRangeRe.MatchString(text) {
		return DateInfo{Kind: DateOpenRange}
	}
	return DateInfo{Kind: DateNone}
}

func approxSpanDays(d1, mon1, d2, mon2 string) int {
	start := monthToDays(mon1) + atoiSafe(d1)
	end := monthToDays(mon2) + atoiSafe(d2)
	if end < start {
		return start - end
	}
	return end - start
}

func monthToDays(mon string) int {
	return monthOrdinal[strings.ToLower(mon)] * 31
}

func atoiSafe(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// SplitPriceRating separates a trailing " <digit>.<digit>" rating from a
// scraped price label. rating is empty when the label has no rating suffix.
//
//	"From £22.05 4.8" → ("From £22.05", "4.8")
//	"From £22.05"     → ("From £22.05", "")
func SplitPriceRating(priceText string) (price, rating string) {
	trimmed := strings.TrimSpace(priceText)
	if m := ratingRe.FindStringSubmatchIndex(trimmed); m != nil {
		return strings.TrimSpace(trimmed[:m[0]]), trimmed[m[2]:m[3]]
	}
	return trimmed, ""
}
