package finder

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeRange is the resolved window of a natural-language time phrase.
// Both ends are inclusive.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

var (
	clockPattern      = regexp.MustCompile(`(\d{1,2})[:.](\d{2})\s*(am|pm)?|(\d{1,2})\s*(am|pm)`)
	hoursAgoPattern   = regexp.MustCompile(`(\d+)\s*hours?\s*ago`)
	minutesAgoPattern = regexp.MustCompile(`(\d+)\s*minutes?\s*ago`)
)

var recencyWords = []string{"recent", "just now", "just opened", "just accessed", "moments ago"}

// Declaration order matters: full names must be tried before their
// abbreviations so "saturday" never resolves through "sat".
var weekdayNames = []struct {
	name string
	day  int // Monday = 0 ... Sunday = 6
}{
	{"monday", 0}, {"mon", 0},
	{"tuesday", 1}, {"tue", 1}, {"tues", 1},
	{"wednesday", 2}, {"wed", 2},
	{"thursday", 3}, {"thu", 3}, {"thurs", 3},
	{"friday", 4}, {"fri", 4},
	{"saturday", 5}, {"sat", 5},
	{"sunday", 6}, {"sun", 6},
}

// ParseTimeQuery resolves a natural-language time expression in text to
// a concrete window, or nil if no temporal phrase is recognized. Phrase
// classes are tried in a fixed precedence; the first match wins.
func ParseTimeQuery(text string, now time.Time) *TimeRange {
	query := strings.ToLower(text)

	// 1. Explicit clock time ("5:30 pm", "17.43", "5 pm"), ±30 minutes.
	if tr := parseClockTime(query, now); tr != nil {
		return tr
	}

	// 2. "today", with optional part-of-day sub-window.
	if strings.Contains(query, "today") {
		return partOfDayRange(query, now)
	}

	// 3. "yesterday", same sub-window logic one day back.
	if strings.Contains(query, "yesterday") {
		return partOfDayRange(query, now.AddDate(0, 0, -1))
	}

	// 4. Bare part-of-day anchored to the current day. A bare "night"
	// is deliberately not recognized here, only "tonight".
	if strings.Contains(query, "morning") {
		return &TimeRange{at(now, 6, 0), at(now, 12, 0)}
	}
	if strings.Contains(query, "afternoon") {
		return &TimeRange{at(now, 12, 0), at(now, 17, 0)}
	}
	if strings.Contains(query, "evening") || strings.Contains(query, "tonight") {
		return &TimeRange{at(now, 17, 0), endOfDay(now)}
	}

	// 5. "N hours ago", ±30 minutes.
	if m := hoursAgoPattern.FindStringSubmatch(query); m != nil {
		hours, _ := strconv.Atoi(m[1])
		target := now.Add(-time.Duration(hours) * time.Hour)
		return &TimeRange{target.Add(-30 * time.Minute), target.Add(30 * time.Minute)}
	}

	// 6. "N minutes ago", ±5 minutes.
	if m := minutesAgoPattern.FindStringSubmatch(query); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		target := now.Add(-time.Duration(minutes) * time.Minute)
		return &TimeRange{target.Add(-5 * time.Minute), target.Add(5 * time.Minute)}
	}

	// 7. "last week": the 7 days up to and including today.
	if strings.Contains(query, "last week") {
		return &TimeRange{startOfDay(now.AddDate(0, 0, -7)), endOfDay(now)}
	}

	// 8. "this week": most recent Monday through today.
	if strings.Contains(query, "this week") {
		monday := now.AddDate(0, 0, -mondayBasedWeekday(now))
		return &TimeRange{startOfDay(monday), endOfDay(now)}
	}

	// 9. Named weekday, full day window.
	for _, wd := range weekdayNames {
		if !strings.Contains(query, wd.name) {
			continue
		}
		daysBack := mod7(mondayBasedWeekday(now) - wd.day)
		if strings.Contains(query, "last") || strings.Contains(query, "previous") {
			if daysBack == 0 {
				daysBack = 7 // "last Monday" said on a Monday
			}
		}
		target := now.AddDate(0, 0, -daysBack)
		return &TimeRange{startOfDay(target), endOfDay(target)}
	}

	// 10. Recency words: the last 15 minutes.
	for _, word := range recencyWords {
		if strings.Contains(query, word) {
			return &TimeRange{now.Add(-15 * time.Minute), now}
		}
	}

	return nil
}

func parseClockTime(query string, now time.Time) *TimeRange {
	m := clockPattern.FindStringSubmatch(query)
	if m == nil {
		return nil
	}

	var hour, minute int
	var isPM, isAM bool
	if m[1] != "" { // 17.43 or 17:43, optionally followed by am/pm
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		isPM = m[3] == "pm"
		isAM = m[3] == "am"
	} else { // bare "5 pm"
		hour, _ = strconv.Atoi(m[4])
		isPM = m[5] == "pm"
		isAM = m[5] == "am"
	}

	if isPM && hour < 12 {
		hour += 12
	}
	if isAM && hour == 12 {
		hour = 0
	}
	if hour > 23 || minute > 59 {
		// Not a real time of day; let the other phrase classes have a go.
		return nil
	}

	targetDay := now
	if strings.Contains(query, "yesterday") {
		targetDay = now.AddDate(0, 0, -1)
	}
	target := time.Date(targetDay.Year(), targetDay.Month(), targetDay.Day(), hour, minute, 0, 0, targetDay.Location())

	return &TimeRange{target.Add(-30 * time.Minute), target.Add(30 * time.Minute)}
}

// partOfDayRange narrows a day to morning/afternoon/evening when the
// query mentions one, otherwise covers the whole calendar day.
func partOfDayRange(query string, day time.Time) *TimeRange {
	switch {
	case strings.Contains(query, "morning"):
		return &TimeRange{at(day, 6, 0), at(day, 12, 0)}
	case strings.Contains(query, "afternoon"):
		return &TimeRange{at(day, 12, 0), at(day, 17, 0)}
	case strings.Contains(query, "evening"), strings.Contains(query, "tonight"), strings.Contains(query, "night"):
		return &TimeRange{at(day, 17, 0), endOfDay(day)}
	default:
		return &TimeRange{startOfDay(day), endOfDay(day)}
	}
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func startOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999999000, day.Location())
}

// mondayBasedWeekday maps Go's Sunday-based weekday to Monday = 0.
func mondayBasedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// mod7 is a non-negative modulus, so a weekday "ahead" of today in the
// calendar week still resolves to its most recent past occurrence.
func mod7(n int) int {
	return ((n % 7) + 7) % 7
}
