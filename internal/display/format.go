package display

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatOrdinalDate renders a YYYY-MM-DD date as "1st Jan 2020". Year-only
// dates pass through as the year; anything unparsable is returned verbatim.
func FormatOrdinalDate(s string) string {
	if s == "" {
		return "N/A"
	}

	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		if year, yerr := time.Parse("2006", s); yerr == nil {
			return year.Format("2006")
		}
		return s
	}

	day := date.Day()
	return fmt.Sprintf("%d%s %s %d", day, ordinalSuffix(day), date.Format("Jan"), date.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatCount compacts large numbers to 1.2M / 15.3K style.
func FormatCount(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatBool renders a boolean as Yes or No.
func FormatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Hyperlink wraps text in an OSC 8 terminal hyperlink.
func Hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
