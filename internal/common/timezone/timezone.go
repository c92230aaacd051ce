package timezone

import "time"

// Layout renders an instant the way clients expect attendance stamps:
// yyyy-MM-dd HH:mm:ss with a numeric zone offset.
const Layout = "2006-01-02 15:04:05-07:00"

// ClockLayout is the short form used inside human-readable messages.
const ClockLayout = "15:04:05"

var jakarta *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// zoneinfo may be missing in minimal containers; WIB is UTC+7 year-round
		loc = time.FixedZone("WIB", 7*60*60)
	}
	jakarta = loc
}

// Jakarta returns the fixed display timezone for all rendered timestamps.
func Jakarta() *time.Location {
	return jakarta
}

// Format renders t in the Jakarta timezone using the canonical layout.
func Format(t time.Time) string {
	return t.In(jakarta).Format(Layout)
}

// FormatClock renders only the wall-clock portion of t in Jakarta time.
func FormatClock(t time.Time) string {
	return t.In(jakarta).Format(ClockLayout)
}
