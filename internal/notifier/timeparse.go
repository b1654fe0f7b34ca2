package notifier

import (
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`(\d+):?(\d*)([ap]m)?`)

// ParseClockTime extracts hour and minute from a free-form medication time
// such as "8:00 AM", "20:30" or "8pm". Strings with no recognizable digits
// ("Morning", "with food") fall back to 00:00 rather than failing; callers
// treat the schedule as best-effort.
func ParseClockTime(s string) (hour, minute int) {
	s = strings.ReplaceAll(strings.ToLower(s), " ", "")

	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	if m[3] == "pm" && hour != 12 {
		hour += 12
	}
	if m[3] == "am" && hour == 12 {
		hour = 0
	}

	return hour, minute
}
