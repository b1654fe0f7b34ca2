package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"8:00 AM", 8, 0},
		{"8:30 am", 8, 30},
		{"12:00 AM", 0, 0},
		{"12:15 PM", 12, 15},
		{"8:00 PM", 20, 0},
		{"9pm", 21, 0},
		{"20:30", 20, 30},
		{"7", 7, 0},
		{"Morning", 0, 0},
		{"with food", 0, 0},
		{"", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			h, m := ParseClockTime(tc.in)
			assert.Equal(t, tc.hour, h)
			assert.Equal(t, tc.minute, m)
		})
	}
}
