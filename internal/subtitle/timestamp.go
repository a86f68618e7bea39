package subtitle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const zeroTimestamp = "00:00:00.000"

var timestampRegex = regexp.MustCompile(`^(\d+)?:?(\d{2}):(\d{2})[.,](\d{3})`)

// ParseTimestamp converts "[HH:]MM:SS.mmm" into seconds. A comma is accepted
// as the decimal separator.
func ParseTimestamp(text string) (float64, error) {
	matches := timestampRegex.FindStringSubmatch(text)
	if matches == nil {
		return 0, &MalformedCaptionError{
			Msg: fmt.Sprintf("invalid timestamp: %s", text),
		}
	}

	values := make([]int, 4)
	for i, group := range matches[1:] {
		if group == "" {
			continue
		}
		v, err := strconv.Atoi(group)
		if err != nil {
			return 0, &MalformedCaptionError{
				Msg: fmt.Sprintf("invalid timestamp: %s", text),
			}
		}
		values[i] = v
	}

	hours, minutes, seconds, millis := values[0], values[1], values[2], values[3]
	// float math keeps very large hour values from wrapping negative
	return float64(hours)*3600 + float64(minutes*60+seconds) + float64(millis)/1000, nil
}

// FormatTimestamp renders seconds as HH:MM:SS.mmm. The hour component is
// always present.
func FormatTimestamp(seconds float64) string {
	return formatTimestamp(seconds, '.')
}

func formatSRTTimestamp(seconds float64) string {
	return formatTimestamp(seconds, ',')
}

func formatTimestamp(seconds float64, sep byte) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(math.Round(seconds * 1000))

	hours := total / 3_600_000
	minutes := (total / 60_000) % 60
	secs := (total / 1000) % 60
	millis := total % 1000

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, secs, sep, millis)
}
