package ttml

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	secondsInHour = 60 * 60
	secondsInMin  = 60
)

var (
	// hh:mm:ss.mss or hh:mm:ss:ff with exactly 2 digits in every component
	// and exactly 3 decimal places for milliseconds.
	strictClock = regexp.MustCompile(`^(0[0-9]|1[0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])(?:(\.[0-9]{3})|:([0-9]{2}))$`)
	// media clock: at least 2 hour digits, fraction of any length, no frames.
	mediaClock = regexp.MustCompile(`^([0-9]{2,}):([0-5][0-9]):([0-5][0-9](?:\.[0-9]+)?)$`)
)

// ResolveTimecode converts strict clock time expression into seconds.
// Frame form requires positive frameRate, zero means no rate was declared.
func ResolveTimecode(text string, frameRate float64) (float64, error) {
	m := strictClock.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %q does not match HH:MM:SS.mmm or HH:MM:SS:FF", ErrTimecode, text)
	}

	if len(m[5]) == 0 {
		return clockSeconds(m[1], m[2], m[3]+m[4]), nil
	}

	if frameRate <= 0 {
		return 0, fmt.Errorf("%w: %q uses frames without frame rate", ErrTimecode, text)
	}
	frames, _ := strconv.Atoi(m[5])
	if float64(frames) >= frameRate {
		return 0, fmt.Errorf("%w: %q frame number exceeds frame rate %g", ErrTimecode, text, frameRate)
	}
	return clockSeconds(m[1], m[2], m[3]) + float64(frames)/frameRate, nil
}

// ResolveMediaTime converts media clock time expression into seconds.
func ResolveMediaTime(text string) (float64, error) {
	m := mediaClock.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not a media time expression", ErrTimecode, text)
	}
	return clockSeconds(m[1], m[2], m[3]), nil
}

// clockSeconds expects components already validated by regular expression.
func clockSeconds(h, m, s string) float64 {
	hours, _ := strconv.ParseFloat(h, 64)
	minutes, _ := strconv.ParseFloat(m, 64)
	sec, _ := strconv.ParseFloat(s, 64)
	return hours*secondsInHour + minutes*secondsInMin + sec
}
