// Package debug renders human readable dumps of compiled structures.
package debug

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented dump, one node per line.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.w.String())
	return int64(n), err
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes quoted text value.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// List writes items on a single line, "-" stands for empty list.
func (tw *TreeWriter) List(depth int, label string, items []string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	if len(items) == 0 {
		tw.w.WriteString("-")
	} else {
		tw.w.WriteString(strings.Join(items, " "))
	}
	tw.w.WriteByte('\n')
}

// Interval writes label with time interval in clock notation.
func (tw *TreeWriter) Interval(depth int, label string, start, end float64) {
	tw.Line(depth, "%s [%s --> %s]", label, FormatClock(start), FormatClock(end))
}

// FormatClock formats seconds as HH:MM:SS.mmm.
func FormatClock(seconds float64) string {
	ms := int64(math.Round(seconds * 1000))
	sign := ""
	if ms < 0 {
		sign, ms = "-", -ms
	}
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
