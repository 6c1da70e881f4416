package ttml

import (
	"encoding/base64"
	"strings"

	"ttc/css"
)

// Inline is a node of cue content: PlainText, LineBreak or StyledSpan.
type Inline interface {
	inline()
}

type PlainText struct {
	Text string
}

type LineBreak struct{}

// StyledSpan is span content with its own resolved style.
type StyledSpan struct {
	ID      string
	Style   css.Declarations
	Content []Inline
}

func (PlainText) inline()  {}
func (LineBreak) inline()  {}
func (StyledSpan) inline() {}

// Image is embedded picture of image cue.
type Image struct {
	ID     string
	MIME   string
	Width  int
	Height int
	Data   []byte
}

// DataURI returns image as data URI suitable for src attribute.
func (i *Image) DataURI() string {
	return "data:" + i.MIME + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Cue is compiled caption unit. Cues are never modified after compilation.
type Cue struct {
	ID    string
	Start float64
	End   float64
	// Content is empty for image cues.
	Content []Inline
	Image   *Image
	// ParagraphStyle is applied to paragraph box, TextStyle to the container
	// of inline content.
	ParagraphStyle css.Declarations
	TextStyle      css.Declarations
	RegionStyle    css.Declarations
	ShowBackground bool
}

func (c *Cue) IsImage() bool {
	return c.Image != nil
}

func (c *Cue) Duration() float64 {
	return c.End - c.Start
}

// Contains reports whether cue is active at time t.
func (c *Cue) Contains(t float64) bool {
	return c.Start <= t && t < c.End
}

// Text returns plain text of the cue, line breaks become new lines.
func (c *Cue) Text() string {
	var b strings.Builder
	writeText(&b, c.Content)
	return b.String()
}

func writeText(b *strings.Builder, content []Inline) {
	for _, in := range content {
		switch v := in.(type) {
		case PlainText:
			b.WriteString(v.Text)
		case LineBreak:
			b.WriteByte('\n')
		case StyledSpan:
			writeText(b, v.Content)
		}
	}
}
