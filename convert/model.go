package convert

import (
	"ttc/ttml"
)

// Size is a pair of dimensions.
type Size struct {
	Width  int `json:"width" yaml:"width" ion:"width"`
	Height int `json:"height" yaml:"height" ion:"height"`
}

// Inline is serialized cue content node. Kind is one of "text", "br" or
// "span".
type Inline struct {
	Kind    string   `json:"kind" yaml:"kind" ion:"kind"`
	Text    string   `json:"text,omitempty" yaml:"text,omitempty" ion:"text,omitempty"`
	ID      string   `json:"id,omitempty" yaml:"id,omitempty" ion:"id,omitempty"`
	Style   string   `json:"style,omitempty" yaml:"style,omitempty" ion:"style,omitempty"`
	Content []Inline `json:"content,omitempty" yaml:"content,omitempty" ion:"content,omitempty"`
}

type Image struct {
	ID     string `json:"id,omitempty" yaml:"id,omitempty" ion:"id,omitempty"`
	MIME   string `json:"mime" yaml:"mime" ion:"mime"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty" ion:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty" ion:"height,omitempty"`
	Src    string `json:"src" yaml:"src" ion:"src"`
}

// Cue is serialized compiled cue, styles are in inline CSS form.
type Cue struct {
	ID             string   `json:"id" yaml:"id" ion:"id"`
	Start          float64  `json:"start" yaml:"start" ion:"start"`
	End            float64  `json:"end" yaml:"end" ion:"end"`
	Text           string   `json:"text,omitempty" yaml:"text,omitempty" ion:"text,omitempty"`
	Content        []Inline `json:"content,omitempty" yaml:"content,omitempty" ion:"content,omitempty"`
	Image          *Image   `json:"image,omitempty" yaml:"image,omitempty" ion:"image,omitempty"`
	ParagraphStyle string   `json:"paragraph_style" yaml:"paragraph_style" ion:"paragraph_style"`
	TextStyle      string   `json:"text_style" yaml:"text_style" ion:"text_style"`
	RegionStyle    string   `json:"region_style" yaml:"region_style" ion:"region_style"`
	ShowBackground bool     `json:"show_background" yaml:"show_background" ion:"show_background"`
}

// Document is what output writers store.
type Document struct {
	Source         string  `json:"source" yaml:"source" ion:"source"`
	Lang           string  `json:"lang" yaml:"lang" ion:"lang"`
	Profile        string  `json:"profile" yaml:"profile" ion:"profile"`
	Viewport       Size    `json:"viewport" yaml:"viewport" ion:"viewport"`
	CellResolution Size    `json:"cell_resolution" yaml:"cell_resolution" ion:"cell_resolution"`
	FrameRate      float64 `json:"frame_rate,omitempty" yaml:"frame_rate,omitempty" ion:"frame_rate,omitempty"`
	Cues           []Cue   `json:"cues" yaml:"cues" ion:"cues"`
}

func newDocument(doc *ttml.Document, src string) *Document {
	out := &Document{
		Source:         src,
		Lang:           doc.Lang.String(),
		Profile:        doc.Profile.String(),
		Viewport:       Size{Width: doc.Viewport.Width, Height: doc.Viewport.Height},
		CellResolution: Size{Width: doc.CellResolution.Columns, Height: doc.CellResolution.Rows},
		FrameRate:      doc.FrameRate,
		Cues:           make([]Cue, 0, len(doc.Cues)),
	}
	for i := range doc.Cues {
		out.Cues = append(out.Cues, newCue(&doc.Cues[i]))
	}
	return out
}

func newCue(c *ttml.Cue) Cue {
	out := Cue{
		ID:             c.ID,
		Start:          c.Start,
		End:            c.End,
		Content:        newInlines(c.Content),
		ParagraphStyle: c.ParagraphStyle.String(),
		TextStyle:      c.TextStyle.String(),
		RegionStyle:    c.RegionStyle.String(),
		ShowBackground: c.ShowBackground,
	}
	if c.IsImage() {
		out.Image = &Image{
			ID:     c.Image.ID,
			MIME:   c.Image.MIME,
			Width:  c.Image.Width,
			Height: c.Image.Height,
			Src:    c.Image.DataURI(),
		}
	} else {
		out.Text = c.Text()
	}
	return out
}

func newInlines(content []ttml.Inline) []Inline {
	if len(content) == 0 {
		return nil
	}
	out := make([]Inline, 0, len(content))
	for _, in := range content {
		switch v := in.(type) {
		case ttml.PlainText:
			out = append(out, Inline{Kind: "text", Text: v.Text})
		case ttml.LineBreak:
			out = append(out, Inline{Kind: "br"})
		case ttml.StyledSpan:
			out = append(out, Inline{Kind: "span", ID: v.ID, Style: v.Style.String(), Content: newInlines(v.Content)})
		}
	}
	return out
}
