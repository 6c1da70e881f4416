package ttml

import (
	"fmt"

	"ttc/css"
	"ttc/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns debug tree of compiled document.
func (d *Document) String() string {
	return treeWriter{debug.NewTreeWriter()}.document(d).String()
}

func (tw treeWriter) document(d *Document) treeWriter {
	tw.Line(0, "Document lang=%q profile=%s viewport=%s", d.Lang.String(), d.Profile, d.Viewport)
	tw.Line(1, "CellResolution %dx%d cell=%gx%gpx frameRate=%g", d.CellResolution.Columns, d.CellResolution.Rows, d.Cell.X, d.Cell.Y, d.FrameRate)
	tw.Line(1, "Cues: %d", len(d.Cues))
	for i := range d.Cues {
		tw.cue(2, i, &d.Cues[i])
	}
	return tw
}

func (tw treeWriter) cue(depth, index int, c *Cue) {
	tw.Interval(depth, fmt.Sprintf("Cue[%d] id=%s", index, c.ID), c.Start, c.End)
	if c.Image != nil {
		tw.Line(depth+1, "Image id=%q mime=%q size=%dx%d bytes=%d", c.Image.ID, c.Image.MIME, c.Image.Width, c.Image.Height, len(c.Image.Data))
	}
	tw.declarations(depth+1, "Paragraph", c.ParagraphStyle)
	tw.declarations(depth+1, "Text", c.TextStyle)
	tw.declarations(depth+1, "Region", c.RegionStyle)
	tw.Line(depth+1, "ShowBackground=%t", c.ShowBackground)
	tw.content(depth+1, c.Content)
}

func (tw treeWriter) content(depth int, content []Inline) {
	for _, in := range content {
		switch v := in.(type) {
		case PlainText:
			tw.TextBlock(depth, "Text", v.Text)
		case LineBreak:
			tw.Line(depth, "Break")
		case StyledSpan:
			tw.Line(depth, "Span id=%q", v.ID)
			tw.declarations(depth+1, "Style", v.Style)
			tw.content(depth+1, v.Content)
		}
	}
}

func (tw treeWriter) declarations(depth int, label string, d css.Declarations) {
	all := d.All()
	items := make([]string, 0, len(all))
	for _, decl := range all {
		items = append(items, decl.String())
	}
	tw.List(depth, label, items)
}
