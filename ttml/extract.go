package ttml

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ttc/css"
)

// cueNamespace seeds ids of cues which have no xml:id.
var cueNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:ttc:cue"))

// Elements allowed in content which carry nothing to show.
var ignoredElements = map[string]bool{
	"metadata":  true,
	"title":     true,
	"desc":      true,
	"copyright": true,
	"agent":     true,
}

// cueSource is an element producing cue(s) along with its ancestors, outer
// first (body, divs).
type cueSource struct {
	node      *Node
	ancestors []*Node
	preserve  bool
}

func (s cueSource) levels() []*Node {
	return append(slices.Clone(s.ancestors), s.node)
}

// extractCues walks body collecting paragraphs and image divs in document
// order and turns them into cues. Any failure aborts extraction.
func (ctx *compileContext) extractCues(body *Node) ([]Cue, error) {
	sources, err := ctx.collect(body, nil, ctx.preserve)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: TTML document does not contain any cues", ErrStructure)
	}

	var cues []Cue
	for i, src := range sources {
		produced, err := ctx.extract(i, src)
		if err != nil {
			return nil, err
		}
		cues = append(cues, produced...)
	}
	return cues, nil
}

func (ctx *compileContext) collect(n *Node, ancestors []*Node, preserve bool) ([]cueSource, error) {
	preserve = spacePreserved(n, preserve)
	ancestors = append(slices.Clone(ancestors), n)

	var out []cueSource
	for _, c := range n.Children {
		switch {
		case c.IsText():
			if len(strings.TrimSpace(c.Text)) > 0 {
				ctx.log.Debug("Ignoring text outside of paragraph", zap.String("parent", n.Name), zap.String("text", c.Text))
			}
		case c.Name == "p":
			out = append(out, cueSource{node: c, ancestors: ancestors, preserve: spacePreserved(c, preserve)})
		case c.Name == "div":
			if _, ok := c.Attr("backgroundImage"); ok {
				out = append(out, cueSource{node: c, ancestors: ancestors, preserve: preserve})
			}
			nested, err := ctx.collect(c, ancestors, preserve)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		case ignoredElements[c.Name]:
		default:
			return nil, fmt.Errorf("%w: unsupported element <%s> in <%s>", ErrStructure, c.Name, n.Name)
		}
	}
	return out, nil
}

func spacePreserved(n *Node, inherited bool) bool {
	if v, ok := n.AttrNS("xml", "space"); ok {
		return v == "preserve"
	}
	return inherited
}

func (ctx *compileContext) extract(index int, src cueSource) ([]Cue, error) {
	n := src.node

	if ref, ok := n.Attr("backgroundImage"); ok {
		start, end, timed, err := ctx.timing(n)
		if err != nil {
			return nil, err
		}
		if !timed {
			return nil, fmt.Errorf("%w: image %q has no timing", ErrTimecode, ref)
		}
		img := ctx.imageCue(ref)
		if img == nil {
			return nil, nil
		}
		cue := ctx.newCue(cueID(n, index, 0, start, end), start, end, src.levels(), false)
		cue.Image = img
		return []Cue{cue}, nil
	}

	start, end, timed, err := ctx.timing(n)
	if err != nil {
		return nil, err
	}
	if !timed {
		if span := soleSpan(n); span != nil {
			if start, end, timed, err = ctx.timing(span); err != nil {
				return nil, err
			}
		}
	}
	if timed {
		cue, err := ctx.textCue(cueID(n, index, 0, start, end), start, end, src.levels(), n.Children, src.preserve)
		if err != nil {
			return nil, err
		}
		return []Cue{cue}, nil
	}
	if ctx.profile.SpanTiming {
		return ctx.spanCues(index, src)
	}
	return nil, fmt.Errorf("%w: paragraph %d has no begin and end", ErrTimecode, index)
}

// timing reads begin and end of the element. Element without both is not
// timed, element with only one of them or with non increasing times is an
// error.
func (ctx *compileContext) timing(n *Node) (float64, float64, bool, error) {
	start, hasStart, err := ctx.resolveTime(n, "begin")
	if err != nil {
		return 0, 0, false, err
	}
	end, hasEnd, err := ctx.resolveTime(n, "end")
	if err != nil {
		return 0, 0, false, err
	}
	switch {
	case !hasStart && !hasEnd:
		return 0, 0, false, nil
	case !hasStart || !hasEnd:
		return 0, 0, false, fmt.Errorf("%w: <%s> must have both begin and end", ErrTimecode, n.Name)
	case start >= end:
		return 0, 0, false, fmt.Errorf("%w: <%s> begin %g is not before end %g", ErrTimecode, n.Name, start, end)
	}
	return start, end, true, nil
}

// soleSpan returns span which is the only content of paragraph.
func soleSpan(p *Node) *Node {
	var span *Node
	for _, c := range p.Children {
		switch {
		case c.IsText():
			if len(strings.TrimSpace(c.Text)) > 0 {
				return nil
			}
		case ignoredElements[c.Name]:
		case c.Name == "span" && span == nil:
			span = c
		default:
			return nil
		}
	}
	return span
}

// spanCues makes separate cue of every timed span of untimed paragraph.
func (ctx *compileContext) spanCues(index int, src cueSource) ([]Cue, error) {
	var cues []Cue
	for _, c := range src.node.Children {
		switch {
		case c.IsText():
			if len(strings.TrimSpace(c.Text)) > 0 {
				return nil, fmt.Errorf("%w: paragraph %d has text without timing", ErrTimecode, index)
			}
		case c.Name == "br", ignoredElements[c.Name]:
		case c.Name == "span":
			start, end, timed, err := ctx.timing(c)
			if err != nil {
				return nil, err
			}
			if !timed {
				return nil, fmt.Errorf("%w: paragraph %d has span without timing", ErrTimecode, index)
			}
			cue, err := ctx.textCue(cueID(c, index, len(cues)+1, start, end), start, end,
				append(src.levels(), c), c.Children, spacePreserved(c, src.preserve))
			if err != nil {
				return nil, err
			}
			cues = append(cues, cue)
		default:
			return nil, fmt.Errorf("%w: unsupported element <%s> in paragraph", ErrStructure, c.Name)
		}
	}
	if len(cues) == 0 {
		return nil, fmt.Errorf("%w: paragraph %d has no begin and end", ErrTimecode, index)
	}
	return cues, nil
}

func cueID(n *Node, index, sub int, start, end float64) string {
	if id := n.ID(); id != "" {
		return id
	}
	return uuid.NewSHA1(cueNamespace, fmt.Appendf(nil, "%d.%d:%g-%g", index, sub, start, end)).String()
}

func (ctx *compileContext) newCue(id string, start, end float64, levels []*Node, text bool) Cue {
	cue := Cue{ID: id, Start: start, End: end}
	cue.ParagraphStyle, cue.TextStyle = ctx.paragraphStyle(levels, text)
	cue.RegionStyle, cue.ShowBackground = ctx.regionStyle(levels)
	return cue
}

func (ctx *compileContext) textCue(id string, start, end float64, levels []*Node, children []*Node, preserve bool) (Cue, error) {
	content, err := ctx.content(children, preserve, true)
	if err != nil {
		return Cue{}, err
	}
	cue := ctx.newCue(id, start, end, levels, true)

	// line padding goes into span when span is the only content
	if len(content) == 1 {
		if span, ok := content[0].(StyledSpan); ok {
			for _, prop := range []string{"padding-left", "padding-right"} {
				if v, ok := cue.ParagraphStyle.Lookup(prop); ok {
					span.Style.SetIfAbsent(prop, v)
				}
			}
			content[0] = span
		}
	}
	cue.Content = content
	return cue, nil
}

// content classifies children of paragraph or span.
func (ctx *compileContext) content(children []*Node, preserve, trim bool) ([]Inline, error) {
	var out []Inline
	for _, c := range children {
		switch {
		case c.IsText():
			text := c.Text
			if !preserve {
				text = collapseSpace(text)
			}
			if len(text) > 0 {
				out = append(out, PlainText{Text: text})
			}
		case c.Name == "br":
			out = append(out, LineBreak{})
		case c.Name == "span":
			span, err := ctx.span(c, preserve)
			if err != nil {
				return nil, err
			}
			out = append(out, span)
		case ignoredElements[c.Name]:
		default:
			return nil, fmt.Errorf("%w: unsupported element <%s> in paragraph", ErrStructure, c.Name)
		}
	}
	if trim && !preserve {
		out = trimEdges(out)
	}
	return out, nil
}

func (ctx *compileContext) span(n *Node, preserve bool) (StyledSpan, error) {
	var style css.Declarations
	ctx.elementStyle(n, &style)
	content, err := ctx.content(n.Children, spacePreserved(n, preserve), false)
	if err != nil {
		return StyledSpan{}, err
	}
	return StyledSpan{ID: n.ID(), Style: style, Content: content}, nil
}

// collapseSpace replaces every run of XML white space with single space.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// trimEdges removes spaces at the start and end of every line.
func trimEdges(in []Inline) []Inline {
	out := make([]Inline, 0, len(in))
	for i, node := range in {
		t, ok := node.(PlainText)
		if !ok {
			out = append(out, node)
			continue
		}
		if i == 0 || isBreak(in[i-1]) {
			t.Text = strings.TrimLeft(t.Text, " ")
		}
		if i == len(in)-1 || isBreak(in[i+1]) {
			t.Text = strings.TrimRight(t.Text, " ")
		}
		if len(t.Text) > 0 {
			out = append(out, t)
		}
	}
	return out
}

func isBreak(n Inline) bool {
	_, ok := n.(LineBreak)
	return ok
}
