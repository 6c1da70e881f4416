package ttml

import (
	"ttc/css"
)

// Region geometry used when cue has no region at all.
var fallbackGeometry = []css.Declaration{
	{Property: "top", Value: "85%"},
	{Property: "left", Value: "30%"},
	{Property: "width", Value: "40%"},
	{Property: "height", Value: "20%"},
}

// textContainerProps are moved from paragraph style to inline content
// container.
var textContainerProps = []string{"direction", "unicode-bidi"}

// regionOnlyProps apply to region even when written inline on content
// elements.
var regionOnlyProps = map[string]bool{
	"origin":          true,
	"extent":          true,
	"display-align":   true,
	"show-background": true,
	"writing-mode":    true,
}

// styleCascade resolves referenced and inline styles of every level, outer
// level first. Levels are body, divs, paragraph and optionally span.
func (ctx *compileContext) styleCascade(levels []*Node) css.Declarations {
	var decls css.Declarations
	for _, n := range levels {
		ctx.elementStyle(n, &decls)
	}
	return decls
}

// elementStyle applies styles referenced by element followed by styling
// attributes written on element itself.
func (ctx *compileContext) elementStyle(n *Node, into *css.Declarations) {
	if refs, ok := n.AttrNS("", "style"); ok {
		ctx.resolveStyleRefs(refs, into)
	}
	for _, a := range n.Attrs {
		if !ctx.isStyleAttr(a) {
			continue
		}
		if name := NormalizeKey(a.Key); !regionOnlyProps[name] {
			ctx.convertStyleProperty(name, a.Value, into)
		}
	}
}

// inlineRegion collects region-only styling attributes written on content
// element into anonymous region definition. Returns nil when there are none.
func (ctx *compileContext) inlineRegion(n *Node) *Definition {
	var def *Definition
	for _, a := range n.Attrs {
		if !ctx.isStyleAttr(a) {
			continue
		}
		name := NormalizeKey(a.Key)
		if !regionOnlyProps[name] {
			continue
		}
		if def == nil {
			def = &Definition{}
		}
		def.Props = append(def.Props, Property{Name: name, Value: a.Value})
	}
	return def
}

// paragraphStyle builds final paragraph style and splits off properties
// belonging to inline content container. User preferences are applied to
// text cues only.
func (ctx *compileContext) paragraphStyle(levels []*Node, text bool) (paragraph, container css.Declarations) {
	paragraph = ctx.styleCascade(levels)
	fillStyleDefaults(&paragraph, ctx.cell)
	if text {
		paragraph.Merge(ctx.user)
	}
	container = paragraph.Extract(textContainerProps...)
	return paragraph, container
}

func fillStyleDefaults(d *css.Declarations, cell CellUnit) {
	d.SetIfAbsent("background-color", "rgba(0,0,0,0)")
	d.SetIfAbsent("color", "rgba(255,255,255,1)")
	d.SetIfAbsent("direction", "ltr")
	d.SetIfAbsent("font-family", "monospace, sans-serif")
	d.SetIfAbsent("font-size", formatPx(cell.Y))
	d.SetIfAbsent("font-style", "normal")
	d.SetIfAbsent("line-height", "normal")
	d.SetIfAbsent("font-weight", "normal")
	d.SetIfAbsent("text-align", "start")
	d.SetIfAbsent("justify-content", "flex-start")
	d.SetIfAbsent("text-decoration", "none")
	d.SetIfAbsent("unicode-bidi", "normal")
	d.SetIfAbsent("white-space", "normal")
}

// regionStyle resolves regions of every level, outer first, and fills
// region defaults. Region-only attributes written inline on a level override
// regions referenced up to and including that level.
func (ctx *compileContext) regionStyle(levels []*Node) (css.Declarations, bool) {
	var decls css.Declarations
	show := ctx.profile.ShowBackground
	for _, n := range levels {
		if refs, ok := n.AttrNS("", "region"); ok {
			if s := ctx.resolveRegionRefs(refs, &decls); s != nil {
				show = *s
			}
		}
		if def := ctx.inlineRegion(n); def != nil {
			if s := ctx.computeRegion(def, &decls); s != nil {
				show = *s
			}
		}
	}
	ctx.fillRegionDefaults(&decls)
	return decls, show
}

func (ctx *compileContext) fillRegionDefaults(d *css.Declarations) {
	d.SetIfAbsent("align-items", "flex-start")
	d.SetIfAbsent("overflow", ctx.profile.Overflow)
	if !d.Has("writing-mode") {
		for _, decl := range writingModes[ctx.profile.WritingMode] {
			d.SetIfAbsent(decl.Property, decl.Value)
		}
	}
	for _, decl := range fallbackGeometry {
		d.SetIfAbsent(decl.Property, decl.Value)
	}
}
