package ttml

import (
	"go.uber.org/zap"

	"ttc/css"
)

const (
	nsParameter = "http://www.w3.org/ns/ttml#parameter"
	nsStyling   = "http://www.w3.org/ns/ttml#styling"
	nsEBUStyle  = "urn:ebu:tt:style"
)

// compileContext bundles everything derived from a single document. It is
// built once at compile start and never modified afterwards, so compiles of
// different documents do not share state.
type compileContext struct {
	profile   Profile
	styles    Table
	regions   Table
	cell      CellUnit
	frameRate float64
	// prefixes of namespaces styling attributes may be written in
	styleNS []string
	// image assets from head metadata
	images     []*Node
	imageOpts  ImageOptions
	rootExtent Viewport
	viewport   Viewport
	preserve   bool
	user       css.Declarations
	log        *zap.Logger
}

func (ctx *compileContext) isStyleAttr(a Attr) bool {
	for _, ns := range ctx.styleNS {
		if a.Space == ns {
			return true
		}
	}
	return false
}

// resolveTime parses timing attribute of the element.
func (ctx *compileContext) resolveTime(n *Node, name string) (float64, bool, error) {
	v, ok := n.AttrNS("", name)
	if !ok {
		return 0, false, nil
	}
	t, err := ctx.profile.ResolveTime(v, ctx.frameRate)
	if err != nil {
		return 0, true, err
	}
	return t, true, nil
}
