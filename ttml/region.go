package ttml

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"ttc/css"
)

var displayAlign = map[string]string{
	"before": "flex-start",
	"center": "center",
	"after":  "flex-end",
}

var (
	horizontalLR = []css.Declaration{
		{Property: "-webkit-writing-mode", Value: "horizontal-tb"},
		{Property: "writing-mode", Value: "horizontal-tb"},
	}
	horizontalRL = []css.Declaration{
		{Property: "-webkit-writing-mode", Value: "horizontal-tb"},
		{Property: "writing-mode", Value: "horizontal-tb"},
		{Property: "direction", Value: "rtl"},
		{Property: "unicode-bidi", Value: "bidi-override"},
	}
	verticalRL = []css.Declaration{
		{Property: "-webkit-writing-mode", Value: "vertical-rl"},
		{Property: "writing-mode", Value: "vertical-rl"},
		{Property: "-webkit-text-orientation", Value: "upright"},
		{Property: "text-orientation", Value: "upright"},
	}
	verticalLR = []css.Declaration{
		{Property: "-webkit-writing-mode", Value: "vertical-lr"},
		{Property: "writing-mode", Value: "vertical-lr"},
		{Property: "-webkit-text-orientation", Value: "upright"},
		{Property: "text-orientation", Value: "upright"},
	}

	writingModes = map[string][]css.Declaration{
		"lrtb": horizontalLR,
		"lr":   horizontalLR,
		"rltb": horizontalRL,
		"rl":   horizontalRL,
		"tbrl": verticalRL,
		"tb":   verticalRL,
		"tblr": verticalLR,
	}
)

// ResolveRegionRefs resolves whitespace separated region ids. Returned flag
// tells if region background should be shown, it is true unless region
// explicitly says otherwise.
func ResolveRegionRefs(refIDs string, regions, styles Table, cell CellUnit) (css.Declarations, bool) {
	ctx := &compileContext{styles: styles, regions: regions, cell: cell, log: zap.NewNop()}
	var out css.Declarations
	show := ctx.resolveRegionRefs(refIDs, &out)
	if show == nil {
		return out, true
	}
	return out, *show
}

// resolveRegionRefs returns nil when none of the matched regions mentions
// background visibility.
func (ctx *compileContext) resolveRegionRefs(refIDs string, into *css.Declarations) *bool {
	var show *bool
	for _, id := range strings.Fields(refIDs) {
		def, ok := ctx.regions.Find(id)
		if !ok {
			ctx.log.Debug("Region reference ignored", zap.Error(fmt.Errorf("%w: region %q", ErrReference, id)))
			continue
		}
		if s := ctx.computeRegion(def, into); s != nil {
			show = s
		}
	}
	return show
}

func (ctx *compileContext) computeRegion(def *Definition, into *css.Declarations) *bool {
	var show *bool
	for _, p := range def.Props {
		value := strings.TrimSpace(p.Value)

		switch p.Name {
		case "extent":
			w, h, ok := ctx.pair(value)
			if !ok {
				ctx.log.Debug("Unsupported region extent", zap.String("region", def.ID), zap.String("value", value))
				continue
			}
			into.Set("width", w)
			into.Set("height", h)

		case "origin":
			x, y, ok := ctx.pair(value)
			if !ok {
				ctx.log.Debug("Unsupported region origin", zap.String("region", def.ID), zap.String("value", value))
				continue
			}
			into.Set("left", x)
			into.Set("top", y)

		case "display-align":
			if v, ok := displayAlign[value]; ok {
				into.Set("align-items", v)
			}

		case "writing-mode":
			bundle, ok := writingModes[value]
			if !ok {
				ctx.log.Debug("Unsupported writing mode", zap.String("region", def.ID), zap.String("value", value))
				continue
			}
			for _, d := range bundle {
				into.Set(d.Property, d.Value)
			}

		case "style":
			ctx.resolveStyleRefs(value, into)

		case "show-background":
			v := value == "always"
			show = &v

		case "padding", "overflow":
			into.Set(p.Name, value)

		case "id", "region":

		default:
			ctx.convertStyleProperty(p.Name, value, into)
		}
	}
	return show
}

// pair splits two component length converting cell units to pixels:
// horizontal component against cell width, vertical against cell height.
func (ctx *compileContext) pair(value string) (string, string, bool) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return "", "", false
	}
	return ctx.cellLength(fields[0], ctx.cell.X), ctx.cellLength(fields[1], ctx.cell.Y), true
}

func (ctx *compileContext) cellLength(s string, unit float64) string {
	if v, u, ok := parseLength(s); ok && u == "c" {
		return formatPx(v * unit)
	}
	return s
}
