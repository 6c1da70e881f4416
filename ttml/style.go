package ttml

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ttc/css"
)

// CellUnit is size of one cell of the document cell grid in pixels.
type CellUnit struct {
	X float64
	Y float64
}

// NewCellUnit computes cell size for viewport and cell resolution.
func NewCellUnit(vp Viewport, res CellResolution) CellUnit {
	return CellUnit{
		X: float64(vp.Width) / float64(res.Columns),
		Y: float64(vp.Height) / float64(res.Rows),
	}
}

var fontFamilies = map[string]string{
	"monospace":             "monospace",
	"sansSerif":             "sans-serif",
	"serif":                 "serif",
	"monospaceSansSerif":    "monospace, sans-serif",
	"monospaceSerif":        "monospace, serif",
	"proportionalSansSerif": "Arial",
	"proportionalSerif":     "Times New Roman",
	"default":               "monospace, sans-serif",
}

var justifyContent = map[string]string{
	"left":    "flex-start",
	"start":   "flex-start",
	"justify": "flex-start",
	"center":  "center",
	"right":   "flex-end",
	"end":     "flex-end",
}

var unicodeBidi = map[string]string{
	"normal":       "normal",
	"embed":        "embed",
	"bidiOverride": "bidi-override",
}

var (
	lengthRe = regexp.MustCompile(`^([+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(px|em|c|%)?$`)
	hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	rgbaFunc = regexp.MustCompile(`^rgba\(\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*\)$`)
)

// ResolveStyleRefs resolves whitespace separated style ids against styles
// table. Unmatched ids contribute nothing.
func ResolveStyleRefs(refIDs string, styles Table, cell CellUnit) css.Declarations {
	ctx := &compileContext{styles: styles, cell: cell, log: zap.NewNop()}
	var out css.Declarations
	ctx.resolveStyleRefs(refIDs, &out)
	return out
}

// ComputeStyle converts properties of a single definition, without following
// references to other styles.
func ComputeStyle(def *Definition, cell CellUnit) css.Declarations {
	ctx := &compileContext{cell: cell, log: zap.NewNop()}
	var out css.Declarations
	for _, p := range def.Props {
		ctx.convertStyleProperty(p.Name, p.Value, &out)
	}
	return out
}

func (ctx *compileContext) resolveStyleRefs(refIDs string, into *css.Declarations) {
	for _, id := range strings.Fields(refIDs) {
		def, ok := ctx.styles.Find(id)
		if !ok {
			ctx.log.Debug("Style reference ignored", zap.Error(fmt.Errorf("%w: style %q", ErrReference, id)))
			continue
		}
		ctx.applyStyle(def, into, map[string]bool{})
	}
}

// applyStyle applies styles referenced by definition first, then its own
// properties. path holds ids being resolved to cut reference cycles.
func (ctx *compileContext) applyStyle(def *Definition, into *css.Declarations, path map[string]bool) {
	path[def.ID] = true
	defer delete(path, def.ID)

	for _, id := range strings.Fields(def.Value("style")) {
		if path[id] {
			ctx.log.Warn("Style reference cycle cut", zap.String("style", def.ID), zap.String("ref", id))
			continue
		}
		parent, ok := ctx.styles.Find(id)
		if !ok {
			ctx.log.Debug("Style reference ignored", zap.Error(fmt.Errorf("%w: style %q from %q", ErrReference, id, def.ID)))
			continue
		}
		ctx.applyStyle(parent, into, path)
	}
	for _, p := range def.Props {
		ctx.convertStyleProperty(p.Name, p.Value, into)
	}
}

// convertStyleProperty turns a single TTML styling property into CSS
// declarations.
func (ctx *compileContext) convertStyleProperty(name, value string, into *css.Declarations) {
	value = strings.TrimSpace(value)

	switch name {
	case "style", "id":
		// references are resolved by caller

	case "line-padding":
		v, unit, ok := parseLength(value)
		if !ok || unit != "c" {
			ctx.log.Debug("Unsupported line padding", zap.String("value", value))
			return
		}
		padding := formatPx(v * ctx.cell.X)
		into.Set("padding-left", padding)
		into.Set("padding-right", padding)

	case "font-size", "line-height":
		into.Set(name, ctx.verticalSize(value))

	case "font-family":
		into.Set(name, convertFontFamily(value))

	case "text-align":
		if jc, ok := justifyContent[value]; ok {
			into.Set("justify-content", jc)
		}
		if decl, ok := into.Declaration("text-align"); ok && decl.Origin == "multi-row-align" {
			return
		}
		into.Set("text-align", value)

	case "multi-row-align":
		switch value {
		case "start", "center", "end":
			into.SetFrom("text-align", value, name)
		case "auto":
			into.Remove("text-align")
		default:
			ctx.log.Debug("Unsupported multi row alignment", zap.String("value", value))
		}

	case "background-color", "color":
		into.Set(name, convertColor(value))

	case "wrap-option":
		switch value {
		case "wrap":
			into.Set("white-space", "normal")
		case "noWrap":
			into.Set("white-space", "nowrap")
		default:
			ctx.log.Debug("Unsupported wrap option", zap.String("value", value))
		}

	case "unicode-bidi":
		if v, ok := unicodeBidi[value]; ok {
			into.Set(name, v)
		} else {
			ctx.log.Debug("Unsupported unicode bidi", zap.String("value", value))
		}

	case "text-decoration":
		into.Set(name, convertTextDecoration(value))

	default:
		into.Set(name, value)
	}
}

// verticalSize resolves cell relative sizes against cell height. Two value
// form uses the last (vertical) component.
func (ctx *compileContext) verticalSize(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return value
	}
	v, unit, ok := parseLength(fields[len(fields)-1])
	if !ok {
		return value
	}
	switch unit {
	case "%":
		return formatPx(v * ctx.cell.Y / 100)
	case "c":
		return formatPx(v * ctx.cell.Y)
	}
	return value
}

func convertFontFamily(value string) string {
	families := strings.Split(value, ",")
	out := make([]string, 0, len(families))
	for _, f := range families {
		f = strings.TrimSpace(f)
		if len(f) == 0 {
			continue
		}
		if mapped, ok := fontFamilies[f]; ok {
			out = append(out, mapped)
			continue
		}
		out = append(out, "'"+strings.Trim(f, `'"`)+"'")
	}
	return strings.Join(out, ", ")
}

// convertColor converts #RRGGBBAA and TTML rgba() (alpha 0..255) to CSS
// rgba() notation, other values are passed as is.
func convertColor(value string) string {
	var parts []string
	if m := hexColor.FindStringSubmatch(value); m != nil {
		for _, h := range m[1:] {
			v, _ := strconv.ParseUint(h, 16, 8)
			parts = append(parts, strconv.FormatUint(v, 10))
		}
	} else if m := rgbaFunc.FindStringSubmatch(value); m != nil {
		parts = m[1:]
	} else {
		return value
	}
	alpha, _ := strconv.ParseFloat(parts[3], 64)
	if alpha > 255 {
		return value
	}
	return fmt.Sprintf("rgba(%s,%s,%s,%s)", parts[0], parts[1], parts[2], formatNumber(math.Round(alpha/255*1000)/1000))
}

func convertTextDecoration(value string) string {
	var out []string
	for _, kw := range strings.Fields(value) {
		switch kw {
		case "underline":
			out = append(out, "underline")
		case "lineThrough":
			out = append(out, "line-through")
		case "overline":
			out = append(out, "overline")
		}
	}
	if len(out) == 0 {
		return "none"
	}
	return strings.Join(out, " ")
}

func parseLength(s string) (float64, string, bool) {
	m := lengthRe.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return v, m[2], true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPx(v float64) string {
	return formatNumber(math.Round(v*1000)/1000) + "px"
}
