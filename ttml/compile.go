// Package ttml compiles TTML (SDP-US and EBU-TT-D profiles) subtitle
// documents into timed cues with fully resolved CSS styling and region
// geometry.
package ttml

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"ttc/common"
	"ttc/css"
)

// Viewport is pixel size of the area captions are rendered into.
type Viewport struct {
	Width  int
	Height int
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// CellResolution is virtual grid document sizes are expressed in.
type CellResolution struct {
	Columns int
	Rows    int
}

// DefaultCellResolution is used when document does not declare its own.
var DefaultCellResolution = CellResolution{Columns: 32, Rows: 15}

// Document is compilation result.
type Document struct {
	Lang           language.Tag
	Profile        common.Profile
	CellResolution CellResolution
	Cell           CellUnit
	FrameRate      float64
	Viewport       Viewport
	Cues           []Cue
}

// Compiler turns TTML documents into cues. It holds only configuration, so a
// single compiler may be used for any number of concurrent compilations.
type Compiler struct {
	profile   Profile
	user      css.Declarations
	imageOpts ImageOptions
	log       *zap.Logger
}

type Option func(*Compiler)

// WithUserStyle sets declarations applied on top of every text cue style.
func WithUserStyle(d css.Declarations) Option {
	return func(c *Compiler) {
		c.user = d.Clone()
	}
}

// WithImageOptions sets image cue post processing.
func WithImageOptions(opts ImageOptions) Option {
	return func(c *Compiler) {
		c.imageOpts = opts
	}
}

func NewCompiler(profile Profile, log *zap.Logger, opts ...Option) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Compiler{profile: profile, log: log.Named("ttml")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile parses XML document and returns its cues in document order.
func (c *Compiler) Compile(r io.Reader, vp Viewport) ([]Cue, error) {
	doc, err := c.CompileDocument(r, vp)
	if err != nil {
		return nil, err
	}
	return doc.Cues, nil
}

// CompileDocument is Compile which also reports document level properties.
func (c *Compiler) CompileDocument(r io.Reader, vp Viewport) (*Document, error) {
	root, err := ReadTree(r)
	if err != nil {
		return nil, err
	}
	return c.CompileTree(root, vp)
}

// CompileTree compiles already parsed attributed tree. Tree is not modified.
func (c *Compiler) CompileTree(root *Node, vp Viewport) (*Document, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %s", vp)
	}

	head, body, err := checkStructure(root)
	if err != nil {
		return nil, err
	}

	ttp := root.NamespacePrefix(nsParameter)
	if ttp == "" {
		ttp = "ttp"
	}

	doc := &Document{
		Lang:           c.language(root),
		Profile:        c.profile.Name,
		CellResolution: c.cellResolution(root, ttp),
		FrameRate:      c.frameRate(root, ttp),
		Viewport:       vp,
	}
	doc.Cell = NewCellUnit(vp, doc.CellResolution)

	ctx := &compileContext{
		profile:    c.profile,
		styles:     NewTable(head.Child("styling"), "style"),
		regions:    NewTable(head.Child("layout"), "region"),
		cell:       doc.Cell,
		frameRate:  doc.FrameRate,
		styleNS:    stylePrefixes(root),
		images:     head.Child("metadata").ChildrenNamed("image"),
		imageOpts:  c.imageOpts,
		rootExtent: c.rootExtent(root),
		viewport:   vp,
		preserve:   spacePreserved(root, false),
		user:       c.user,
		log:        c.log,
	}

	c.log.Debug("Compiling document",
		zap.Stringer("profile", c.profile.Name),
		zap.Stringer("viewport", vp),
		zap.Int("styles", len(ctx.styles)),
		zap.Int("regions", len(ctx.regions)),
		zap.Float64("frameRate", doc.FrameRate),
		zap.Float64("cellX", doc.Cell.X),
		zap.Float64("cellY", doc.Cell.Y))

	if doc.Cues, err = ctx.extractCues(body); err != nil {
		return nil, err
	}
	return doc, nil
}

func checkStructure(root *Node) (head, body *Node, err error) {
	if root == nil || root.Name != "tt" {
		return nil, nil, fmt.Errorf("%w: missing <tt>", ErrStructure)
	}
	if head = root.Child("head"); head == nil {
		return nil, nil, fmt.Errorf("%w: missing <head>", ErrStructure)
	}
	if body = root.Child("body"); body == nil {
		return nil, nil, fmt.Errorf("%w: missing <body>", ErrStructure)
	}
	for _, name := range []string{"styling", "layout"} {
		if head.Child(name) == nil {
			return nil, nil, fmt.Errorf("%w: missing <%s>", ErrStructure, name)
		}
	}
	return head, body, nil
}

// stylePrefixes returns prefixes styling attributes are written with.
func stylePrefixes(root *Node) []string {
	var out []string
	for _, ns := range []string{nsStyling, nsEBUStyle} {
		if p := root.NamespacePrefix(ns); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"tts", "ebutts"}
	}
	return out
}

func (c *Compiler) language(root *Node) language.Tag {
	v, ok := root.AttrNS("xml", "lang")
	if !ok || len(v) == 0 {
		return language.Und
	}
	tag, err := language.Parse(v)
	if err != nil {
		c.log.Warn("Unable to parse document language, ignoring", zap.String("lang", v), zap.Error(err))
		return language.Und
	}
	return tag
}

func (c *Compiler) cellResolution(root *Node, ttp string) CellResolution {
	v, ok := root.AttrNS(ttp, "cellResolution")
	if !ok {
		return DefaultCellResolution
	}
	fields := strings.Fields(v)
	if len(fields) == 2 {
		cols, err1 := strconv.Atoi(fields[0])
		rows, err2 := strconv.Atoi(fields[1])
		if err1 == nil && err2 == nil && cols > 0 && rows > 0 {
			return CellResolution{Columns: cols, Rows: rows}
		}
	}
	c.log.Warn("Invalid cell resolution, using default", zap.String("value", v))
	return DefaultCellResolution
}

// frameRate returns effective frame rate, 0 when document does not declare
// one.
func (c *Compiler) frameRate(root *Node, ttp string) float64 {
	v, ok := root.AttrNS(ttp, "frameRate")
	if !ok {
		return 0
	}
	rate, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || rate <= 0 {
		c.log.Warn("Invalid frame rate, ignoring", zap.String("value", v))
		return 0
	}

	m, ok := root.AttrNS(ttp, "frameRateMultiplier")
	if !ok {
		return float64(rate)
	}
	fields := strings.Fields(m)
	if len(fields) == 2 {
		num, err1 := strconv.Atoi(fields[0])
		den, err2 := strconv.Atoi(fields[1])
		if err1 == nil && err2 == nil && num > 0 && den > 0 {
			return float64(rate) * float64(num) / float64(den)
		}
	}
	c.log.Warn("Invalid frame rate multiplier, ignoring", zap.String("value", m))
	return float64(rate)
}

// rootExtent returns pixel size of root container if document declares it.
func (c *Compiler) rootExtent(root *Node) Viewport {
	v, ok := root.Attr("extent")
	if !ok {
		return Viewport{}
	}
	fields := strings.Fields(v)
	if len(fields) != 2 {
		return Viewport{}
	}
	w, wu, ok1 := parseLength(fields[0])
	h, hu, ok2 := parseLength(fields[1])
	if !ok1 || !ok2 || wu != "px" || hu != "px" {
		c.log.Debug("Root extent is not in pixels, ignoring", zap.String("value", v))
		return Viewport{}
	}
	return Viewport{Width: int(w), Height: int(h)}
}
