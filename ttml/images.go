package ttml

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	imgutil "ttc/utils/images"
)

const mimeSVG = "image/svg+xml"

// ImageOptions controls post processing of image cue assets.
type ImageOptions struct {
	// Scale resizes images authored for document root extent to viewport.
	Scale bool
	// RasterizeSVG converts SVG assets to PNG.
	RasterizeSVG bool
}

// findImage looks image asset up by reference, leading '#' is optional.
func (ctx *compileContext) findImage(ref string) (*Node, bool) {
	id := strings.TrimPrefix(strings.TrimSpace(ref), "#")
	for _, n := range ctx.images {
		if n.ID() == id {
			return n, true
		}
	}
	return nil, false
}

// imageCue resolves asset referenced by backgroundImage attribute. Returns
// nil when asset cannot be used, such cue is dropped.
func (ctx *compileContext) imageCue(ref string) *Image {
	n, ok := ctx.findImage(ref)
	if !ok {
		ctx.log.Warn("Image cue dropped", zap.Error(fmt.Errorf("%w: %q", ErrAssetReference, ref)))
		return nil
	}
	img, err := ctx.decodeImage(n)
	if err != nil {
		ctx.log.Warn("Image cue dropped", zap.String("ref", ref), zap.Error(err))
		return nil
	}
	return img
}

func (ctx *compileContext) decodeImage(n *Node) (*Image, error) {
	raw := strings.Join(strings.Fields(n.TextContent()), "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to decode image %q: %w", n.ID(), err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image %q is empty", n.ID())
	}

	img := &Image{ID: n.ID(), Data: data, MIME: sniffMIME(data, n.AttrValue("imagetype"))}
	if img.MIME == mimeSVG {
		return img, ctx.prepareSVG(img)
	}
	return img, ctx.prepareRaster(img)
}

func sniffMIME(data []byte, declared string) string {
	if kind, err := filetype.Image(data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	declared = strings.ToLower(strings.TrimSpace(declared))
	switch {
	case declared == "svg" || bytes.Contains(data[:min(len(data), 512)], []byte("<svg")):
		return mimeSVG
	case len(declared) > 0:
		return "image/" + declared
	}
	return "application/octet-stream"
}

func (ctx *compileContext) prepareSVG(img *Image) error {
	w, h, err := imgutil.SVGSize(img.Data)
	if err != nil {
		return fmt.Errorf("unable to read SVG image %q: %w", img.ID, err)
	}
	if !ctx.imageOpts.RasterizeSVG {
		img.Width, img.Height = w, h
		return nil
	}
	raster, err := imgutil.RasterizeSVG(img.Data, int(math.Round(float64(w)*ctx.imageScale())), 0)
	if err != nil {
		return fmt.Errorf("unable to rasterize SVG image %q: %w", img.ID, err)
	}
	return setPNG(img, raster)
}

func (ctx *compileContext) prepareRaster(img *Image) error {
	if scale := ctx.imageScale(); scale != 1 {
		src, err := imgutil.Decode(img.Data)
		if err != nil {
			return fmt.Errorf("unable to decode image %q: %w", img.ID, err)
		}
		return setPNG(img, imgutil.Scale(src, scale))
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		// still usable as data URI, renderer may know the format
		ctx.log.Debug("Unable to read image dimensions", zap.String("id", img.ID), zap.String("mime", img.MIME), zap.Error(err))
		return nil
	}
	img.Width, img.Height = cfg.Width, cfg.Height
	return nil
}

func setPNG(img *Image, src image.Image) error {
	data, err := imgutil.EncodePNG(src)
	if err != nil {
		return fmt.Errorf("unable to encode image %q: %w", img.ID, err)
	}
	b := src.Bounds()
	img.Data, img.MIME, img.Width, img.Height = data, "image/png", b.Dx(), b.Dy()
	return nil
}

// imageScale returns factor from document root extent to viewport, 1 when
// scaling is off or root extent is not known.
func (ctx *compileContext) imageScale() float64 {
	if !ctx.imageOpts.Scale || ctx.rootExtent.Width <= 0 || ctx.rootExtent.Height <= 0 {
		return 1
	}
	return min(float64(ctx.viewport.Width)/float64(ctx.rootExtent.Width), float64(ctx.viewport.Height)/float64(ctx.rootExtent.Height))
}
