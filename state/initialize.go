package state

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"ttc/css"
	"ttc/ttml"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

// Viewport returns configured rendering area.
func (e *LocalEnv) Viewport() ttml.Viewport {
	return ttml.Viewport{Width: e.Cfg.Compiler.Viewport.Width, Height: e.Cfg.Compiler.Viewport.Height}
}

// NewCompiler builds TTML compiler according to configuration.
func (e *LocalEnv) NewCompiler() (*ttml.Compiler, error) {
	if e.Cfg == nil {
		return nil, errors.New("configuration is not loaded")
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	cc := &e.Cfg.Compiler

	profile := ttml.NewProfile(cc.Profile).
		WithOverflow(cc.Overflow).
		WithShowBackground(cc.ShowBackground)

	opts := []ttml.Option{
		ttml.WithImageOptions(ttml.ImageOptions{Scale: cc.Images.Scale, RasterizeSVG: cc.Images.RasterizeSVG}),
	}
	if len(cc.UserStyle) > 0 {
		user := css.NewParser(log).ParseInline(cc.UserStyle, "configuration")
		if user.Len() == 0 {
			log.Warn("User style has no usable declarations, ignoring", zap.String("style", cc.UserStyle))
		} else {
			opts = append(opts, ttml.WithUserStyle(user))
		}
	}

	log.Debug("Compiler prepared",
		zap.Stringer("profile", cc.Profile),
		zap.String("overflow", profile.Overflow),
		zap.Bool("showBackground", profile.ShowBackground),
		zap.Stringer("viewport", e.Viewport()))

	return ttml.NewCompiler(profile, log, opts...), nil
}
