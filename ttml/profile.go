package ttml

import (
	"ttc/common"
)

// Profile describes what differs between supported TTML profiles.
type Profile struct {
	Name common.Profile
	// StrictTiming limits time expressions to HH:MM:SS.mmm and HH:MM:SS:FF,
	// otherwise media clock time is expected.
	StrictTiming bool
	// ShowBackground is used when region does not say otherwise.
	ShowBackground bool
	// Overflow is default region overflow.
	Overflow string
	// WritingMode is default region writing mode keyword.
	WritingMode string
	// SpanTiming allows timing on spans of untimed paragraphs, every timed
	// span becomes separate cue.
	SpanTiming bool
}

// NewProfile returns descriptor for the requested profile.
func NewProfile(name common.Profile) Profile {
	switch name {
	case common.ProfileEbuTtD:
		return Profile{
			Name:           name,
			ShowBackground: true,
			Overflow:       "visible",
			WritingMode:    "lrtb",
			SpanTiming:     true,
		}
	default:
		return Profile{
			Name:           common.ProfileSdpUs,
			StrictTiming:   true,
			ShowBackground: true,
			Overflow:       "hidden",
			WritingMode:    "lrtb",
		}
	}
}

// WithOverflow overrides default overflow unless o is default.
func (p Profile) WithOverflow(o common.Overflow) Profile {
	if o != common.OverflowDefault {
		p.Overflow = o.String()
	}
	return p
}

// WithShowBackground overrides default region background visibility. Accepts
// TTML keywords, anything else keeps profile default.
func (p Profile) WithShowBackground(keyword string) Profile {
	switch keyword {
	case "always":
		p.ShowBackground = true
	case "whenActive":
		p.ShowBackground = false
	}
	return p
}

// ResolveTime converts time expression according to profile grammar.
func (p Profile) ResolveTime(text string, frameRate float64) (float64, error) {
	if p.StrictTiming {
		return ResolveTimecode(text, frameRate)
	}
	return ResolveMediaTime(text)
}
