package ttml

import "errors"

var (
	// ErrStructure is returned when document misses one of required sections
	// or does not carry anything to show.
	ErrStructure = errors.New("TTML document has incorrect structure")
	// ErrTimecode is returned when cue timing cannot be resolved.
	ErrTimecode = errors.New("TTML document has incorrect timing value")
	// ErrAssetReference describes image cue pointing to absent metadata
	// asset. Such cues are dropped, error is only logged.
	ErrAssetReference = errors.New("unresolved image asset reference")
	// ErrReference describes style or region reference which matches nothing.
	// Reference contributes no properties, error is only logged.
	ErrReference = errors.New("unresolved reference")
)
