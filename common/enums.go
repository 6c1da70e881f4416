// Package common keeps enums shared by the compiler and the program
// configuration, so ttml package does not have to depend on config.
package common

// Timed text profile source document is expected to conform to.
// ENUM(sdp-us, ebu-tt-d)
type Profile int

// Visibility of region content overflowing its extent.
// ENUM(default, visible, hidden)
type Overflow int

// Output format of compiled documents.
// ENUM(json, yaml, ion, sqlite)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	case OutputFmtIon:
		return ".ion"
	case OutputFmtSqlite:
		return ".db"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
