package webvtt

// Setting is one NAME:VALUE rendering hint from a cue's timings line.
// Name and Value are non-empty and contain no colon, space, or tab.
type Setting struct {
	Name  string
	Value string
}

// Cue is a single subtitle entry. A successful Parse leaves Payload
// with at least one line; Settings may be empty; Identifier is empty
// when the cue had no identifier line.
//
// Parse overwrites every field, so a caller may reuse one Cue across
// calls to avoid reallocation. The parser keeps no reference to it
// between calls. No ordering is enforced between StartTime and
// StopTime.
type Cue struct {
	Identifier string
	StartTime  Time
	StopTime   Time
	Settings   []Setting
	Payload    []string
}
