// Package edl holds the plain editorial records exchanged with edit
// decision lists.
package edl

import (
	"time"

	"github.com/cbsinteractive/editorial/timecode"
)

// DefaultTracks is the track specification applied to new events:
// one video track and two audio tracks.
const DefaultTracks = "VA1A2"

// Event is a single editorial event: one edit with its record and
// source marks. It is a plain record; the timecodes carry all the
// behavior.
type Event struct {
	Name   string
	Tracks string

	Start timecode.Timecode
	End   timecode.Timecode

	MarkIn  timecode.Timecode
	MarkOut timecode.Timecode

	Tape    string
	Scene   string
	Media   string // frame-reference id, e.g. a DPX sequence
	Comment string

	CreatedAt time.Time
}

// NewEvent returns an event with the conventional defaults: VA1A2
// tracks, all four marks at the default one-hour timecode, and the
// creation time stamped once.
func NewEvent() *Event {
	return &Event{
		Tracks:    DefaultTracks,
		Start:     timecode.Default(),
		End:       timecode.Default(),
		MarkIn:    timecode.Default(),
		MarkOut:   timecode.Default(),
		CreatedAt: time.Now(),
	}
}
