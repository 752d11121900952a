// Package timecode represents instants in a media stream as absolute
// frame counts rendered through the editorial HH:MM:SS:FF convention.
// The primary type is
//
// 	type Timecode struct{ ... }
//
// which pairs a signed total frame count with a frame rate. The count
// is the identity of the timecode: changing the rate re-renders the
// HH:MM:SS:FF view but never moves the instant, and arithmetic between
// timecodes operates on counts regardless of rate.
//
// Drop-frame timecode is not supported.
package timecode
