// Package gapbuffer provides the mutable character store behind a document.
//
// A GapBuffer keeps the text in a single rune slice with an unused region,
// the gap, parked where the most recent edit happened:
//
//	[ head ......... | gap | ......... tail ]
//	0            gapStart  gapEnd        len(buf)
//
// The content is head followed by tail. Inserting at the gap only writes
// into it; inserting elsewhere first moves the gap, which shifts exactly the
// runes between the old and new location. Consecutive keystrokes land next
// to each other, so the gap rarely travels far.
//
// Positions are translated to offsets by scanning line breaks over the
// logical content (head then tail). Translation never looks at gap slots.
//
// Basic usage:
//
//	g := gapbuffer.New("hello world")
//	g.Insert(",", coord.Position{Line: 0, Offset: 5})
//	text := g.String() // "hello, world"
//
// Positions past the end of a line clamp to the end of that line, and
// lines past the end of the content clamp to the end of the content.
//
// A GapBuffer is not safe for concurrent use.
package gapbuffer
