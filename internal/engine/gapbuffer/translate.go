package gapbuffer

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/scribe/internal/engine/coord"
)

// view is the logical content of a GapBuffer: head followed by tail.
// Every coordinate translation goes through a view so gap slots are never
// scanned.
type view struct {
	head []rune
	tail []rune
}

func (v view) len() int {
	return len(v.head) + len(v.tail)
}

func (v view) at(i int) rune {
	if i < len(v.head) {
		return v.head[i]
	}
	return v.tail[i-len(v.head)]
}

// slice returns a copy of the runes in [start, end).
func (v view) slice(start, end int) []rune {
	out := make([]rune, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, v.at(i))
	}
	return out
}

func (v view) lineCount() int {
	n := 1
	for _, seg := range [2][]rune{v.head, v.tail} {
		for _, r := range seg {
			if r == '\n' {
				n++
			}
		}
	}
	return n
}

// lineStart returns the offset of the first rune of line. ok is false when
// the content has fewer lines, in which case start is the content length.
func (v view) lineStart(line uint32) (start int, ok bool) {
	if line == 0 {
		return 0, true
	}

	var seen uint32
	base := 0
	for _, seg := range [2][]rune{v.head, v.tail} {
		for i, r := range seg {
			if r != '\n' {
				continue
			}
			seen++
			if seen == line {
				return base + i + 1, true
			}
		}
		base += len(seg)
	}
	return v.len(), false
}

// lineEnd returns the offset of the newline ending the line that begins at
// start, or the content length for the last line.
func (v view) lineEnd(start int) int {
	n := v.len()
	for i := start; i < n; i++ {
		if v.at(i) == '\n' {
			return i
		}
	}
	return n
}

func offsetOf(v view, p coord.Position, unit ColumnUnit) int {
	start, ok := v.lineStart(p.Line)
	if !ok {
		return v.len()
	}
	end := v.lineEnd(start)

	// int(p.Offset) is negative on 32-bit platforms for the top half of uint32.
	col := int(p.Offset)
	switch {
	case col < 0:
		col = end - start
	case unit == ColumnGraphemes:
		col = graphemesToRunes(v.slice(start, end), col)
	}
	if col > end-start {
		col = end - start
	}
	return start + col
}

func positionOf(v view, offset int, unit ColumnUnit) coord.Position {
	if offset < 0 {
		offset = 0
	}
	if n := v.len(); offset > n {
		offset = n
	}

	var line uint32
	lineStart := 0
	for i := 0; i < offset; i++ {
		if v.at(i) == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col := offset - lineStart
	if unit == ColumnGraphemes {
		col = uniseg.GraphemeClusterCount(string(v.slice(lineStart, offset)))
	}
	return coord.Position{Line: line, Offset: uint32(col)}
}

// graphemesToRunes returns how many runes the first n grapheme clusters of
// line span. It stops at the end of the line.
func graphemesToRunes(line []rune, n int) int {
	runes := 0
	gr := uniseg.NewGraphemes(string(line))
	for i := 0; i < n && gr.Next(); i++ {
		runes += len(gr.Runes())
	}
	return runes
}
