package gapbuffer

import "github.com/dshills/scribe/internal/engine/coord"

// GapBuffer is a rune gap buffer addressed by line/column positions.
// The underlying slice stores runes with a gap between gapStart and gapEnd.
type GapBuffer struct {
	buf      []rune
	gapStart int
	gapEnd   int

	margin int
	unit   ColumnUnit
}

// New creates a GapBuffer holding content, with the gap at the end.
func New(content string, opts ...Option) *GapBuffer {
	g := &GapBuffer{
		margin: DefaultGrowthMargin,
		unit:   ColumnRunes,
	}

	for _, opt := range opts {
		opt(g)
	}

	runes := []rune(content)
	g.buf = make([]rune, len(runes)+g.margin)
	copy(g.buf, runes)
	g.gapStart = len(runes)
	g.gapEnd = len(g.buf)
	return g
}

// Insert writes text at the given position. Out-of-range positions are
// clamped (see Clamp). Insert never fails.
func (g *GapBuffer) Insert(text string, at coord.Position) {
	if text == "" {
		return
	}

	runes := []rune(text)
	g.moveGap(g.OffsetOf(at))
	g.ensureGap(len(runes))
	copy(g.buf[g.gapStart:], runes)
	g.gapStart += len(runes)
}

// String materializes the content, excluding the gap.
func (g *GapBuffer) String() string {
	out := make([]rune, 0, g.Len())
	out = append(out, g.buf[:g.gapStart]...)
	out = append(out, g.buf[g.gapEnd:]...)
	return string(out)
}

// Len returns the content length in runes.
func (g *GapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// LineCount returns the number of lines. An empty buffer has one line.
func (g *GapBuffer) LineCount() int {
	return g.view().lineCount()
}

// LineText returns the text of a line without its newline.
// Lines past the end of the content are empty.
func (g *GapBuffer) LineText(line uint32) string {
	v := g.view()
	start, ok := v.lineStart(line)
	if !ok {
		return ""
	}
	return string(v.slice(start, v.lineEnd(start)))
}

// OffsetOf converts a position to an absolute rune offset, clamping
// positions outside the content.
func (g *GapBuffer) OffsetOf(p coord.Position) int {
	return offsetOf(g.view(), p, g.unit)
}

// PositionOf converts an absolute rune offset to a position. Offsets
// outside [0, Len()] are clamped.
func (g *GapBuffer) PositionOf(offset int) coord.Position {
	return positionOf(g.view(), offset, g.unit)
}

// Clamp returns the position an insertion at p would actually use.
func (g *GapBuffer) Clamp(p coord.Position) coord.Position {
	v := g.view()
	return positionOf(v, offsetOf(v, p, g.unit), g.unit)
}

func (g *GapBuffer) view() view {
	return view{head: g.buf[:g.gapStart], tail: g.buf[g.gapEnd:]}
}

// moveGap moves the gap so that gapStart == pos. Only the runes between
// the old and new gap location are copied.
func (g *GapBuffer) moveGap(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > g.Len() {
		pos = g.Len()
	}
	if pos == g.gapStart {
		return
	}

	if pos < g.gapStart {
		// move the end of head to the front of tail
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= d
		g.gapEnd -= d
		return
	}

	// move the front of tail to the end of head
	d := pos - g.gapStart
	copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
	g.gapStart += d
	g.gapEnd += d
}

// ensureGap grows the buffer so the gap holds at least n runes.
// The new buffer has room for Len()+n+margin runes.
func (g *GapBuffer) ensureGap(n int) {
	if g.gapEnd-g.gapStart >= n {
		return
	}

	newCap := g.Len() + n + g.margin
	newBuf := make([]rune, newCap)
	copy(newBuf, g.buf[:g.gapStart])
	tailLen := len(g.buf) - g.gapEnd
	copy(newBuf[newCap-tailLen:], g.buf[g.gapEnd:])
	g.buf = newBuf
	g.gapEnd = newCap - tailLen
}
