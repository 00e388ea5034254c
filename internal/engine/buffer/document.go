package buffer

import (
	"github.com/google/uuid"

	"github.com/dshills/scribe/internal/engine/coord"
	"github.com/dshills/scribe/internal/engine/gapbuffer"
	"github.com/dshills/scribe/internal/logging"
)

// Store is the character storage behind a Document. Implementations own
// their internal layout; a Document only inserts and materializes.
type Store interface {
	// Insert writes text at the given position, clamping positions that
	// fall outside the content.
	Insert(text string, at coord.Position)

	// String returns the full content.
	String() string
}

// Ensure GapBuffer implements Store.
var _ Store = (*gapbuffer.GapBuffer)(nil)

// Document is a text buffer with a cursor.
type Document struct {
	id     uuid.UUID
	store  Store
	cursor coord.Position
	path    string
	hasPath bool
	logger  *logging.Logger
}

// New creates an empty document with the cursor at (0:0).
func New(opts ...Option) *Document {
	return newDocument("", "", false, opts)
}

// FromSource creates a document holding content that was loaded from
// location. The cursor starts at (0:0). An empty location is still recorded.
func FromSource(content, location string, opts ...Option) *Document {
	return newDocument(content, location, true, opts)
}

func newDocument(content, location string, hasPath bool, opts []Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Document{
		id:      uuid.New(),
		path:    location,
		hasPath: hasPath,
	}
	d.logger = o.logger.WithComponent("buffer").WithField("doc", d.id)

	if o.store != nil {
		d.store = o.store(content)
	} else {
		d.store = gapbuffer.New(content, o.gapOptions...)
	}

	d.logger.Debug("created document with %d bytes from %q", len(content), location)
	return d
}

// ID returns the identifier assigned when the document was created.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Data returns the document's content.
func (d *Document) Data() string {
	return d.store.String()
}

// Insert writes text at the cursor. The cursor is not moved.
func (d *Document) Insert(text string) {
	d.store.Insert(text, d.cursor)
}

// Cursor returns the cursor position.
func (d *Document) Cursor() coord.Position {
	return d.cursor
}

// SetCursor moves the cursor. Positions outside the content are accepted
// and clamped when used.
func (d *Document) SetCursor(p coord.Position) {
	d.cursor = p
}

// Path returns the location the document was loaded from.
// ok is false for documents created with New.
func (d *Document) Path() (path string, ok bool) {
	return d.path, d.hasPath
}
