// Package buffer provides Document, the text buffer an editor core works
// with: one character store, a cursor, and the location the content was
// loaded from.
//
// Basic usage:
//
//	doc := buffer.New()
//	doc.Insert("scribe")
//	text := doc.Data() // "scribe"
//
//	doc, err := buffer.Open(vfs.NewOSFS(), "notes.txt")
//	if err != nil {
//	    var lerr *buffer.LoadError
//	    if errors.As(err, &lerr) && lerr.Kind == buffer.LoadNotFound {
//	        // prompt for a new file...
//	    }
//	}
//
// Cursor Policy:
//
// Insert writes at the cursor and leaves the cursor where it was. Moving
// the cursor past inserted text is up to the caller, who may want different
// behaviour for typing and for pasting.
//
// Positions outside the content are clamped: a column past the end of its
// line means the end of that line, and a line past the last line means the
// end of the content.
//
// Thread Safety:
//
// A Document is not safe for concurrent use. Callers that read from one
// goroutine while another edits must serialize access themselves.
package buffer
