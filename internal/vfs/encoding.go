package vfs

import (
	"bytes"
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding is returned when content is not Unicode text.
var ErrInvalidEncoding = errors.New("content is not valid Unicode text")

// Encoding represents a character encoding.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 encoding (default).
	EncodingUTF8 Encoding = "utf-8"

	// EncodingUTF8BOM is UTF-8 encoding with BOM.
	EncodingUTF8BOM Encoding = "utf-8-bom"

	// EncodingUTF16LE is UTF-16 Little Endian.
	EncodingUTF16LE Encoding = "utf-16le"

	// EncodingUTF16BE is UTF-16 Big Endian.
	EncodingUTF16BE Encoding = "utf-16be"

	// EncodingASCII is ASCII encoding.
	EncodingASCII Encoding = "ascii"

	// EncodingUnknown is anything that is not one of the Unicode encodings
	// above, typically a legacy 8-bit code page.
	EncodingUnknown Encoding = "unknown"
)

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding attempts to detect the encoding of file content.
// It checks for BOM markers first, then validates UTF-8.
func DetectEncoding(content []byte) Encoding {
	if len(content) == 0 {
		return EncodingUTF8
	}

	if bytes.HasPrefix(content, bomUTF8) {
		return EncodingUTF8BOM
	}
	if bytes.HasPrefix(content, bomUTF16LE) {
		return EncodingUTF16LE
	}
	if bytes.HasPrefix(content, bomUTF16BE) {
		return EncodingUTF16BE
	}

	if utf8.Valid(content) {
		if isASCII(content) {
			return EncodingASCII
		}
		return EncodingUTF8
	}

	return EncodingUnknown
}

// StripBOM removes the BOM from content if present.
// Returns the content without BOM and the detected encoding.
func StripBOM(content []byte) ([]byte, Encoding) {
	if bytes.HasPrefix(content, bomUTF8) {
		return content[3:], EncodingUTF8BOM
	}
	if bytes.HasPrefix(content, bomUTF16LE) {
		return content[2:], EncodingUTF16LE
	}
	if bytes.HasPrefix(content, bomUTF16BE) {
		return content[2:], EncodingUTF16BE
	}
	return content, EncodingUTF8
}

// DecodeText converts raw file content into text. UTF-8 (with or without a
// BOM) is returned as is minus the BOM; UTF-16 with a BOM is transcoded.
// Any other content fails with ErrInvalidEncoding.
func DecodeText(content []byte) (string, Encoding, error) {
	enc := DetectEncoding(content)

	switch enc {
	case EncodingUTF8, EncodingASCII:
		return string(content), enc, nil

	case EncodingUTF8BOM:
		body, _ := StripBOM(content)
		if !utf8.Valid(body) {
			return "", enc, ErrInvalidEncoding
		}
		return string(body), enc, nil

	case EncodingUTF16LE, EncodingUTF16BE:
		if len(content)%2 != 0 {
			return "", enc, ErrInvalidEncoding
		}
		endian := unicode.LittleEndian
		if enc == EncodingUTF16BE {
			endian = unicode.BigEndian
		}
		// The decoder substitutes U+FFFD for unpaired surrogates.
		if !validSurrogates(content[2:], enc == EncodingUTF16BE) {
			return "", enc, ErrInvalidEncoding
		}
		out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
		if err != nil {
			return "", enc, errors.Join(ErrInvalidEncoding, err)
		}
		return string(out), enc, nil

	default:
		return "", enc, ErrInvalidEncoding
	}
}

// isASCII returns true if all bytes are ASCII (< 128).
func isASCII(content []byte) bool {
	for _, b := range content {
		if b >= 128 {
			return false
		}
	}
	return true
}

// validSurrogates reports whether every surrogate code unit in body is part
// of a high/low pair. len(body) must be even.
func validSurrogates(body []byte, bigEndian bool) bool {
	units := len(body) / 2
	for i := 0; i < units; i++ {
		u := codeUnit(body, i, bigEndian)
		if !utf16.IsSurrogate(rune(u)) {
			continue
		}
		if !isHighSurrogate(u) || i+1 >= units || !isLowSurrogate(codeUnit(body, i+1, bigEndian)) {
			return false
		}
		i++
	}
	return true
}

func codeUnit(body []byte, i int, bigEndian bool) uint16 {
	if bigEndian {
		return uint16(body[2*i])<<8 | uint16(body[2*i+1])
	}
	return uint16(body[2*i+1])<<8 | uint16(body[2*i])
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u < 0xDC00 }

func isLowSurrogate(u uint16) bool { return u >= 0xDC00 && u < 0xE000 }
