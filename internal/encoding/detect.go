// Package encoding turns uploaded bank statements into UTF-8 text. Colombian banks
// still export CSV files in Windows-1252 or ISO-8859-1, with or without a BOM.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names the encoding a statement was read with.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1252 Charset = "windows-1252"
	ISO88591    Charset = "ISO-8859-1"
)

const sniffLen = 4096

var boms = []struct {
	prefix  []byte
	charset Charset
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

// Detect guesses the charset of the start of a file. The second result is the
// length of the byte order mark, if any.
func Detect(head []byte) (Charset, int) {
	for _, b := range boms {
		if bytes.HasPrefix(head, b.prefix) {
			return b.charset, len(b.prefix)
		}
	}

	if utf8.Valid(head) {
		return UTF8, 0
	}

	result, err := chardet.NewTextDetector().DetectBest(head)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return UTF8, 0
		case "ISO-8859-1":
			return ISO88591, 0
		}
	}

	// Anything else from a Spanish-language bank is almost always cp1252.
	return Windows1252, 0
}

// NewReader returns a reader producing the UTF-8 text of r, without BOM, and the
// charset it was decoded from.
func NewReader(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("sniffing statement encoding: %w", err)
	}

	charset, bomLen := Detect(head)
	if _, err := br.Discard(bomLen); err != nil {
		return nil, "", fmt.Errorf("skipping byte order mark: %w", err)
	}

	dec := decoder(charset)
	if dec == nil {
		return br, charset, nil
	}

	return transform.NewReader(br, dec), charset, nil
}

func decoder(c Charset) *encoding.Decoder {
	switch c {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case Windows1252:
		return charmap.Windows1252.NewDecoder()
	case ISO88591:
		return charmap.ISO8859_1.NewDecoder()
	}

	return nil
}
