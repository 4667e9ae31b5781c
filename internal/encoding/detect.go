// Package encoding normalizes bank exports to UTF-8. Mexican banks still ship
// statements in Windows-1252 or UTF-16 depending on the channel.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

const (
	UTF8        = "UTF-8"
	UTF16LE     = "UTF-16LE"
	UTF16BE     = "UTF-16BE"
	Windows1252 = "windows-1252"
	ISO88591    = "ISO-8859-1"
	ISO885915   = "ISO-8859-15"
)

var boms = []struct {
	prefix  []byte
	charset string
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

// decoders for the charsets chardet reports on Latin-American bank files.
var decoders = map[string]xenc.Encoding{
	UTF16LE:     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	UTF16BE:     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	Windows1252: charmap.Windows1252,
	ISO88591:    charmap.Windows1252,
	ISO885915:   charmap.ISO8859_15,
}

// NewUTF8Reader wraps r so it yields UTF-8 and reports the charset it
// decoded from. A UTF-8 BOM is dropped; anything chardet cannot place is read
// as Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, string, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("sniff encoding: %w", err)
	}

	if charset, ok := fromBOM(head); ok {
		if charset == UTF8 {
			_, _ = br.Discard(3)
			return br, UTF8, nil
		}

		return decode(br, charset), charset, nil
	}

	if utf8.Valid(head) {
		return br, UTF8, nil
	}

	charset := Windows1252

	if res, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if _, known := decoders[res.Charset]; known || res.Charset == UTF8 {
			charset = res.Charset
		}
	}

	if charset == UTF8 {
		return br, UTF8, nil
	}

	return decode(br, charset), charset, nil
}

func fromBOM(head []byte) (string, bool) {
	for _, b := range boms {
		if bytes.HasPrefix(head, b.prefix) {
			return b.charset, true
		}
	}

	return "", false
}

func decode(r io.Reader, charset string) io.Reader {
	return transform.NewReader(r, decoders[charset].NewDecoder())
}
