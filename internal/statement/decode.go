package statement

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnreadable is returned when the input is not text.
var ErrUnreadable = errors.New("file is not readable as text")

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode reads r fully and returns it as UTF-8 text. A UTF-8 byte order mark
// is dropped and UTF-16 input with a byte order mark is converted. Input that
// is not valid UTF-8 is read as Windows-1252, which is what spreadsheet
// programs on Windows write. Text containing NUL bytes is ErrUnreadable.
func Decode(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading statement: %w", err)
	}

	text, _, err := transform.Bytes(decoderFor(raw), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if bytes.IndexByte(text, 0) >= 0 {
		return "", ErrUnreadable
	}
	return string(text), nil
}

func decoderFor(raw []byte) transform.Transformer {
	hasBOM16 := bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE)
	if hasBOM16 || utf8.Valid(raw) {
		return unicode.BOMOverride(unicode.UTF8.NewDecoder())
	}
	return charmap.Windows1252.NewDecoder()
}
