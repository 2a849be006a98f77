// Package textenc normalises raw file bytes into UTF-8 text lines.
//
// Device tree sources and extlinux.conf files are normally plain UTF-8, but
// files edited on other systems occasionally carry a byte-order mark or are
// saved as UTF-16. Decode handles all three.
package textenc

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrInvalidUTF8 indicates the decoded input is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("textenc: input is not valid UTF-8")
)

// Decode converts data to a UTF-8 string. A UTF-8 BOM is stripped; a UTF-16
// BOM (either byte order) selects UTF-16 decoding. Input without a BOM is
// taken as UTF-8 and must be valid.
func Decode(data []byte) (string, error) {
	dec := transform.Chain(
		unicode.BOMOverride(encoding.Nop.NewDecoder()),
		encoding.UTF8Validator,
	)
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", ErrInvalidUTF8
		}
		return "", err
	}
	return string(out), nil
}

// SplitLines splits text on '\n', dropping a trailing '\r' from each line.
// A final newline does not produce an empty trailing line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
