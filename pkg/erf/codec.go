package erf

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// utf16le is the UTF-16LE codec. Malformed sequences are replaced with
// U+FFFD rather than aborting, so one bad name never poisons a whole
// parse. The Encoding itself is stateless and safe to share; decoders
// derived from it are not, so each decode builds its own.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeUTF16 decodes a fixed-width UTF-16LE field and trims trailing
// NUL padding. Safe for concurrent use: parses of distinct archives may
// run in parallel.
func decodeUTF16(b []byte) string {
	decoded, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		// The decoder substitutes replacement runes for invalid
		// units; an error here means something unrecoverable, and
		// the empty-name check downstream will reject the entry.
		return ""
	}
	return strings.TrimRight(string(decoded), "\x00")
}
