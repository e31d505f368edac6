package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

// Resource is one named payload to place in a built archive.
type Resource struct {
	Name string
	Data []byte

	// Packed overrides the packed-length field when non-zero. V2.2
	// archives may legitimately store it different from len(Data).
	Packed uint32
}

// ArchiveSpec describes an archive to build. Version is the raw
// version literal so tests can also build unsupported revisions.
type ArchiveSpec struct {
	Version   string // "V2.0" or "V2.2"
	Year      uint32
	Day       uint32
	ModuleID  uint32
	Resources []Resource
}

// utf16enc is the shared UTF-16LE Encoding; encoders derived from it
// carry mutable state, so each encode builds its own.
var utf16enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeUTF16 encodes s as UTF-16LE, zero-padded or truncated to width.
func encodeUTF16(t *testing.T, s string, width int) []byte {
	t.Helper()
	encoded, err := utf16enc.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)

	out := make([]byte, width)
	copy(out, encoded)
	return out
}

// BuildERF assembles a bit-exact ERF container in memory.
func BuildERF(t *testing.T, spec ArchiveSpec) []byte {
	t.Helper()

	recordWidth := 72
	if spec.Version == "V2.2" {
		recordWidth = 76
	}
	dataStart := uint32(32 + recordWidth*len(spec.Resources))

	var buf bytes.Buffer
	buf.Write(encodeUTF16(t, "ERF ", 8))
	buf.Write(encodeUTF16(t, spec.Version, 8))

	u32 := func(v uint32) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	u32(uint32(len(spec.Resources)))
	u32(spec.Year)
	u32(spec.Day)
	u32(spec.ModuleID)

	offset := dataStart
	for _, res := range spec.Resources {
		buf.Write(encodeUTF16(t, res.Name, 64))
		u32(offset)
		packed := res.Packed
		if packed == 0 {
			packed = uint32(len(res.Data))
		}
		u32(packed)
		if spec.Version == "V2.2" {
			u32(uint32(len(res.Data)))
		}
		offset += uint32(len(res.Data))
	}

	for _, res := range spec.Resources {
		buf.Write(res.Data)
	}

	return buf.Bytes()
}

// WriteERF builds an archive and writes it to path.
func WriteERF(t *testing.T, path string, spec ArchiveSpec) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, BuildERF(t, spec), 0644))
	return path
}
