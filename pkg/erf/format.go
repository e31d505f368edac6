package erf

// Wire layout of an ERF container, little-endian throughout:
//
//	offset  size   field
//	0       8      magic, UTF-16LE, "ERF "
//	8       8      version, UTF-16LE, "V2.0" or "V2.2"
//	16      4      file count (u32)
//	20      4      creation year (u32)
//	24      4      creation day (u32)
//	28      4      module id (u32, meaningful for V2.2 only)
//	32      N×W    TOC records
//
// Each TOC record is 64 bytes of NUL-padded UTF-16LE resource name,
// a u32 byte offset, a u32 packed length, and — V2.2 only — a u32
// unpacked length. V2.0 does not distinguish the two lengths.
const (
	// Magic is the decoded value of the first header field.
	Magic = "ERF "

	headerSize  = 16
	recordSize  = 16
	tocNameSize = 64

	recordSizeV20 = 72
	recordSizeV22 = 76
)

// Version tags the two supported format revisions. It is resolved once
// from the header and threaded through TOC parsing.
type Version int

const (
	// V20 is the "V2.0" revision: 72-byte TOC records, no module id,
	// a single length field.
	V20 Version = iota
	// V22 is the "V2.2" revision: 76-byte TOC records with a module id
	// and separate packed/unpacked lengths.
	V22
)

// String returns the on-disk version literal.
func (v Version) String() string {
	if v == V22 {
		return "V2.2"
	}
	return "V2.0"
}

// tocRecordSize returns the TOC record width for this revision.
func (v Version) tocRecordSize() int {
	if v == V22 {
		return recordSizeV22
	}
	return recordSizeV20
}

// Entry is one table-of-contents record: a named, offset-addressed
// span of bytes inside the container.
type Entry struct {
	// Name is the resource name, decoded from fixed-width UTF-16LE
	// with trailing NULs trimmed. Never empty.
	Name string

	// Offset is the byte offset of the resource data in the container.
	Offset uint32

	// PackedLength is the on-disk length field. The format sometimes
	// uses it purely as bookkeeping; it is reported, never interpreted.
	PackedLength uint32

	// Length is the logical (unpacked) length. For V2.0 archives it
	// always equals PackedLength.
	Length uint32
}
