package erf

import (
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/azlands/daoscan/pkg/errors"
)

// File is a parsed archive container: its header fields, the ordered
// table of contents, and a case-insensitive name index. The underlying
// stream is retained so resources can be extracted until Close.
type File struct {
	path     string
	r        io.ReadSeeker
	closer   io.Closer
	version  Version
	year     uint32
	day      uint32
	moduleID uint32
	toc      []Entry
	index    map[string]int
}

// Open opens the archive at path and parses it fully. The returned File
// keeps the file handle for resource extraction; callers must Close it.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveIO, "opening archive %s", path)
	}

	a, err := Parse(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	a.path = path
	a.closer = f
	return a, nil
}

// Parse reads an archive from r, which must be positioned at the start
// of the container. The returned File reads resources through r, so r
// must stay open for as long as extraction is needed. Callers that
// already hold a handle (or a bytes.Reader in tests) use this directly.
func Parse(r io.ReadSeeker) (*File, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, errors.Wrap(err, errors.ErrArchiveIO, "reading archive header")
	}

	magic := decodeUTF16(header[:8])
	if magic != Magic {
		return nil, errors.Newf(errors.ErrBadMagic,
			"bad archive magic: expected %q, found %q", Magic, magic).
			WithDetail("found", magic)
	}

	var version Version
	switch vs := decodeUTF16(header[8:16]); vs {
	case "V2.0":
		version = V20
	case "V2.2":
		version = V22
	default:
		return nil, errors.Newf(errors.ErrUnsupportedVersion,
			"unsupported ERF version: %q", vs).
			WithDetail("found", vs)
	}

	record := make([]byte, recordSize)
	if _, err := io.ReadFull(r, record); err != nil {
		return nil, errors.Wrap(err, errors.ErrArchiveIO, "reading archive file table header")
	}

	a := &File{
		r:       r,
		version: version,
		year:    binary.LittleEndian.Uint32(record[4:8]),
		day:     binary.LittleEndian.Uint32(record[8:12]),
		index:   make(map[string]int),
	}

	// The module id bytes are always consumed; the field only means
	// anything from V2.2 on.
	if version == V22 {
		a.moduleID = binary.LittleEndian.Uint32(record[12:16])
	}

	count := binary.LittleEndian.Uint32(record[0:4])
	a.toc = make([]Entry, 0, count)

	buf := make([]byte, version.tocRecordSize())
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errors.Wrapf(err, errors.ErrArchiveIO, "reading TOC entry %d", i)
		}

		name := decodeUTF16(buf[:tocNameSize])
		if name == "" {
			return nil, errors.Newf(errors.ErrMalformedToc,
				"empty resource name in TOC entry %d", i).
				WithDetail("index", int(i))
		}

		entry := Entry{
			Name:         name,
			Offset:       binary.LittleEndian.Uint32(buf[tocNameSize : tocNameSize+4]),
			PackedLength: binary.LittleEndian.Uint32(buf[tocNameSize+4 : tocNameSize+8]),
		}
		if version == V22 {
			entry.Length = binary.LittleEndian.Uint32(buf[tocNameSize+8 : tocNameSize+12])
		} else {
			entry.Length = entry.PackedLength
		}

		a.toc = append(a.toc, entry)
		// Last write wins when an archive declares the same name twice.
		a.index[strings.ToLower(name)] = len(a.toc) - 1
	}

	return a, nil
}

// Close releases the underlying file handle. It is a no-op for files
// built by Parse over a caller-owned reader.
func (a *File) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Path returns the path the archive was opened from, or "" for Parse.
func (a *File) Path() string { return a.path }

// Version returns the container's format revision.
func (a *File) Version() Version { return a.version }

// Year returns the creation year header field.
func (a *File) Year() uint32 { return a.year }

// Day returns the creation day header field.
func (a *File) Day() uint32 { return a.day }

// ModuleID returns the module identifier, always 0 for V2.0 archives.
func (a *File) ModuleID() uint32 { return a.moduleID }

// Toc returns the table of contents in declaration order. The slice is
// shared with the File; callers must not modify it.
func (a *File) Toc() []Entry { return a.toc }

// Entry looks up a TOC entry by name, case-insensitively.
func (a *File) Entry(name string) (Entry, bool) {
	idx, ok := a.index[strings.ToLower(name)]
	if !ok {
		return Entry{}, false
	}
	return a.toc[idx], true
}

// Resource extracts the named resource's bytes: exactly the entry's
// unpacked length, read from the entry's stored offset. Lookup is
// case-insensitive. No decompression is performed.
func (a *File) Resource(name string) ([]byte, error) {
	entry, ok := a.Entry(name)
	if !ok {
		return nil, errors.Newf(errors.ErrResourceNotFound,
			"resource %q not found in archive", name).
			WithDetail("resource", name)
	}

	if _, err := a.r.Seek(int64(entry.Offset), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveIO,
			"seeking to resource %q at offset %d", entry.Name, entry.Offset)
	}

	data := make([]byte, entry.Length)
	if _, err := io.ReadFull(a.r, data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveIO,
			"reading %d bytes of resource %q", entry.Length, entry.Name)
	}

	return data, nil
}
