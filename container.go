// Copyright (c) the stuffit authors
// Licensed under the MIT license

package stuffit

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	archiveHeaderSize = 22
	entryHeaderSize   = 112
	nameFieldSize     = 63
)

// validMagics lists the accepted primary 4-byte archive magics. StuffIt
// grew several of these over its lifetime (plain SIT!, and a run of
// self-extracting-installer variants); this reader treats them all as
// the same container format.
var validMagics = [][4]byte{
	{'S', 'I', 'T', '!'},
	{'S', 'T', '6', '5'},
	{'S', 'T', '5', '0'},
	{'S', 'T', '6', '0'},
	{'S', 'T', 'i', 'n'},
	{'S', 'T', 'i', '2'},
	{'S', 'T', 'i', '3'},
	{'S', 'T', 'i', '4'},
	{'S', 'T', '4', '6'},
}

var secondaryMagic = [4]byte{'r', 'L', 'a', 'u'}

// rawEntry is one parsed 112-byte entry header, before being folded into
// either a directory-marker action or a registered FileEntry.
type rawEntry struct {
	resCompression  uint8
	dataCompression uint8
	name            string
	finder          FinderInfo
	resUncompSize   uint32
	dataUncompSize  uint32
	resCompSize     uint32
	dataCompSize    uint32
	resCRC          uint16
	dataCRC         uint16
}

// parseContainer walks the archive body starting just after the 22-byte
// archive header, registering one FileEntry per file (keyed by its full
// folder-prefixed path, or by its bare name alone when flattenTree is set)
// and tracking directory nesting via start/end-of-folder markers.
//
// Grounded on StuffItArchive::open in the retrieved original source: the
// same header layout, the same dir_check masking, and the same prefix-
// stack folder bookkeeping, adapted from that function's C++ pointer
// walk into a Go loop over an io.ReaderAt.
func parseContainer(r io.ReaderAt, flattenTree bool) (*Archive, error) {
	var archHeader [archiveHeaderSize]byte
	if _, err := r.ReadAt(archHeader[:], 0); err != nil {
		return nil, fmt.Errorf("stuffit: reading archive header: %w", err)
	}

	if !isValidMagic(archHeader[0:4]) {
		return nil, ErrUnknownMagic
	}
	if !bytesEqual4(archHeader[10:14], secondaryMagic) {
		return nil, fmt.Errorf("stuffit: secondary magic mismatch: %w", ErrCorruptHeader)
	}
	archiveSize := int64(binary.BigEndian.Uint32(archHeader[6:10]))

	a := &Archive{
		r:       r,
		entries: make(map[string]*FileEntry),
		finder:  make(map[string]FinderInfo),
		order:   nil,
	}

	var prefix string
	depth := 0
	pos := int64(archiveHeaderSize)

	for pos < archiveSize {
		var hdr [entryHeaderSize]byte
		if _, err := r.ReadAt(hdr[:], pos); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, fmt.Errorf("stuffit: reading entry header at %d: %w", pos, err)
		}

		wantCRC := binary.BigEndian.Uint16(hdr[110:112])
		if gotCRC := crc16(hdr[0:110]); gotCRC != wantCRC {
			return nil, fmt.Errorf("stuffit: entry header CRC mismatch at %d (got %04x want %04x): %w", pos, gotCRC, wantCRC, ErrCorruptHeader)
		}

		entry, err := decodeRawEntry(hdr[:])
		if err != nil {
			return nil, err
		}

		fileOffsetAfterHeader := uint64(pos + entryHeaderSize)
		dirCheck := entry.dataCompression & 0x6F

		switch dirCheck {
		case 32: // start-of-folder
			depth++
			if !flattenTree {
				prefix = joinPath(prefix, entry.name)
			}
		case 33: // end-of-folder
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("stuffit: end-of-folder marker with no matching start at %d: %w", pos, ErrCorruptHeader)
			}
			if !flattenTree {
				prefix = parentPath(prefix)
			}
		default:
			var key string
			if flattenTree {
				key = entry.name
			} else {
				key = joinPath(prefix, entry.name)
			}

			fe := &FileEntry{}
			if entry.resUncompSize > 0 {
				fe.ResFork = FileEntryFork{
					UncompressedSize: entry.resUncompSize,
					CompressedSize:   entry.resCompSize,
					Offset:           fileOffsetAfterHeader,
					CRC:              entry.resCRC,
					Compression:      entry.resCompression,
				}
			}
			if entry.dataUncompSize > 0 {
				fe.DataFork = FileEntryFork{
					UncompressedSize: entry.dataUncompSize,
					CompressedSize:   entry.dataCompSize,
					Offset:           fileOffsetAfterHeader + uint64(entry.resCompSize),
					CRC:              entry.dataCRC,
					Compression:      entry.dataCompression,
				}
			}

			if err := checkForkBounds(fe.ResFork, archiveSize); err != nil {
				return nil, err
			}
			if err := checkForkBounds(fe.DataFork, archiveSize); err != nil {
				return nil, err
			}

			k := Path(key).key()
			if _, dup := a.entries[k]; !dup {
				a.order = append(a.order, Path(key))
			}
			a.entries[k] = fe
			a.finder[k] = entry.finder
		}

		pos += entryHeaderSize + int64(entry.resCompSize) + int64(entry.dataCompSize)
	}

	return a, nil
}

func checkForkBounds(f FileEntryFork, size int64) error {
	if f.Absent() {
		return nil
	}
	end := int64(f.Offset) + int64(f.CompressedSize)
	if end > size || end < int64(f.Offset) {
		return fmt.Errorf("stuffit: fork extent [%d,%d) exceeds archive size %d: %w", f.Offset, end, size, ErrCorruptHeader)
	}
	return nil
}

func decodeRawEntry(hdr []byte) (rawEntry, error) {
	var e rawEntry
	e.resCompression = hdr[0]
	e.dataCompression = hdr[1]

	nameLen := int(hdr[2])
	if nameLen > 31 {
		return e, fmt.Errorf("stuffit: name length %d exceeds 31: %w", nameLen, ErrCorruptHeader)
	}
	nameBytes := hdr[3 : 3+nameLen]
	e.name = string(nameBytes)

	finderOff := 3 + nameFieldSize
	copy(e.finder.Type[:], hdr[finderOff:finderOff+4])
	copy(e.finder.Creator[:], hdr[finderOff+4:finderOff+8])
	e.finder.Flags = binary.BigEndian.Uint16(hdr[finderOff+8 : finderOff+10])

	// Creation/modification dates (finderOff+10 .. finderOff+18) are
	// skipped: this reader does not decode or expose them.
	sizesOff := finderOff + 18
	e.resUncompSize = binary.BigEndian.Uint32(hdr[sizesOff : sizesOff+4])
	e.dataUncompSize = binary.BigEndian.Uint32(hdr[sizesOff+4 : sizesOff+8])
	e.resCompSize = binary.BigEndian.Uint32(hdr[sizesOff+8 : sizesOff+12])
	e.dataCompSize = binary.BigEndian.Uint32(hdr[sizesOff+12 : sizesOff+16])

	crcOff := sizesOff + 16
	e.resCRC = binary.BigEndian.Uint16(hdr[crcOff : crcOff+2])
	e.dataCRC = binary.BigEndian.Uint16(hdr[crcOff+2 : crcOff+4])

	return e, nil
}

func isValidMagic(b []byte) bool {
	for _, m := range validMagics {
		if bytesEqual4(b, m) {
			return true
		}
	}
	return false
}

func bytesEqual4(b []byte, want [4]byte) bool {
	return len(b) == 4 && b[0] == want[0] && b[1] == want[1] && b[2] == want[2] && b[3] == want[3]
}
