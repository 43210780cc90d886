// Copyright (c) the stuffit authors
// Licensed under the MIT license

package stuffit

// Fork selects which of a file entry's two parallel byte streams to read.
type Fork int

const (
	// DataFork is the opaque data fork.
	DataFork Fork = iota
	// ResourceFork is the structured (here: opaque-blob) resource fork.
	ResourceFork
)

// FinderFlag names bits of FinderInfo.Flags, per classic Mac OS Finder
// flag-word conventions. Named here purely so callers don't have to hunt
// for the bit assignments themselves; spec.md's data model already
// allocates the 16-bit flags field, this just labels the bits.
type FinderFlag uint16

const (
	FinderFlagIsOnDesk      FinderFlag = 1 << 0
	FinderFlagColorMask     FinderFlag = 0x0E
	FinderFlagIsShared      FinderFlag = 1 << 6
	FinderFlagHasNoInits    FinderFlag = 1 << 7
	FinderFlagHasBeenInited FinderFlag = 1 << 8
	FinderFlagHasCustomIcon FinderFlag = 1 << 10
	FinderFlagIsStationery  FinderFlag = 1 << 11
	FinderFlagNameLocked    FinderFlag = 1 << 12
	FinderFlagHasBundle     FinderFlag = 1 << 13
	FinderFlagInvisible     FinderFlag = 1 << 14
	FinderFlagIsAlias       FinderFlag = 1 << 15
)

// FinderInfo is the classic Mac OS Finder metadata attached to an archive
// member: a 4-byte type code, a 4-byte creator code, and a 16-bit flags
// word. The on-disk record also carries zeroed locator/position fields
// (spec.md §3); this reader does not expose those since nothing in this
// reader's scope (a read-only byte extractor) ever produces a nonzero
// value for them.
type FinderInfo struct {
	Type    [4]byte
	Creator [4]byte
	Flags   uint16
}

// Has reports whether all bits of flag are set in i.Flags.
func (i FinderInfo) Has(flag FinderFlag) bool {
	return uint16(i.Flags)&uint16(flag) == uint16(flag)
}

// FileEntryFork describes one fork's compressed extent within the archive
// and the parameters needed to decode it.
type FileEntryFork struct {
	// UncompressedSize is the decompressed length in bytes. Zero means the
	// fork is absent.
	UncompressedSize uint32
	// CompressedSize is the on-disk length of the compressed extent.
	CompressedSize uint32
	// Offset is the absolute byte offset of the compressed data within the
	// backing stream.
	Offset uint64
	// CRC is the expected CRC-16/XMODEM over the decompressed bytes.
	CRC uint16
	// Compression is the method id; bits 4-7 (the upper nibble) signal
	// encryption and are never supported by this reader.
	Compression uint8
}

// Absent reports whether this fork carries no data (UncompressedSize == 0).
func (f FileEntryFork) Absent() bool { return f.UncompressedSize == 0 }

// encrypted reports whether the fork's compression byte has any
// encryption bit set.
func (f FileEntryFork) encrypted() bool { return f.Compression&0xF0 != 0 }

// method returns the fork's compression method id with the encryption
// bits masked off.
func (f FileEntryFork) method() uint8 { return f.Compression & 0x0F }

// FileEntry aggregates the two forks of one archive member.
type FileEntry struct {
	DataFork FileEntryFork
	ResFork  FileEntryFork
}

func (e FileEntry) fork(which Fork) FileEntryFork {
	if which == ResourceFork {
		return e.ResFork
	}
	return e.DataFork
}
