// Copyright (c) the stuffit authors
// Licensed under the MIT license

package stuffit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// buildEntryHeader builds one 112-byte entry header with a correct
// trailing CRC-16, for use as a synthetic fixture.
func buildEntryHeader(t *testing.T, resCompression, dataCompression byte, name string, resUncomp, resComp, dataUncomp, dataComp uint32, resCRC, dataCRC uint16) []byte {
	t.Helper()
	hdr := make([]byte, entryHeaderSize)
	hdr[0] = resCompression
	hdr[1] = dataCompression
	hdr[2] = byte(len(name))
	copy(hdr[3:], name)

	finderOff := 3 + nameFieldSize
	copy(hdr[finderOff:], []byte("TEXT"))
	copy(hdr[finderOff+4:], []byte("ttxt"))
	binary.BigEndian.PutUint16(hdr[finderOff+8:], 0)

	sizesOff := finderOff + 18
	binary.BigEndian.PutUint32(hdr[sizesOff:], resUncomp)
	binary.BigEndian.PutUint32(hdr[sizesOff+4:], dataUncomp)
	binary.BigEndian.PutUint32(hdr[sizesOff+8:], resComp)
	binary.BigEndian.PutUint32(hdr[sizesOff+12:], dataComp)

	crcOff := sizesOff + 16
	binary.BigEndian.PutUint16(hdr[crcOff:], resCRC)
	binary.BigEndian.PutUint16(hdr[crcOff+2:], dataCRC)

	binary.BigEndian.PutUint16(hdr[110:112], crc16(hdr[0:110]))
	return hdr
}

func buildArchiveHeader(numEntries uint16, archiveSize uint32) []byte {
	hdr := make([]byte, archiveHeaderSize)
	copy(hdr[0:4], "SIT!")
	binary.BigEndian.PutUint16(hdr[4:6], numEntries)
	binary.BigEndian.PutUint32(hdr[6:10], archiveSize)
	copy(hdr[10:14], "rLau")
	hdr[14] = 1
	return hdr
}

// buildSingleFileArchive assembles a minimal one-entry, method-0 (stored)
// archive: no resource fork, a data fork holding content verbatim.
func buildSingleFileArchive(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	crc := crc16(content)
	entry := buildEntryHeader(t, 0, 0, name, 0, 0, uint32(len(content)), uint32(len(content)), 0, crc)

	total := archiveHeaderSize + len(entry) + len(content)
	buf := &bytes.Buffer{}
	buf.Write(buildArchiveHeader(1, uint32(total)))
	buf.Write(entry)
	buf.Write(content)
	return buf.Bytes()
}

func TestOpenSingleFileRoundTrip(t *testing.T) {
	raw := buildSingleFileArchive(t, "hello.txt", []byte("hello, world"))
	a, err := Open(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	members := a.ListMembers()
	if len(members) != 1 || members[0] != Path("hello.txt") {
		t.Fatalf("ListMembers = %v", members)
	}
	if !a.Has(Path("hello.txt")) {
		t.Fatalf("Has(hello.txt) = false")
	}
	if !a.Has(Path("HELLO.TXT")) {
		t.Fatalf("Has should be case-insensitive")
	}

	got, err := a.ReadDataFork(Path("hello.txt"))
	if err != nil {
		t.Fatalf("ReadDataFork: %v", err)
	}
	if string(got) != "hello, world" {
		t.Fatalf("ReadDataFork = %q", got)
	}

	if _, err := a.ReadResourceFork(Path("hello.txt")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ReadResourceFork on absent fork: got %v, want ErrNotFound", err)
	}

	fi, ok := a.FinderInfo(Path("hello.txt"))
	if !ok {
		t.Fatalf("FinderInfo: not found")
	}
	if string(fi.Type[:]) != "TEXT" || string(fi.Creator[:]) != "ttxt" {
		t.Fatalf("FinderInfo = %+v", fi)
	}

	if a.PathSeparator() != ':' {
		t.Fatalf("PathSeparator = %q", a.PathSeparator())
	}
}

func TestReadDataForkOnAbsentForkReturnsEmptySlice(t *testing.T) {
	content := []byte("resource only")
	crc := crc16(content)
	// Resource fork present, data fork absent (dataUncomp = 0).
	entry := buildEntryHeader(t, 0, 0, "rsrc-only", uint32(len(content)), uint32(len(content)), 0, 0, crc, 0)
	total := archiveHeaderSize + len(entry) + len(content)
	buf := &bytes.Buffer{}
	buf.Write(buildArchiveHeader(1, uint32(total)))
	buf.Write(entry)
	buf.Write(content)

	a, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	got, err := a.ReadDataFork(Path("rsrc-only"))
	if err != nil {
		t.Fatalf("ReadDataFork on absent data fork: got err %v, want nil", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadDataFork on absent data fork = %q, want empty", got)
	}

	if _, err := a.ReadResourceFork(Path("rsrc-only")); err != nil {
		t.Fatalf("ReadResourceFork: %v", err)
	}
}

func TestOpenRejectsUnknownMagic(t *testing.T) {
	raw := buildSingleFileArchive(t, "x", []byte("y"))
	raw[0] = 'X'
	if _, err := Open(bytes.NewReader(raw)); !errors.Is(err, ErrUnknownMagic) {
		t.Fatalf("Open with bad magic: got %v, want ErrUnknownMagic", err)
	}
}

func TestOpenRejectsCorruptEntryHeaderCRC(t *testing.T) {
	raw := buildSingleFileArchive(t, "x", []byte("y"))
	// Entry header starts right after the 22-byte archive header; flip a
	// byte inside it without touching its trailing CRC word.
	raw[archiveHeaderSize+5] ^= 0xFF
	if _, err := Open(bytes.NewReader(raw)); !errors.Is(err, ErrCorruptHeader) {
		t.Fatalf("Open with corrupt entry header: got %v, want ErrCorruptHeader", err)
	}
}

func TestReadDataForkDetectsChecksumMismatch(t *testing.T) {
	raw := buildSingleFileArchive(t, "x", []byte("y"))
	// Corrupt the content without touching the header or its CRC fields.
	dataOffset := archiveHeaderSize + entryHeaderSize
	raw[dataOffset] ^= 0xFF

	a, err := Open(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := a.ReadDataFork(Path("x")); !errors.Is(err, ErrChecksum) {
		t.Fatalf("ReadDataFork over corrupted content: got %v, want ErrChecksum", err)
	}
}

func TestOpenWithFolderNesting(t *testing.T) {
	folder := buildEntryHeader(t, 0, 32, "Sub", 0, 0, 0, 0, 0, 0)
	content := []byte("inner")
	crc := crc16(content)
	file := buildEntryHeader(t, 0, 0, "leaf.txt", 0, 0, uint32(len(content)), uint32(len(content)), 0, crc)
	endFolder := buildEntryHeader(t, 0, 33, "", 0, 0, 0, 0, 0, 0)

	total := archiveHeaderSize + len(folder) + len(file) + len(content) + len(endFolder)
	buf := &bytes.Buffer{}
	buf.Write(buildArchiveHeader(2, uint32(total)))
	buf.Write(folder)
	buf.Write(file)
	buf.Write(content)
	buf.Write(endFolder)

	a, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !a.Has(Path("Sub:leaf.txt")) {
		t.Fatalf("Has(Sub:leaf.txt) = false, members = %v", a.ListMembers())
	}

	got, err := a.ReadDataFork(Path("Sub:leaf.txt"))
	if err != nil {
		t.Fatalf("ReadDataFork: %v", err)
	}
	if string(got) != "inner" {
		t.Fatalf("ReadDataFork = %q", got)
	}
}

func TestOpenWithFlattenTree(t *testing.T) {
	folder := buildEntryHeader(t, 0, 32, "Sub", 0, 0, 0, 0, 0, 0)
	content := []byte("inner")
	crc := crc16(content)
	file := buildEntryHeader(t, 0, 0, "leaf.txt", 0, 0, uint32(len(content)), uint32(len(content)), 0, crc)
	endFolder := buildEntryHeader(t, 0, 33, "", 0, 0, 0, 0, 0, 0)

	total := archiveHeaderSize + len(folder) + len(file) + len(content) + len(endFolder)
	buf := &bytes.Buffer{}
	buf.Write(buildArchiveHeader(2, uint32(total)))
	buf.Write(folder)
	buf.Write(file)
	buf.Write(content)
	buf.Write(endFolder)

	a, err := Open(bytes.NewReader(buf.Bytes()), WithFlattenTree(true))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !a.Has(Path("leaf.txt")) {
		t.Fatalf("Has(leaf.txt) = false under flatten, members = %v", a.ListMembers())
	}
	if a.Has(Path("Sub:leaf.txt")) {
		t.Fatalf("Has(Sub:leaf.txt) should be false under flatten")
	}
}

func TestOpenRejectsUnmatchedEndOfFolder(t *testing.T) {
	endFolder := buildEntryHeader(t, 0, 33, "", 0, 0, 0, 0, 0, 0)
	total := archiveHeaderSize + len(endFolder)
	buf := &bytes.Buffer{}
	buf.Write(buildArchiveHeader(1, uint32(total)))
	buf.Write(endFolder)

	if _, err := Open(bytes.NewReader(buf.Bytes())); !errors.Is(err, ErrCorruptHeader) {
		t.Fatalf("Open with unmatched end-of-folder: got %v, want ErrCorruptHeader", err)
	}
}

func TestReadDataForkRejectsEncryptedFork(t *testing.T) {
	content := []byte("secret")
	crc := crc16(content)
	// Encryption bit set in the upper nibble of the data-compression byte.
	entry := buildEntryHeader(t, 0, 0xF0, "locked", 0, 0, uint32(len(content)), uint32(len(content)), 0, crc)
	total := archiveHeaderSize + len(entry) + len(content)
	buf := &bytes.Buffer{}
	buf.Write(buildArchiveHeader(1, uint32(total)))
	buf.Write(entry)
	buf.Write(content)

	a, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := a.ReadDataFork(Path("locked")); !errors.Is(err, ErrEncrypted) {
		t.Fatalf("ReadDataFork on encrypted fork: got %v, want ErrEncrypted", err)
	}
}

func TestReadDataForkRejectsUnsupportedMethod(t *testing.T) {
	content := []byte("whatever")
	crc := crc16(content)
	entry := buildEntryHeader(t, 0, 5, "odd", 0, 0, uint32(len(content)), uint32(len(content)), 0, crc)
	total := archiveHeaderSize + len(entry) + len(content)
	buf := &bytes.Buffer{}
	buf.Write(buildArchiveHeader(1, uint32(total)))
	buf.Write(entry)
	buf.Write(content)

	a, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := a.ReadDataFork(Path("odd")); !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("ReadDataFork with method 5: got %v, want ErrUnsupportedCompression", err)
	}
}
