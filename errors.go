// Copyright (c) the stuffit authors
// Licensed under the MIT license

package stuffit

import "errors"

// Sentinel errors returned by Open and the Archive read methods. Callers should
// compare with errors.Is rather than equality, since wrapped context (offsets,
// path names) may be attached with fmt.Errorf("...: %w", ...).
var (
	// ErrUnknownMagic means the first four bytes of the stream were not one of
	// the accepted StuffIt archive magics.
	ErrUnknownMagic = errors.New("stuffit: unknown archive magic")

	// ErrCorruptHeader covers secondary-magic mismatch, header CRC mismatch,
	// an overlong name field, or an entry walk that would run past the end
	// of the archive.
	ErrCorruptHeader = errors.New("stuffit: corrupt header")

	// ErrEncrypted is returned when a fork's compression byte has any
	// encryption bit set (compression & 0xF0 != 0). Encrypted forks are
	// rejected outright; this reader never attempts decryption.
	ErrEncrypted = errors.New("stuffit: encrypted fork is unsupported")

	// ErrUnsupportedCompression is returned when a fork's compression
	// method nibble is not 0, 13, or 14.
	ErrUnsupportedCompression = errors.New("stuffit: unsupported compression method")

	// ErrDecode covers malformed prefix codes: a zero-length lookup hit, a
	// stream that truncates before an end-of-stream marker, or a method-13
	// mode byte >= 6.
	ErrDecode = errors.New("stuffit: malformed compressed stream")

	// ErrChecksum is returned when a fork's decoded bytes do not match its
	// stored CRC-16. An entry header whose own CRC-16 fails to verify is
	// reported as ErrCorruptHeader instead.
	ErrChecksum = errors.New("stuffit: checksum mismatch")

	// ErrNotFound is returned by ReadResourceFork when the entry has no
	// resource fork, or by lookups against a path that isn't registered.
	ErrNotFound = errors.New("stuffit: path not found")
)
