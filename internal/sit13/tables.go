// Copyright (c) the stuffit authors
// Licensed under the MIT license

// The constants in this file are the method-13 ("TableHuff") static tables:
// the 37-symbol control alphabet used to read the shape of the dynamic
// trees (info/infoBits), and the nibble-packed delta-coded blob that
// supplies the five pre-shipped static code-length tables (staticPos,
// staticBits, staticBlob). These bit patterns are the wire format itself —
// they originate in the XAD library's SIT13 tables and are reproduced
// here verbatim, the same way the teacher's internal/sit/lzah.go and
// sit14.go carry the XAD static tables they port inline as Go literals.
package sit13

// nibbleReverse maps a 4-bit value to its bit-reversed form, used to turn
// an MSB-first canonical code into the LSB-first order this bitstream
// consumes.
var nibbleReverse = [16]byte{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

// info and infoBits describe the 37-entry control alphabet (Buffer1):
// symbols 0..30 are literal bit-length values (bit-length = symbol+1),
// and symbols 31..36 are the six tree-shape control codes read by
// createTree.
var info = [37]uint32{
	0x5D8, 0x058, 0x040, 0x0C0, 0x000, 0x078, 0x02B, 0x014,
	0x00C, 0x01C, 0x01B, 0x00B, 0x010, 0x020, 0x038, 0x018,
	0x0D8, 0xBD8, 0x180, 0x680, 0x380, 0xF80, 0x780, 0x480,
	0x080, 0x280, 0x3D8, 0xFD8, 0x7D8, 0x9D8, 0x1D8, 0x004,
	0x001, 0x002, 0x007, 0x003, 0x008,
}

var infoBits = [37]uint16{
	11, 8, 8, 8, 8, 7, 6, 5, 5, 5, 5, 6, 5, 6, 7, 7,
	9, 12, 10, 11, 11, 12, 12, 11, 11, 11, 12, 12, 12, 12, 12, 5,
	2, 2, 3, 4, 5,
}

// staticPos and staticBits index the five pre-shipped static tables
// within the packed blob: staticPos[i] is the blob offset, staticBits[i]
// is the distance-alphabet width for static mode i+1.
var staticPos = [5]uint16{0, 330, 661, 991, 1323}
var staticBits = [5]uint8{11, 13, 14, 11, 11}

// staticBlob is the nibble-packed, delta-coded source for the five
// static code-length tables (modes 1-5). Each nibble is either a control
// code (0: subtract the following nibble; 15: add the following nibble)
// or a direct delta (nibble value - 7).
var staticBlob = [1655]byte{
	0xB8, 0x98, 0x78, 0x77, 0x75, 0x97, 0x76, 0x87, 0x77, 0x77, 0x77, 0x78, 0x67, 0x87, 0x68, 0x67, 0x3B, 0x77, 0x78, 0x67,
	0x77, 0x77, 0x77, 0x59, 0x76, 0x87, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x76, 0x87, 0x67, 0x87, 0x77, 0x77, 0x75, 0x88,
	0x59, 0x75, 0x79, 0x77, 0x78, 0x68, 0x77, 0x67, 0x73, 0xB6, 0x65, 0xB6, 0x76, 0x97, 0x67, 0x47, 0x9A, 0x2A, 0x4A, 0x87,
	0x77, 0x78, 0x67, 0x86, 0x78, 0x77, 0x77, 0x77, 0x68, 0x77, 0x77, 0x77, 0x68, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77,
	0x68, 0x77, 0x77, 0x77, 0x67, 0x87, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x68, 0x77, 0x77, 0x68, 0x77, 0x77, 0x77,
	0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x68, 0x77, 0x77, 0x77, 0x77, 0x77, 0x67, 0x87,
	0x68, 0x77, 0x77, 0x77, 0x68, 0x77, 0x68, 0x63, 0x86, 0x7A, 0x87, 0x77, 0x77, 0x87, 0x76, 0x87, 0x77, 0x77, 0x77, 0x77,
	0x77, 0x77, 0x77, 0x77, 0x77, 0x76, 0x86, 0x77, 0x86, 0x86, 0x86, 0x86, 0x87, 0x76, 0x86, 0x87, 0x67, 0x74, 0xA7, 0x86,
	0x36, 0x88, 0x78, 0x76, 0x87, 0x76, 0x96, 0x87, 0x77, 0x84, 0xA6, 0x86, 0x87, 0x76, 0x92, 0xB5, 0x94, 0xA6, 0x96, 0x85,
	0x78, 0x75, 0x96, 0x86, 0x86, 0x75, 0xA7, 0x67, 0x87, 0x85, 0x87, 0x85, 0x95, 0x77, 0x77, 0x85, 0xA3, 0xA7, 0x93, 0x87,
	0x86, 0x94, 0x85, 0xA8, 0x67, 0x85, 0xA5, 0x95, 0x86, 0x68, 0x67, 0x77, 0x96, 0x78, 0x75, 0x86, 0x77, 0xA5, 0x67, 0x87,
	0x85, 0xA6, 0x75, 0x96, 0x85, 0x87, 0x95, 0x95, 0x87, 0x86, 0x94, 0xA5, 0x86, 0x85, 0x87, 0x86, 0x86, 0x86, 0x86, 0x77,
	0x67, 0x76, 0x66, 0x9A, 0x75, 0xA5, 0x94, 0x97, 0x76, 0x96, 0x76, 0x95, 0x86, 0x77, 0x86, 0x87, 0x75, 0xA5, 0x96, 0x85,
	0x86, 0x96, 0x86, 0x86, 0x85, 0x96, 0x86, 0x76, 0x95, 0x86, 0x95, 0x95, 0x95, 0x87, 0x76, 0x87, 0x76, 0x96, 0x85, 0x78,
	0x75, 0xA6, 0x85, 0x86, 0x95, 0x86, 0x95, 0x86, 0x45, 0x69, 0x78, 0x77, 0x87, 0x67, 0x69, 0x58, 0x79, 0x68, 0x78, 0x87,
	0x78, 0x66, 0x88, 0x68, 0x68, 0x77, 0x76, 0x87, 0x68, 0x68, 0x69, 0x58, 0x5A, 0x4B, 0x76, 0x88, 0x69, 0x67, 0xA7, 0x70,
	0x9F, 0x90, 0xA4, 0x84, 0x77, 0x77, 0x77, 0x89, 0x17, 0x77, 0x7B, 0xA7, 0x86, 0x87, 0x77, 0x68, 0x68, 0x69, 0x67, 0x78,
	0x77, 0x78, 0x76, 0x87, 0x77, 0x76, 0x73, 0xB6, 0x87, 0x96, 0x66, 0x87, 0x76, 0x85, 0x87, 0x78, 0x77, 0x77, 0x86, 0x77,
	0x86, 0x78, 0x66, 0x76, 0x77, 0x87, 0x86, 0x78, 0x76, 0x76, 0x86, 0xA5, 0x67, 0x97, 0x77, 0x87, 0x87, 0x76, 0x66, 0x59,
	0x67, 0x59, 0x77, 0x6A, 0x65, 0x86, 0x78, 0x94, 0x77, 0x88, 0x77, 0x78, 0x86, 0x86, 0x76, 0x88, 0x76, 0x87, 0x67, 0x87,
	0x77, 0x77, 0x76, 0x87, 0x86, 0x77, 0x77, 0x77, 0x86, 0x86, 0x76, 0x96, 0x77, 0x77, 0x76, 0x78, 0x86, 0x86, 0x86, 0x95,
	0x86, 0x96, 0x85, 0x95, 0x86, 0x87, 0x75, 0x88, 0x77, 0x87, 0x57, 0x78, 0x76, 0x86, 0x76, 0x96, 0x86, 0x87, 0x76, 0x87,
	0x86, 0x76, 0x77, 0x86, 0x78, 0x78, 0x57, 0x87, 0x86, 0x76, 0x85, 0xA5, 0x87, 0x76, 0x86, 0x86, 0x85, 0x86, 0x53, 0x98,
	0x78, 0x78, 0x77, 0x87, 0x79, 0x67, 0x79, 0x85, 0x87, 0x69, 0x67, 0x68, 0x78, 0x69, 0x68, 0x69, 0x58, 0x87, 0x66, 0x97,
	0x68, 0x68, 0x76, 0x85, 0x78, 0x87, 0x67, 0x97, 0x67, 0x74, 0xA2, 0x28, 0x77, 0x78, 0x77, 0x77, 0x78, 0x68, 0x67, 0x78,
	0x77, 0x78, 0x68, 0x68, 0x77, 0x59, 0x67, 0x5A, 0x68, 0x68, 0x68, 0x68, 0x68, 0x68, 0x67, 0x77, 0x78, 0x68, 0x68, 0x78,
	0x59, 0x58, 0x76, 0x77, 0x68, 0x78, 0x68, 0x59, 0x69, 0x58, 0x68, 0x68, 0x67, 0x78, 0x77, 0x78, 0x69, 0x58, 0x68, 0x57,
	0x78, 0x67, 0x78, 0x76, 0x88, 0x58, 0x67, 0x7A, 0x46, 0x88, 0x77, 0x78, 0x68, 0x68, 0x66, 0x78, 0x78, 0x68, 0x68, 0x59,
	0x68, 0x69, 0x68, 0x59, 0x67, 0x78, 0x59, 0x58, 0x69, 0x59, 0x67, 0x68, 0x67, 0x69, 0x69, 0x57, 0x79, 0x68, 0x59, 0x59,
	0x59, 0x68, 0x68, 0x68, 0x58, 0x78, 0x67, 0x59, 0x68, 0x78, 0x59, 0x58, 0x78, 0x58, 0x76, 0x78, 0x68, 0x68, 0x68, 0x69,
	0x59, 0x67, 0x68, 0x69, 0x59, 0x59, 0x58, 0x69, 0x59, 0x59, 0x58, 0x5A, 0x58, 0x68, 0x68, 0x59, 0x58, 0x68, 0x66, 0x47,
	0x88, 0x77, 0x87, 0x77, 0x87, 0x76, 0x87, 0x87, 0x87, 0x77, 0x77, 0x87, 0x67, 0x96, 0x78, 0x76, 0x87, 0x68, 0x77, 0x77,
	0x76, 0x86, 0x96, 0x86, 0x88, 0x77, 0x85, 0x86, 0x8B, 0x76, 0x0A, 0xF9, 0x07, 0x38, 0x57, 0x67, 0x77, 0x78, 0x77, 0x91,
	0x77, 0xD7, 0x77, 0x7A, 0x67, 0x3C, 0x68, 0x68, 0x77, 0x68, 0x78, 0x59, 0x77, 0x68, 0x77, 0x68, 0x76, 0x77, 0x69, 0x68,
	0x68, 0x68, 0x68, 0x67, 0x68, 0x68, 0x77, 0x87, 0x77, 0x67, 0x78, 0x68, 0x67, 0x58, 0x78, 0x68, 0x77, 0x68, 0x78, 0x67,
	0x68, 0x68, 0x67, 0x78, 0x77, 0x77, 0x87, 0x77, 0x76, 0x67, 0x86, 0x85, 0x87, 0x86, 0x97, 0x58, 0x67, 0x79, 0x57, 0x77,
	0x87, 0x77, 0x87, 0x77, 0x76, 0x59, 0x78, 0x77, 0x77, 0x68, 0x77, 0x77, 0x76, 0x78, 0x77, 0x77, 0x77, 0x76, 0x87, 0x77,
	0x77, 0x68, 0x77, 0x77, 0x77, 0x67, 0x78, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x68, 0x77, 0x76, 0x68, 0x87, 0x77,
	0x77, 0x77, 0x77, 0x68, 0x77, 0x68, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x76, 0x78, 0x77, 0x77, 0x76, 0x87, 0x77, 0x77,
	0x67, 0x78, 0x77, 0x77, 0x76, 0x78, 0x67, 0x68, 0x68, 0x29, 0x77, 0x88, 0x78, 0x78, 0x77, 0x68, 0x77, 0x77, 0x77, 0x77,
	0x77, 0x77, 0x77, 0x77, 0x4A, 0x77, 0x4A, 0x74, 0x77, 0x77, 0x68, 0xA4, 0x7A, 0x47, 0x76, 0x86, 0x78, 0x76, 0x7A, 0x4A,
	0x83, 0xB2, 0x87, 0x77, 0x87, 0x76, 0x96, 0x86, 0x96, 0x76, 0x78, 0x87, 0x77, 0x85, 0x87, 0x85, 0x96, 0x65, 0xB5, 0x95,
	0x96, 0x77, 0x77, 0x86, 0x76, 0x86, 0x86, 0x87, 0x86, 0x86, 0x76, 0x96, 0x96, 0x57, 0x77, 0x85, 0x97, 0x85, 0x86, 0xA5,
	0x86, 0x85, 0x87, 0x77, 0x68, 0x78, 0x77, 0x95, 0x86, 0x75, 0x87, 0x76, 0x86, 0x79, 0x68, 0x84, 0x96, 0x76, 0xB3, 0x87,
	0x77, 0x68, 0x86, 0xA5, 0x77, 0x56, 0xB6, 0x68, 0x85, 0x93, 0xB6, 0x95, 0x95, 0x85, 0x95, 0xA5, 0x95, 0x95, 0x69, 0x85,
	0x95, 0x85, 0x86, 0x86, 0x97, 0x84, 0x85, 0xB6, 0x84, 0xA5, 0x95, 0xA4, 0x95, 0x95, 0x95, 0x68, 0x95, 0x66, 0xA6, 0x95,
	0x95, 0x95, 0x86, 0x93, 0xB5, 0x86, 0x77, 0x94, 0x96, 0x95, 0x96, 0x85, 0x68, 0x94, 0x87, 0x95, 0x86, 0x86, 0x93, 0xB4,
	0xA3, 0xB3, 0xA6, 0x86, 0x85, 0x85, 0x96, 0x76, 0x86, 0x64, 0x69, 0x78, 0x68, 0x78, 0x78, 0x77, 0x67, 0x79, 0x68, 0x79,
	0x59, 0x56, 0x87, 0x98, 0x68, 0x78, 0x76, 0x88, 0x68, 0x68, 0x67, 0x76, 0x87, 0x68, 0x78, 0x76, 0x78, 0x77, 0x78, 0xA6,
	0x80, 0xAF, 0x81, 0x38, 0x47, 0x67, 0x77, 0x78, 0x77, 0x89, 0x07, 0x79, 0xB7, 0x87, 0x86, 0x86, 0x87, 0x86, 0x87, 0x76,
	0x78, 0x77, 0x87, 0x66, 0x96, 0x86, 0x86, 0x74, 0xA6, 0x87, 0x86, 0x77, 0x86, 0x77, 0x76, 0x77, 0x77, 0x87, 0x77, 0x77,
	0x77, 0x77, 0x87, 0x65, 0x78, 0x77, 0x78, 0x75, 0x88, 0x85, 0x76, 0x87, 0x95, 0x77, 0x86, 0x87, 0x86, 0x96, 0x85, 0x76,
	0x69, 0x67, 0x59, 0x77, 0x6A, 0x65, 0x86, 0x78, 0x94, 0x77, 0x88, 0x77, 0x78, 0x85, 0x96, 0x65, 0x98, 0x77, 0x87, 0x67,
	0x86, 0x77, 0x87, 0x66, 0x87, 0x86, 0x86, 0x86, 0x77, 0x86, 0x86, 0x76, 0x87, 0x86, 0x77, 0x76, 0x87, 0x77, 0x86, 0x86,
	0x86, 0x87, 0x76, 0x95, 0x86, 0x86, 0x87, 0x65, 0x97, 0x86, 0x87, 0x76, 0x86, 0x86, 0x87, 0x75, 0x88, 0x76, 0x87, 0x76,
	0x87, 0x76, 0x77, 0x77, 0x86, 0x78, 0x76, 0x76, 0x96, 0x78, 0x76, 0x77, 0x86, 0x77, 0x77, 0x76, 0x96, 0x75, 0x95, 0x56,
	0x87, 0x87, 0x87, 0x78, 0x88, 0x67, 0x87, 0x87, 0x58, 0x87, 0x77, 0x87, 0x77, 0x76, 0x87, 0x96, 0x59, 0x88, 0x37, 0x89,
	0x69, 0x69, 0x84, 0x96, 0x67, 0x77, 0x57, 0x4B, 0x58, 0xB7, 0x80, 0x8E, 0x0D, 0x78, 0x87, 0x77, 0x87, 0x68, 0x79, 0x49,
	0x76, 0x78, 0x77, 0x5A, 0x67, 0x69, 0x68, 0x68, 0x68, 0x4A, 0x68, 0x69, 0x67, 0x69, 0x59, 0x58, 0x68, 0x67, 0x69, 0x77,
	0x77, 0x69, 0x68, 0x68, 0x66, 0x68, 0x87, 0x68, 0x77, 0x5A, 0x68, 0x67, 0x68, 0x68, 0x67, 0x78, 0x78, 0x67, 0x6A, 0x59,
	0x67, 0x57, 0x95, 0x78, 0x77, 0x86, 0x88, 0x57, 0x77, 0x68, 0x67, 0x79, 0x76, 0x76, 0x98, 0x68, 0x75, 0x68, 0x88, 0x58,
	0x87, 0x5A, 0x57, 0x79, 0x67, 0x59, 0x78, 0x49, 0x58, 0x77, 0x79, 0x49, 0x68, 0x59, 0x77, 0x68, 0x78, 0x48, 0x79, 0x67,
	0x68, 0x59, 0x68, 0x68, 0x59, 0x75, 0x6A, 0x68, 0x76, 0x4C, 0x67, 0x77, 0x78, 0x59, 0x69, 0x56, 0x96, 0x68, 0x68, 0x68,
	0x77, 0x69, 0x67, 0x68, 0x67, 0x78, 0x69, 0x68, 0x58, 0x59, 0x68, 0x68, 0x69, 0x49, 0x77, 0x59, 0x67, 0x69, 0x67, 0x68,
	0x65, 0x48, 0x77, 0x87, 0x86, 0x96, 0x88, 0x75, 0x87, 0x96, 0x87, 0x95, 0x87, 0x77, 0x68, 0x86, 0x77, 0x77, 0x96, 0x68,
	0x86, 0x77, 0x85, 0x5A, 0x81, 0xD5, 0x95, 0x68, 0x99, 0x74, 0x98, 0x77, 0x09, 0xF9, 0x0A, 0x5A, 0x66, 0x58, 0x77, 0x87,
	0x91, 0x77, 0x77, 0xE9, 0x77, 0x77, 0x77, 0x76, 0x87, 0x75, 0x97, 0x77, 0x77, 0x77, 0x78, 0x68, 0x68, 0x68, 0x67, 0x3B,
	0x59, 0x77, 0x77, 0x57, 0x79, 0x57, 0x86, 0x87, 0x67, 0x97, 0x77, 0x57, 0x79, 0x77, 0x77, 0x75, 0x95, 0x77, 0x79, 0x75,
	0x97, 0x57, 0x77, 0x79, 0x58, 0x69, 0x77, 0x77, 0x77, 0x77, 0x77, 0x75, 0x86, 0x77, 0x87, 0x58, 0x95, 0x78, 0x65, 0x8A,
	0x39, 0x58, 0x87, 0x96, 0x87, 0x77, 0x77, 0x77, 0x86, 0x87, 0x76, 0x78, 0x77, 0x77, 0x77, 0x68, 0x77, 0x77, 0x77, 0x77,
	0x77, 0x68, 0x77, 0x68, 0x77, 0x67, 0x86, 0x77, 0x78, 0x77, 0x77, 0x77, 0x77, 0x77, 0x68, 0x77, 0x77, 0x77, 0x77, 0x68,
	0x77, 0x68, 0x77, 0x67, 0x78, 0x77, 0x77, 0x68, 0x68, 0x76, 0x87, 0x68, 0x77, 0x77, 0x77, 0x68, 0x77, 0x77, 0x77, 0x77,
	0x77, 0x77, 0x77, 0x68, 0x77, 0x77, 0x77, 0x68, 0x68, 0x68, 0x76, 0x38, 0x97, 0x67, 0x79, 0x77, 0x77, 0x77, 0x77, 0x77,
	0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x78, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x68,
	0x72, 0xC5, 0x86, 0x86, 0x98, 0x77, 0x86, 0x78, 0x1C, 0x85, 0x2E, 0x77, 0x77, 0x77, 0x87, 0x86, 0x76, 0x86, 0x86, 0xA0,
	0xBD, 0x49, 0x97, 0x66, 0x48, 0x88, 0x48, 0x68, 0x86, 0x78, 0x77, 0x77, 0x78, 0x66, 0xA6, 0x87, 0x83, 0x85, 0x88, 0x78,
	0x66, 0xA7, 0x56, 0x87, 0x6A, 0x46, 0x89, 0x76, 0xA7, 0x76, 0x87, 0x74, 0xA2, 0x86, 0x77, 0x79, 0x66, 0xB6, 0x48, 0x67,
	0x8A, 0x36, 0x88, 0x77, 0xA5, 0xA5, 0xB1, 0xE9, 0x39, 0x78, 0x78, 0x75, 0x87, 0x77, 0x77, 0x77, 0x68, 0x58, 0x79, 0x69,
	0x4A, 0x59, 0x29, 0x6A, 0x3C, 0x3B, 0x46, 0x78, 0x75, 0x89, 0x76, 0x89, 0x4A, 0x56, 0x88, 0x3B, 0x66, 0x88, 0x68, 0x87,
	0x57, 0x97, 0x38, 0x87, 0x56, 0xB7, 0x84, 0x88, 0x67, 0x57, 0x95, 0xA8, 0x59, 0x77, 0x68, 0x4A, 0x49, 0x69, 0x57, 0x6A,
	0x59, 0x58, 0x67, 0x87, 0x5A, 0x75, 0x78, 0x69, 0x56, 0x97, 0x77, 0x73, 0x08, 0x78, 0x78, 0x77, 0x87, 0x78, 0x77, 0x78,
	0x77, 0x77, 0x87, 0x78, 0x68, 0x77, 0x77, 0x87, 0x78, 0x76, 0x86, 0x97, 0x58, 0x77, 0x78, 0x58, 0x78, 0x77, 0x68, 0x78,
	0x75, 0x95, 0xB7, 0x70, 0x8F, 0x80, 0xA6, 0x87, 0x65, 0x66, 0x78, 0x7A, 0x17, 0x77, 0x70,
}
