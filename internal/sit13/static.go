// Copyright (c) the stuffit authors
// Licensed under the MIT license

package sit13

// staticTextSize is the total number of code-length bytes the static blob
// decodes to: two literal/length tables of literalAlphabet entries each,
// plus up to 16 bytes of distance-class lengths.
const staticTextSize = 2*literalAlphabet + 16

// initStaticInfo delta-decodes static mode (1..5) into a flat buffer of
// code-length bytes: [0:literalAlphabet) is bufferA's lengths,
// [literalAlphabet:2*literalAlphabet) is bufferB's, and the remainder
// holds the mode's distance-class lengths.
//
// Each nibble of the packed source is read alternating low/high within a
// byte, starting high or low depending on the parity of mode. A nibble of
// 0 means "subtract the following nibble from the running length", 15
// means "add the following nibble", and anything else contributes
// (nibble - 7) directly. The running length wraps as a plain byte, which
// is deliberate: lengths that wrap negative (reinterpreted as int8 by the
// canonical-code builder) mark unused symbols, the static-table
// equivalent of a zero-length code.
func initStaticInfo(mode int) [staticTextSize]byte {
	var textBuf [staticTextSize]byte

	blob := staticBlob[staticPos[mode-1]:]
	bi := 0
	high := mode&1 != 0

	nextNibble := func() byte {
		var v byte
		if high {
			v = blob[bi] >> 4
		} else {
			v = blob[bi] & 0xF
			bi++
		}
		high = !high
		return v
	}

	var l uint8
	for i := range textBuf {
		k := nextNibble()
		switch k {
		case 0:
			l -= nextNibble()
		case 15:
			l += nextNibble()
		default:
			l += k - 7
		}
		textBuf[i] = l
	}
	return textBuf
}
