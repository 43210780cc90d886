// Copyright (c) the stuffit authors
// Licensed under the MIT license

// Package sit14 implements StuffIt compression method 14, informally
// "Installer": a block-structured stream, each block carrying its own
// literal/length and distance Huffman trees (themselves sometimes
// Huffman-coded), decoded against a 256KiB sliding window. This ports
// the decompress14/readTree14/update14 routines of the StuffIt reader
// this module is grounded on, adapted from C pointer/array idioms to Go
// slices and explicit indices, the same way the teacher's
// internal/sit/sit14.go sketches this exact algorithm as commented
// pseudocode ported from the XAD library.
package sit14

import (
	"errors"
	"fmt"

	"github.com/gomacstuff/stuffit/internal/bitstream"
)

// ErrDecode reports a malformed method-14 stream.
var ErrDecode = errors.New("sit14: corrupt Installer stream")

const (
	windowSize = 0x40000
	windowMask = windowSize - 1

	literalAlphabet = 308 // 0x100 literal bytes + 52 length classes
	literalTableLen = 2 * literalAlphabet

	distAlphabet = 75
	distTableLen = 2 * distAlphabet
)

// data holds the scratch buffers readTree14's canonical-code construction
// needs, sized for the larger of the two trees each block carries. A
// nested (nested-tree) call to readTree14 reuses the same backing arrays
// for its own, much smaller tree: by the time the outer call resumes
// using them for its own canonical sort, the nested call's use of them
// is long finished, mirroring the reference decoder's own reuse of one
// scratch struct across both calls.
type data struct {
	code, codecopy [literalAlphabet]byte
	freq           [literalAlphabet]uint16
	buff           [literalAlphabet]uint32

	litTree  [literalTableLen]uint16
	distTree [distTableLen]uint16

	lengthExtraBits [52]uint8
	lengthBase      [52]uint16

	distExtraBits [distAlphabet]uint8
	distBase      [distAlphabet]uint32

	window [windowSize]byte
}

func newData() *data {
	d := &data{}
	var k uint32
	for i := range d.lengthBase {
		d.lengthBase[i] = uint16(k)
		if i >= 4 {
			d.lengthExtraBits[i] = uint8((i - 4) >> 2)
		}
		k += 1 << d.lengthExtraBits[i]
	}
	k = 1
	for i := range d.distBase {
		d.distBase[i] = k
		if i >= 3 {
			d.distExtraBits[i] = uint8((i - 3) >> 2)
		}
		k += 1 << d.distExtraBits[i]
	}
	return d
}

// update14 is a hand-rolled quicksort over the parallel code/freq arrays
// in [first,last), ordering by ascending code length; freq tracks each
// element's original symbol index through the reordering so the caller
// can recover which symbol each sorted position belonged to.
func update14(first, last int, code []byte, freq []uint16) {
	for last-first > 1 {
		i, j := first, last
		for {
			for {
				i++
				if !(i < last && code[first] > code[i]) {
					break
				}
			}
			for {
				j--
				if !(j > first && code[first] < code[j]) {
					break
				}
			}
			if j > i {
				code[i], code[j] = code[j], code[i]
				freq[i], freq[j] = freq[j], freq[i]
			}
			if j <= i {
				break
			}
		}
		if first != j {
			code[first], code[j] = code[j], code[first]
			freq[first], freq[j] = freq[j], freq[first]
			i = j + 1
			if last-i <= j-first {
				update14(i, last, code, freq)
				last = j
			} else {
				update14(first, j, code, freq)
				first = i
			}
		} else {
			first++
		}
	}
}

// walkLeaf descends a flat binary traversal table one bit at a time
// starting from node 0, consuming bits from br, until it reaches a leaf
// (a value >= size<<1); it returns the leaf's 0-based index.
func walkLeaf(br *bitstream.Reader, table []uint16, size uint32) (uint32, error) {
	threshold := size << 1
	l := uint32(0)
	for {
		bit, err := br.GetBit()
		if err != nil {
			return 0, err
		}
		l = uint32(table[l+bit])
		if l >= threshold {
			return l - threshold, nil
		}
	}
}

// readTree14 decodes the shape of one Huffman tree of codesize symbols
// from the bitstream into result, a flat binary traversal table of
// 2*codesize entries: result[2n] and result[2n+1] are node n's two
// children, and a value >= 2*codesize encodes a leaf (value - 2*codesize
// is the symbol).
func readTree14(br *bitstream.Reader, dat *data, codesize int, result []uint16) error {
	embeddedBit, err := br.GetBit()
	if err != nil {
		return err
	}
	jv, err := br.GetBits(2)
	if err != nil {
		return err
	}
	exp := jv + 2
	ov, err := br.GetBits(3)
	if err != nil {
		return err
	}
	offset := ov + 1

	size := uint32(1) << exp
	maxVal := size - 1

	var special uint32
	if embeddedBit != 0 {
		special = maxVal - 1
	} else {
		special = 0xFFFFFFFF
	}

	modeBits, err := br.GetBits(2)
	if err != nil {
		return err
	}

	code := dat.code[:codesize]

	if modeBits&1 != 0 {
		// The run-length alphabet for this tree is itself Huffman-coded by
		// a small embedded tree of `size` symbols, built recursively into
		// dat.freq before any of codesize's codes can be read.
		if err := readTree14(br, dat, int(size), dat.freq[:2*size]); err != nil {
			return err
		}
		for i := 0; i < codesize; {
			l, err := walkLeaf(br, dat.freq[:], size)
			if err != nil {
				return err
			}
			switch {
			case l == special:
				code[i] = 0
				i++
			case l == maxVal:
				rep, err := walkLeaf(br, dat.freq[:], size)
				if err != nil {
					return err
				}
				rep += 3
				if i == 0 || int(rep) > codesize-i {
					return fmt.Errorf("sit14: repeat run overruns tree: %w", ErrDecode)
				}
				for ; rep > 0; rep-- {
					code[i] = code[i-1]
					i++
				}
			default:
				code[i] = byte(l + offset)
				i++
			}
		}
	} else {
		for i := 0; i < codesize; {
			l, err := br.GetBits(int(exp))
			if err != nil {
				return err
			}
			switch {
			case uint32(l) == special:
				code[i] = 0
				i++
			case uint32(l) == maxVal:
				rep, err := br.GetBits(int(exp))
				if err != nil {
					return err
				}
				rep += 3
				if i == 0 || int(rep) > codesize-i {
					return fmt.Errorf("sit14: repeat run overruns tree: %w", ErrDecode)
				}
				for ; rep > 0; rep-- {
					code[i] = code[i-1]
					i++
				}
			default:
				code[i] = byte(uint32(l) + offset)
				i++
			}
		}
	}

	codecopy := dat.codecopy[:codesize]
	freq := dat.freq[:codesize]
	copy(codecopy, code)
	for i := range freq {
		freq[i] = uint16(i)
	}
	update14(0, codesize, codecopy, freq)

	i := 0
	for i < codesize && codecopy[i] == 0 {
		i++
	}

	buff := dat.buff[:codesize]
	for j := uint32(0); i < codesize; i, j = i+1, j+1 {
		if i > 0 {
			j <<= codecopy[i] - codecopy[i-1]
		}
		k := codecopy[i]
		var m uint32
		l := j
		for ; k > 0; k-- {
			m = (m << 1) | (l & 1)
			l >>= 1
		}
		buff[freq[i]] = m
	}

	for i := range result {
		result[i] = 0
	}

	next := uint16(2)
	for i := 0; i < codesize; i++ {
		var l uint32
		m := buff[i]
		for k := 0; k < int(code[i]); k++ {
			l += m & 1
			if int(code[i])-1 <= k {
				result[l] = uint16(2*codesize + i)
			} else {
				if result[l] == 0 {
					result[l] = next
					next += 2
				}
				l = uint32(result[l])
			}
			m >>= 1
		}
	}

	br.AlignToByte()
	return nil
}

// Decode decompresses a method-14 stream read from br into a buffer of
// exactly outSize bytes.
func Decode(br *bitstream.Reader, outSize uint32) ([]byte, error) {
	dat := newData()
	out := make([]byte, outSize)
	opos := 0
	wpos := 0

	emit := func(b byte) {
		if opos < len(out) {
			out[opos] = b
			opos++
		}
		dat.window[wpos] = b
		wpos = (wpos + 1) & windowMask
	}

	numBlocks, err := br.GetBits(16)
	if err != nil {
		return nil, err
	}

	for ; numBlocks > 0 && !br.EOF(); numBlocks-- {
		if _, err := br.GetBits(16); err != nil { // crunched block size, discarded
			return nil, err
		}
		if _, err := br.GetBits(16); err != nil {
			return nil, err
		}
		lo, err := br.GetBits(16)
		if err != nil {
			return nil, err
		}
		hi, err := br.GetBits(16)
		if err != nil {
			return nil, err
		}
		remaining := lo | hi<<16

		if err := readTree14(br, dat, literalAlphabet, dat.litTree[:]); err != nil {
			return nil, err
		}
		if err := readTree14(br, dat, distAlphabet, dat.distTree[:]); err != nil {
			return nil, err
		}

		for remaining > 0 && !br.EOF() {
			sym, err := walkLeaf(br, dat.litTree[:], literalAlphabet)
			if err != nil {
				return nil, err
			}
			if sym < 0x100 {
				emit(byte(sym))
				remaining--
				continue
			}

			class := sym - 0x100
			if int(class) >= len(dat.lengthBase) {
				return nil, fmt.Errorf("sit14: length class %d out of range: %w", class, ErrDecode)
			}
			length := uint32(dat.lengthBase[class]) + 4
			if extra := dat.lengthExtraBits[class]; extra != 0 {
				v, err := br.GetBits(int(extra))
				if err != nil {
					return nil, err
				}
				length += v
			}

			distSym, err := walkLeaf(br, dat.distTree[:], distAlphabet)
			if err != nil {
				return nil, err
			}
			if int(distSym) >= len(dat.distBase) {
				return nil, fmt.Errorf("sit14: distance class %d out of range: %w", distSym, ErrDecode)
			}
			dist := dat.distBase[distSym]
			if extra := dat.distExtraBits[distSym]; extra != 0 {
				v, err := br.GetBits(int(extra))
				if err != nil {
					return nil, err
				}
				dist += v
			}

			if length > remaining {
				return nil, fmt.Errorf("sit14: match length exceeds remaining block bytes: %w", ErrDecode)
			}
			remaining -= length

			pos := (uint32(wpos) + windowSize - dist) & windowMask
			for ; length > 0; length-- {
				b := dat.window[pos]
				pos = (pos + 1) & windowMask
				emit(b)
			}
		}
		if remaining > 0 {
			return nil, fmt.Errorf("sit14: truncated stream: %w", ErrDecode)
		}

		br.AlignToByte()
	}

	return out, nil
}
