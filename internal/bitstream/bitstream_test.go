// Copyright (c) the stuffit authors
// Licensed under the MIT license

package bitstream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBitsLSBFirst(t *testing.T) {
	// 0b1011_0010 delivered LSB-first is: 0,1,0,0,1,1,0,1
	r := New(bytes.NewReader([]byte{0b1011_0010}))
	for _, want := range []uint32{0, 1, 0, 0, 1, 1, 0, 1} {
		got, err := r.GetBit()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.False(t, r.EOF())
}

func TestGetBitsAssemblesAcrossBytes(t *testing.T) {
	// first byte 0xFF then 0x01: read 12 bits, LSB-first assembly.
	r := New(bytes.NewReader([]byte{0xFF, 0x01}))
	got, err := r.GetBits(12)
	require.NoError(t, err)
	require.Equal(t, uint32(0x1FF), got)
}

func TestPeekDoesNotConsume(t *testing.T) {
	r := New(bytes.NewReader([]byte{0x5A}))
	peeked := r.PeekBits(4)
	got, err := r.GetBits(4)
	require.NoError(t, err)
	require.Equal(t, peeked, got)

	second, err := r.GetBits(4)
	require.NoError(t, err)
	require.NotEqual(t, got, second)
}

func TestAlignToByte(t *testing.T) {
	r := New(bytes.NewReader([]byte{0xFF, 0xAA}))
	_, err := r.GetBits(3)
	require.NoError(t, err)
	r.AlignToByte()
	require.EqualValues(t, 8, r.PosBits())
	got, err := r.GetBits(8)
	require.NoError(t, err)
	require.Equal(t, uint32(0xAA), got)
}

func TestEOFPadsZero(t *testing.T) {
	r := New(bytes.NewReader([]byte{0x01}))
	_, err := r.GetBits(8)
	require.NoError(t, err)
	require.False(t, r.EOF())

	got, err := r.GetBits(8)
	require.NoError(t, err)
	require.Equal(t, uint32(0), got)
	require.True(t, r.EOF())
}
