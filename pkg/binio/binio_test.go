package binio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/graph-guard/arraycoll/pkg/binio"
	"github.com/graph-guard/arraycoll/pkg/container/arraymap"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	require.Equal(t, 1, binio.Size[int8]())
	require.Equal(t, 2, binio.Size[uint16]())
	require.Equal(t, 4, binio.Size[float32]())
	require.Equal(t, 8, binio.Size[int64]())
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, binio.Write(&b, []int16{1, -2, 0x0102}))
	require.Equal(t, []byte{0x01, 0x00, 0xfe, 0xff, 0x02, 0x01}, b.Bytes())
}

func TestReadAll(t *testing.T) {
	var b bytes.Buffer
	in := []float64{1.5, -2.25, 0, 1e300}
	require.NoError(t, binio.Write(&b, in))
	out, err := binio.ReadAll[float64](&b)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestReadAllTruncated(t *testing.T) {
	_, err := binio.ReadAll[int32](bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRead(t *testing.T) {
	for _, td := range []struct {
		name      string
		input     []byte
		bufLen    int
		expect    []uint16
		expectErr error
	}{
		{
			name:   "full",
			input:  []byte{1, 0, 2, 0},
			bufLen: 2,
			expect: []uint16{1, 2},
		},
		{
			name:   "short_on_boundary",
			input:  []byte{1, 0},
			bufLen: 3,
			expect: []uint16{1},
		},
		{
			name:      "short_mid_element",
			input:     []byte{1, 0, 2},
			bufLen:    3,
			expect:    []uint16{1},
			expectErr: io.ErrUnexpectedEOF,
		},
		{
			name:      "empty",
			input:     []byte{},
			bufLen:    2,
			expect:    []uint16{},
			expectErr: io.EOF,
		},
	} {
		t.Run(td.name, func(t *testing.T) {
			s := make([]uint16, td.bufLen)
			n, err := binio.Read(bytes.NewReader(td.input), s)
			if td.expectErr != nil {
				require.ErrorIs(t, err, td.expectErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, td.expect, s[:n])
		})
	}
}

func TestMapRoundTrip(t *testing.T) {
	m := arraymap.New[int32, float64](16)
	m.Put(3, 0.5)
	m.Put(-1, 2)
	m.Put(7, -8)

	var b bytes.Buffer
	require.NoError(t, binio.WriteMap(&b, m))
	require.Equal(t, 8+3*(4+8), b.Len())

	d, err := binio.ReadMap[int32, float64](&b)
	require.NoError(t, err)
	require.Equal(t, 3, d.Cap())
	require.Equal(t, []int32{3, -1, 7}, d.KeySet().Slice())
	require.Equal(t, []float64{0.5, 2, -8}, d.Values().Slice())
}

func TestMapEmpty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, binio.WriteMap(&b, arraymap.New[int8, int8](4)))
	require.Equal(t, make([]byte, 8), b.Bytes())

	d, err := binio.ReadMap[int8, int8](&b)
	require.NoError(t, err)
	require.True(t, d.IsEmpty())
}

func TestReadMapTruncated(t *testing.T) {
	m := arraymap.New[uint32, uint32](2)
	m.Put(1, 1)
	m.Put(2, 2)
	var b bytes.Buffer
	require.NoError(t, binio.WriteMap(&b, m))

	for _, l := range []int{0, 4, 8, 10, 12, 20} {
		_, err := binio.ReadMap[uint32, uint32](bytes.NewReader(b.Bytes()[:l]))
		require.Error(t, err, "length: %d", l)
	}

	// A corrupt length must not cause a huge allocation
	corrupt := append([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, b.Bytes()[8:]...)
	_, err := binio.ReadMap[uint32, uint32](bytes.NewReader(corrupt))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
