package bitvec

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Bytes packs v into a big-endian byte slice: v[0] becomes the high bit of
// the first byte. When the width is not a multiple of 8, the low bits of the
// final byte are zero padding.
func Bytes(v BitVector) ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, (len(v)+7)/8)
	for i, bit := range v {
		if bit == 1 {
			out[i/8] |= 1 << (7 - i%8)
		}
	}
	return out, nil
}

// FromBytes unpacks a big-endian byte slice produced by Bytes into a
// BitVector of width n. The payload must be exactly (n+7)/8 bytes and any
// padding bits in the final byte must be zero.
func FromBytes(data []byte, n int) (BitVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative width %d", n)
	}
	if expected := (n + 7) / 8; len(data) != expected {
		return nil, fmt.Errorf("payload is %d bytes, want %d for %d bits", len(data), expected, n)
	}
	if n%8 != 0 {
		if pad := data[len(data)-1] & byte(1<<(8-n%8)-1); pad != 0 {
			return nil, fmt.Errorf("nonzero padding bits 0b%b in final byte", pad)
		}
	}
	v := make(BitVector, n)
	for i := range v {
		v[i] = Bit(data[i/8] >> (7 - i%8) & 1)
	}
	return v, nil
}

// ToBitSet converts v into a bitset whose set members are the sequence
// positions holding a 1 (position 0 is the most significant bit). The width
// is not carried by the bitset; pass it back to FromBitSet.
func ToBitSet(v BitVector) (*bitset.BitSet, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	bs := bitset.New(uint(len(v)))
	for i, bit := range v {
		if bit == 1 {
			bs.Set(uint(i))
		}
	}
	return bs, nil
}

// FromBitSet converts the first n positions of bs into a BitVector, using
// the same position convention as ToBitSet.
func FromBitSet(bs *bitset.BitSet, n int) (BitVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative width %d", n)
	}
	v := make(BitVector, n)
	for i := range v {
		if bs.Test(uint(i)) {
			v[i] = 1
		}
	}
	return v, nil
}

// ToRoaring converts v into a roaring bitmap of the sequence positions
// holding a 1, for sparse interop with wide vectors. Widths above
// math.MaxUint32 are rejected.
func ToRoaring(v BitVector) (*roaring.Bitmap, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if uint64(len(v)) > math.MaxUint32 {
		return nil, fmt.Errorf("width %d exceeds roaring position space", len(v))
	}
	rb := roaring.New()
	for i, bit := range v {
		if bit == 1 {
			rb.Add(uint32(i))
		}
	}
	return rb, nil
}

// FromRoaring converts the first n positions of rb into a BitVector, using
// the same position convention as ToRoaring.
func FromRoaring(rb *roaring.Bitmap, n int) (BitVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative width %d", n)
	}
	if uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("width %d exceeds roaring position space", n)
	}
	v := make(BitVector, n)
	it := rb.Iterator()
	for it.HasNext() {
		pos := it.Next()
		if int(pos) >= n {
			break
		}
		v[pos] = 1
	}
	return v, nil
}
