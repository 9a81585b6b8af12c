package rng

import (
	"github.com/BTBurke/prng/pkg/entropy"
)

const (
	tinymtMat1 = 0x8f7011ee
	tinymtMat2 = 0xfc78ff1f
	tinymtTmat = 0x3793fdff

	tinymtSH0  = 1
	tinymtSH1  = 10
	tinymtSH8  = 8
	tinymtMask = 0x7fffffff

	minLoop = 8
	preLoop = 8

	// number of 64-bit entropy blocks consumed by SeedFrom
	entropySeedWords = 4
)

// TinyMT32 is the 127-bit state member of the Mersenne Twister family.  The
// tuning parameters are fixed when the generator is built; only the four
// status words change.
type TinyMT32 struct {
	status [4]uint32
	mat1   uint32
	mat2   uint32
	tmat   uint32
}

// NewTinyMT32 returns a generator with the standard parameter set and the
// period certified default status.  It is usable immediately but every
// unseeded instance yields the same stream.
func NewTinyMT32() *TinyMT32 {
	t := &TinyMT32{
		mat1: tinymtMat1,
		mat2: tinymtMat2,
		tmat: tinymtTmat,
	}
	t.certify()
	return t
}

// Algorithm returns TinyMT
func (t *TinyMT32) Algorithm() Algorithm {
	return TinyMT
}

// SetSeed deterministically reinitializes the status from a single integer
func (t *TinyMT32) SetSeed(seed uint32) {
	t.status = [4]uint32{seed, t.mat1, t.mat2, t.tmat}
	for i := uint32(1); i < minLoop; i++ {
		prev := t.status[(i-1)&3]
		t.status[i&3] ^= i + 1812433253*(prev^(prev>>30))
	}
	t.certify()
	for i := 0; i < preLoop; i++ {
		t.nextState()
	}
}

// SetSeedByArray deterministically reinitializes the status from a key of any
// length, including zero.  A one word key does not reproduce SetSeed with the
// same word; the two initializations are unrelated.
func (t *TinyMT32) SetSeedByArray(key []uint32) {
	const (
		lag  = 1
		mid  = 1
		size = 4
	)
	st := &t.status
	st[0], st[1], st[2], st[3] = 0, t.mat1, t.mat2, t.tmat

	count := minLoop
	if len(key)+1 > minLoop {
		count = len(key) + 1
	}

	r := iniFunc1(st[0] ^ st[mid%size] ^ st[(size-1)%size])
	st[mid%size] += r
	r += uint32(len(key))
	st[(mid+lag)%size] += r
	st[0] = r
	count--

	i, j := 1, 0
	for ; j < count && j < len(key); j++ {
		r = iniFunc1(st[i%size] ^ st[(i+mid)%size] ^ st[(i+size-1)%size])
		st[(i+mid)%size] += r
		r += key[j] + uint32(i)
		st[(i+mid+lag)%size] += r
		st[i] = r
		i = (i + 1) % size
	}
	for ; j < count; j++ {
		r = iniFunc1(st[i%size] ^ st[(i+mid)%size] ^ st[(i+size-1)%size])
		st[(i+mid)%size] += r
		r += uint32(i)
		st[(i+mid+lag)%size] += r
		st[i] = r
		i = (i + 1) % size
	}
	for j = 0; j < size; j++ {
		r = iniFunc2(st[i%size] + st[(i+mid)%size] + st[(i+size-1)%size])
		st[(i+mid)%size] ^= r
		r -= uint32(i)
		st[(i+mid+lag)%size] ^= r
		st[i] = r
		i = (i + 1) % size
	}

	t.certify()
	for k := 0; k < preLoop; k++ {
		t.nextState()
	}
}

// Seed treats a seed of 0 as a request for entropy, otherwise it is SetSeed(seed)
func (t *TinyMT32) Seed(seed uint32, src entropy.Provider) error {
	if seed == 0 {
		return t.SeedFrom(src)
	}
	t.SetSeed(seed)
	return nil
}

// SeedFrom seeds by array from four words of entropy.  A nil provider uses
// entropy.Default.
func (t *TinyMT32) SeedFrom(src entropy.Provider) error {
	key, err := RandomSeed(src, entropySeedWords)
	if err != nil {
		return err
	}
	t.SetSeedByArray(key)
	return nil
}

// RandomSeed draws length 64-bit blocks of entropy and keeps the low 32 bits of
// each, for use with SetSeedByArray
func RandomSeed(src entropy.Provider, length int) ([]uint32, error) {
	blocks, err := entropy.Uint64s(provider(src), length)
	if err != nil {
		return nil, err
	}
	key := make([]uint32, len(blocks))
	for i, b := range blocks {
		key[i] = uint32(b)
	}
	return key, nil
}

// Uint32 advances the status and returns the tempered output
func (t *TinyMT32) Uint32() uint32 {
	t.nextState()
	return t.temper()
}

// Float64 advances the status and returns the tempered output scaled by 2^-32,
// a value in [0, 1)
func (t *TinyMT32) Float64() float64 {
	t.nextState()
	return float64(t.temper()) * (1.0 / 4294967296.0)
}

func (t *TinyMT32) nextState() {
	y := t.status[3]
	x := (t.status[0] & tinymtMask) ^ t.status[1] ^ t.status[2]
	x ^= x << tinymtSH0
	y ^= (y >> tinymtSH0) ^ x
	t.status[0] = t.status[1]
	t.status[1] = t.status[2]
	t.status[2] = x ^ (y << tinymtSH1)
	t.status[3] = y
	mask := -(y & 1)
	t.status[1] ^= mask & t.mat1
	t.status[2] ^= mask & t.mat2
}

func (t *TinyMT32) temper() uint32 {
	t0 := t.status[3]
	t1 := t.status[0] + (t.status[2] >> tinymtSH8)
	t0 ^= t1
	if t1&1 != 0 {
		t0 ^= t.tmat
	}
	return t0
}

// certify replaces an all zero status, which would never leave zero, with "TINY"
func (t *TinyMT32) certify() {
	if t.status[0]&tinymtMask == 0 && t.status[1] == 0 && t.status[2] == 0 && t.status[3] == 0 {
		t.status = [4]uint32{'T', 'I', 'N', 'Y'}
	}
}

func iniFunc1(x uint32) uint32 {
	return (x ^ (x >> 27)) * 1664525
}

func iniFunc2(x uint32) uint32 {
	return (x ^ (x >> 27)) * 1566083941
}

// between reproduces the floating point scaling of the reference binding.  It
// is not bias free; the error grows with span.  Sums that round up past the
// top of the range near 2^32 are held at the top.
func (t *TinyMT32) between(min uint32, span uint64) uint32 {
	f := float64(span)*t.Float64() + float64(min)
	if f >= float64(uint64(min)+span) {
		return uint32(uint64(min) + span - 1)
	}
	return uint32(f)
}

func (t *TinyMT32) rangeUnit() float64 {
	return t.Float64()
}

func (t *TinyMT32) dieBase() int {
	return 1
}
