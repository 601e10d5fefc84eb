package grid

import (
	"iter"
	"math/bits"
)

// Bits is a boolean grid packed 64 cells per machine word, so an
// 8192-cell mask occupies 128 words instead of 8192 bytes. It is
// fixed-size after construction; see Resize.
type Bits struct {
	rect  Rect
	words []uint64
}

var _ Grid[bool] = (*Bits)(nil)

// NewBits allocates a w-by-h mask with its origin at (0, 0) and every
// cell false.
func NewBits(w, h int) *Bits { return NewBitsRect(R(0, 0, w, h)) }

// NewBitsRect allocates an all-false mask covering r. An empty or
// unrepresentably large r yields an invalid mask with no storage.
func NewBitsRect(r Rect) *Bits {
	area, err := checkArea(r)
	if err != nil || area == 0 {
		return &Bits{}
	}
	return &Bits{rect: r, words: make([]uint64, wordCount(area))}
}

// BitsFrom materializes any boolean grid into a packed copy with the
// same bounds and contents.
func BitsFrom(src Grid[bool]) *Bits {
	b := NewBitsRect(src.Bounds())
	for p, v := range src.All() {
		if v {
			b.Set(p.X, p.Y, true)
		}
	}
	return b
}

// Bounds returns the addressable region.
func (b *Bits) Bounds() Rect { return b.rect }

// Contains reports whether (x, y) lies within the mask.
func (b *Bits) Contains(x, y int) bool { return b.rect.Contains(x, y) }

// Index returns the row-major cell index for (x, y). The word and bit
// split derives from this index, so Bits and Dense agree on layout.
func (b *Bits) Index(x, y int) (int, error) {
	if !b.rect.Contains(x, y) {
		return 0, &BoundsError{x, y, b.rect}
	}
	return b.rect.index(x, y), nil
}

// At reports the bit stored at (x, y).
func (b *Bits) At(x, y int) (bool, error) {
	i, err := b.Index(x, y)
	if err != nil {
		return false, err
	}
	return b.words[wordIndex(i)]&bitMask(i) != 0, nil
}

// Set stores v at (x, y), touching exactly one word.
func (b *Bits) Set(x, y int, v bool) error {
	i, err := b.Index(x, y)
	if err != nil {
		return err
	}
	m := bitMask(i)
	var on uint64
	if v {
		on = m
	}
	b.words[wordIndex(i)] = b.words[wordIndex(i)]&^m | on
	return nil
}

// Fill sets every cell with one word-wide write per word, which is
// the point of packing the mask in the first place.
func (b *Bits) Fill(v bool) {
	var w uint64
	if v {
		w = ^uint64(0)
	}
	for i := range b.words {
		b.words[i] = w
	}
	b.clampTail()
}

// FillWith sets every cell to the result of one gen call per cell in
// row-major order.
func (b *Bits) FillWith(gen func() bool) {
	for y := b.rect.Y; y < b.rect.Bottom(); y++ {
		for x := b.rect.X; x < b.rect.Right(); x++ {
			b.Set(x, y, gen())
		}
	}
}

// All iterates coordinate/value pairs in row-major order.
func (b *Bits) All() iter.Seq2[Point, bool] {
	return func(yield func(Point, bool) bool) {
		area := b.rect.Area()
		for i := 0; i < area; i++ {
			p := Point{b.rect.X + i%b.rect.W, b.rect.Y + i/b.rect.W}
			if !yield(p, b.words[wordIndex(i)]&bitMask(i) != 0) {
				return
			}
		}
	}
}

// Invert flips every cell in place, one complement per word.
func (b *Bits) Invert() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.clampTail()
}

// Count returns the number of true cells.
func (b *Bits) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Valid reports whether backing storage is allocated.
func (b *Bits) Valid() bool { return b.words != nil }

// Clone returns an independent deep copy of the mask.
func (b *Bits) Clone() *Bits {
	if b.words == nil {
		return &Bits{}
	}
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &Bits{rect: b.rect, words: words}
}

// Resize is not supported: a Bits mask is fixed-size after
// construction and this always returns ErrNotImplemented. Callers
// that need different bounds build a new mask, or go through a Dense
// grid via Copy and BitsFrom.
func (b *Bits) Resize(Rect, bool) error { return ErrNotImplemented }

// clampTail zeroes the unused bits of the final word.
func (b *Bits) clampTail() {
	if len(b.words) == 0 {
		return
	}
	b.words[len(b.words)-1] &= tailMask(b.rect.Area())
}

// And returns a mask over the intersection of a and b that is true
// where both operands are true. Disjoint operands yield an empty mask.
func And(a, b Grid[bool]) *Bits {
	return combine(a, b, func(x, y bool) bool { return x && y })
}

// Or returns a mask over the intersection of a and b that is true
// where either operand is true.
func Or(a, b Grid[bool]) *Bits {
	return combine(a, b, func(x, y bool) bool { return x || y })
}

// Xor returns a mask over the intersection of a and b that is true
// where the operands differ.
func Xor(a, b Grid[bool]) *Bits {
	return combine(a, b, func(x, y bool) bool { return x != y })
}

// Not returns the complement of a over a's own bounds.
func Not(a Grid[bool]) *Bits {
	out := BitsFrom(a)
	out.Invert()
	return out
}

// combine evaluates op cell by cell over the intersection of the
// operand bounds. It works through the Grid interface, so the
// operands need not be packed masks themselves.
func combine(a, b Grid[bool], op func(bool, bool) bool) *Bits {
	r := a.Bounds().Intersect(b.Bounds())
	out := NewBitsRect(r)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			av, _ := a.At(x, y)
			bv, _ := b.At(x, y)
			out.Set(x, y, op(av, bv))
		}
	}
	return out
}
