package grid

// Word-level packing for Bits. A flattened cell index i lives in word
// i>>wordShift at bit i&wordMask. All shift and mask arithmetic stays
// in this file so the public operations never repeat it.

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

// wordCount returns how many words hold area cells.
func wordCount(area int) int {
	n := area >> wordShift
	if area&wordMask != 0 {
		n++
	}
	return n
}

// wordIndex returns the word holding cell index i.
func wordIndex(i int) int { return i >> wordShift }

// bitMask returns the single-bit mask for cell index i within its word.
func bitMask(i int) uint64 { return 1 << (uint(i) & wordMask) }

// tailMask keeps only the bits used by the final word of a grid with
// the given area. Bits past the area stay zero so population counts
// are exact.
func tailMask(area int) uint64 {
	r := uint(area) & wordMask
	if r == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << r) - 1
}
