package card

import (
	"iter"
	"slices"
)

// WordsAsBytes returns an iterator that yields each word as 4 bytes,
// most significant byte first.
func WordsAsBytes(words iter.Seq[uint32]) iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for word := range words {
			for n := range 4 {
				if !yield(byte(word >> (24 - 8*n))) {
					return
				}
			}
		}
	}
}

// BytesAsWords returns an iterator that packs each group of 4 bytes into a
// big-endian word.
//
// A short final group keeps its bytes at the start of the word, with the
// missing low order bytes zero: {0x09} packs to 0x09000000.
func BytesAsWords(data iter.Seq[byte]) iter.Seq[uint32] {
	return func(yield func(value uint32) bool) {
		var n int
		var value uint32
		for b := range data {
			value |= uint32(b) << (24 - 8*n)
			if n == 3 {
				if !yield(value) {
					return
				}
				value = 0
				n = 0
			} else {
				n++
			}
		}
		if n != 0 {
			yield(value)
		}
	}
}

// EncodeWords packs data into ceil(len(data)/4) words.
func EncodeWords(data []byte) (words []uint32) {
	words = make([]uint32, 0, (len(data)+3)/4)
	words = slices.AppendSeq(words, BytesAsWords(slices.Values(data)))
	return
}

// DecodeWords unpacks words into 4*len(words) bytes.
func DecodeWords(words []uint32) (data []byte) {
	data = make([]byte, 0, len(words)*4)
	data = slices.AppendSeq(data, WordsAsBytes(slices.Values(words)))
	return
}
