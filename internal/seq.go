// Package internal holds iterator helpers shared by the minisys packages.
package internal

import (
	"iter"
)

// Seq2Concat concatenates multiple key/value iterators into one.
func Seq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// SeqFlatMap yields every element of expand(item) for each item in items,
// in order.
func SeqFlatMap[T any, U any](items []T, expand func(T) iter.Seq[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for _, item := range items {
			for val := range expand(item) {
				if !yield(val) {
					return
				}
			}
		}
	}
}
