package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// MaxBy returns the largest key over items, or fallback when items is empty.
func MaxBy[S any, T constraints.Ordered](items []S, key func(S) T, fallback T) T {
	if len(items) == 0 {
		return fallback
	}
	best := key(items[0])
	for _, item := range items[1:] {
		if v := key(item); v > best {
			best = v
		}
	}
	return best
}

// MinBy returns the smallest key over items, or fallback when items is empty.
func MinBy[S any, T constraints.Ordered](items []S, key func(S) T, fallback T) T {
	if len(items) == 0 {
		return fallback
	}
	best := key(items[0])
	for _, item := range items[1:] {
		if v := key(item); v < best {
			best = v
		}
	}
	return best
}

// CeilLog2 returns the smallest k such that 1<<k >= n, for n >= 1.
func CeilLog2[T constraints.Integer](n T) int {
	k := 0
	for p := uint64(1); p < uint64(n); p <<= 1 {
		k++
	}
	return k
}
