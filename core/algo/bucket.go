package algo

import "math"

// DigitBucket returns the number of decimal digits of n minus one, so
// 0..9 map to 0, 10..99 to 1 and so on. It compares against ascending powers
// of ten instead of taking a logarithm. Negative input maps to 0.
func DigitBucket(n int) int {
	bucket := 0
	for pow := 10; n >= pow; pow *= 10 {
		bucket++
		if pow > math.MaxInt/10 {
			break
		}
	}
	return bucket
}

// SizeBucket buckets an optional byte size. A nil size has no bucket.
func SizeBucket(size *int) *int {
	if size == nil {
		return nil
	}
	bucket := DigitBucket(*size)
	return &bucket
}
