package similarity

import "math"

// Cosine computes cosine similarity between two dense vectors. Mismatched
// lengths and zero-norm vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, na, nb float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}

	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0.0
	}
	return dot / den
}
