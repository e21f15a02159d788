package domain

import "math"

// SearchHit is one similarity-search result: a cosine-equivalent score in
// [-1, 1] paired with the matched chunk text and its source label. Hits
// are transient, produced per query and never persisted.
type SearchHit struct {
	// Score is the cosine similarity of the hit to the query.
	Score float64 `json:"score"`

	// Text is the matched chunk content.
	Text string `json:"text"`

	// Source is the label of the document the chunk came from.
	Source string `json:"source"`
}

// NormalizeL2 scales a vector to unit length in place and returns it.
// With unit vectors the inner product equals cosine similarity, which is
// what the policy index relies on. Zero vectors are returned unchanged.
func NormalizeL2(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
	return v
}
