package model

// Suggestion is an advisory category guess for a transaction description.
// It is never applied to any collection automatically.
type Suggestion struct {
	Category   string
	Confidence float64
}
