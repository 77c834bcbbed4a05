package entity

// Sequence names an independent resolution target.
type Sequence string

const (
	SequenceRestaurant Sequence = "restaurant"
	SequenceAddress    Sequence = "address"
)

// ResolutionToken identifies one resolution attempt within a sequence.
// Only the outcome of the latest token of a sequence may mutate state.
type ResolutionToken struct {
	Sequence Sequence
	Value    uint64
}

// ResolutionState is the per-sequence lifecycle.
type ResolutionState string

const (
	StateIdle      ResolutionState = "idle"
	StateResolving ResolutionState = "resolving"
	StateResolved  ResolutionState = "resolved"
	StateFailed    ResolutionState = "failed"
)

// TokenCounter issues monotonically increasing tokens for one sequence.
// It is not safe for concurrent use; the owner serializes access.
type TokenCounter struct {
	sequence Sequence
	latest   uint64
}

// NewTokenCounter creates a counter for sequence.
func NewTokenCounter(sequence Sequence) TokenCounter {
	return TokenCounter{sequence: sequence}
}

// Next issues a new token, superseding all earlier ones.
func (c *TokenCounter) Next() ResolutionToken {
	c.latest++

	return ResolutionToken{Sequence: c.sequence, Value: c.latest}
}

// IsLatest reports whether token is the most recently issued one.
func (c *TokenCounter) IsLatest(token ResolutionToken) bool {
	return token.Sequence == c.sequence && token.Value == c.latest
}

// Place is an autocomplete selection. Location is nil when the provider
// returned the place without geometry.
type Place struct {
	Location   *Coordinate        `json:"location,omitempty"`
	Components []AddressComponent `json:"components,omitempty"`
}
