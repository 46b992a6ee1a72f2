package paytable

import (
	"fmt"

	"gamefair/domain/core"
)

// Entry is one atomic outcome of a mechanic: an identifier, a payout
// multiplier and the exact probability of the outcome occurring.
// Contribution is fixed at construction and immutable thereafter.
type Entry struct {
	OutcomeID    string  `json:"outcome_id"`
	Description  string  `json:"description"`
	Multiplier   float64 `json:"multiplier"`
	Probability  float64 `json:"probability"`
	Contribution float64 `json:"contribution"`
}

// NewEntry validates and constructs a paytable entry.
// Invalid probabilities and negative multipliers are rejected here, before
// any model construction, never clamped.
func NewEntry(outcomeID, description string, multiplier, probability float64) (Entry, error) {
	if probability < 0 || probability > 1 {
		return Entry{}, core.NewParameterError(
			"probability", fmt.Sprintf("%g outside [0,1] for outcome %q", probability, outcomeID))
	}
	if multiplier < 0 {
		return Entry{}, core.NewParameterError(
			"multiplier", fmt.Sprintf("%g negative for outcome %q", multiplier, outcomeID))
	}
	return Entry{
		OutcomeID:    outcomeID,
		Description:  description,
		Multiplier:   multiplier,
		Probability:  probability,
		Contribution: probability * multiplier,
	}, nil
}

// MustEntry constructs an entry from values already known to be valid.
// It panics on invalid input and exists for fixed reference tables.
func MustEntry(outcomeID, description string, multiplier, probability float64) Entry {
	e, err := NewEntry(outcomeID, description, multiplier, probability)
	if err != nil {
		panic(err)
	}
	return e
}

// ProbabilitySum returns the total probability mass of a paytable
func ProbabilitySum(entries []Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Probability
	}
	return sum
}

// ContributionSum returns the paytable RTP, the sum of P×mult over outcomes
func ContributionSum(entries []Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Contribution
	}
	return sum
}
