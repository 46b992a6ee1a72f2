package mechanics

import (
	"strings"

	"gamefair/domain/core"
)

// Mechanic identifies one of the eight wager-based mini-game mechanics.
// The set is closed: builders and validators switch over it exhaustively,
// so adding or removing a mechanic is a compile-time-checked change.
type Mechanic string

const (
	Crash   Mechanic = "crash"
	Mines   Mechanic = "mines"
	Dice    Mechanic = "dice"
	Plinko  Mechanic = "plinko"
	Wheel   Mechanic = "wheel"
	HiLo    Mechanic = "hilo"
	Chicken Mechanic = "chicken"
	Scratch Mechanic = "scratch"
)

// All lists every mechanic in the canonical report order.
func All() []Mechanic {
	return []Mechanic{Crash, Plinko, Mines, Dice, Wheel, HiLo, Chicken, Scratch}
}

// Parse converts a selector string to a Mechanic.
// Selectors outside the closed set are rejected immediately.
func Parse(s string) (Mechanic, error) {
	m := Mechanic(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Crash, Mines, Dice, Plinko, Wheel, HiLo, Chicken, Scratch:
		return m, nil
	}
	return "", core.NewUnsupportedMechanicError(s)
}

// String returns the selector form
func (m Mechanic) String() string { return string(m) }

// Valid reports whether m belongs to the closed set
func (m Mechanic) Valid() bool {
	switch m {
	case Crash, Mines, Dice, Plinko, Wheel, HiLo, Chicken, Scratch:
		return true
	}
	return false
}
