// Package units converts engine forces (kN) into the requested display unit.
package units

import (
	"fmt"
	"strings"
)

// Unit is a force (or weight) unit for reported results.
type Unit int

const (
	KiloNewton Unit = iota // kN, the engine's internal unit
	Tonne                  // metric tonne-force
	Kilogram               // kilogram-force
)

var unitTable = [...]struct {
	symbol string
	factor float64 // multiply a kN value by factor
}{
	KiloNewton: {"kN", 1.0},
	Tonne:      {"Ton", 0.10197},
	Kilogram:   {"kg", 101.97},
}

// Parse accepts the unit symbol, case-insensitively ("kN", "Ton", "kg").
func Parse(s string) (Unit, error) {
	key := strings.TrimSpace(s)
	if key == "" {
		return KiloNewton, nil
	}
	for i, u := range unitTable {
		if strings.EqualFold(u.symbol, key) {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q (expected kN, Ton or kg)", s)
}

// All returns every supported unit.
func All() []Unit {
	return []Unit{KiloNewton, Tonne, Kilogram}
}

func (u Unit) valid() bool {
	return u >= 0 && int(u) < len(unitTable)
}

func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitTable[u].symbol
}

// Factor is the multiplier from kN to u.
func (u Unit) Factor() float64 {
	if !u.valid() {
		return 1.0
	}
	return unitTable[u].factor
}

// Convert scales a value in kN to the unit u.
func Convert(value float64, u Unit) float64 {
	return value * u.Factor()
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
