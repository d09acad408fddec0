package asce

import (
	"fmt"
	"math"
	"strings"
)

// StructureType selects the approximate period parameters of Table 12.8-2.
type StructureType int

const (
	SteelMomentFrame StructureType = iota
	ConcreteMomentFrame
	EccentricallyBracedFrame
	OtherSystem
)

// PeriodParameters holds Ct (SI, metres) and the exponent x.
type PeriodParameters struct {
	Ct float64
	X  float64
}

var structureTypes = [...]struct {
	key    string
	label  string
	params PeriodParameters
	moment bool
}{
	SteelMomentFrame:         {"steel-moment-frame", "Steel moment-resisting frame", PeriodParameters{Ct: 0.0724, X: 0.8}, true},
	ConcreteMomentFrame:      {"concrete-moment-frame", "Concrete moment-resisting frame", PeriodParameters{Ct: 0.0466, X: 0.9}, true},
	EccentricallyBracedFrame: {"eccentrically-braced-frame", "Eccentrically braced steel frame", PeriodParameters{Ct: 0.0731, X: 0.75}, false},
	OtherSystem:              {"other", "All other structural systems", PeriodParameters{Ct: 0.0488, X: 0.75}, false},
}

// StructureTypes lists every supported type in table order.
func StructureTypes() []StructureType {
	out := make([]StructureType, len(structureTypes))
	for i := range structureTypes {
		out[i] = StructureType(i)
	}
	return out
}

// ParseStructureType accepts the hyphenated key, e.g. "steel-moment-frame".
func ParseStructureType(s string) (StructureType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, st := range structureTypes {
		if st.key == key {
			return StructureType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown structure type %q", s)
}

func (t StructureType) valid() bool {
	return t >= 0 && int(t) < len(structureTypes)
}

func (t StructureType) String() string {
	if !t.valid() {
		return fmt.Sprintf("StructureType(%d)", int(t))
	}
	return structureTypes[t].key
}

// Label is the human readable name used in reports.
func (t StructureType) Label() string {
	if !t.valid() {
		return t.String()
	}
	return structureTypes[t].label
}

// Parameters returns Ct and x for the structure type.
func (t StructureType) Parameters() PeriodParameters {
	return structureTypes[t].params
}

// IsMomentFrame reports whether the system is a moment-resisting frame.
func (t StructureType) IsMomentFrame() bool {
	return t.valid() && structureTypes[t].moment
}

// MarshalText implements encoding.TextMarshaler.
func (t StructureType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *StructureType) UnmarshalText(text []byte) error {
	parsed, err := ParseStructureType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Table 12.8-1
var (
	cuControlSD1 = []float64{0.10, 0.15, 0.20, 0.30, 0.40}
	cuValues     = []float64{1.7, 1.6, 1.5, 1.4, 1.4}
)

// PeriodResult holds the fundamental period estimate of Section 12.8.2.
type PeriodResult struct {
	Params PeriodParameters
	Ta     float64 // Approximate period Ct·hn^x (s)
	Cu     float64 // Upper limit coefficient
	TUsed  float64 // Design period (s)
}

// UpperLimit is Cu·Ta.
func (p PeriodResult) UpperLimit() float64 {
	return p.Cu * p.Ta
}

// PeriodUpperLimitCoefficient returns Cu from Table 12.8-1.
func PeriodUpperLimitCoefficient(sd1 float64) float64 {
	return Interpolate(sd1, cuControlSD1, cuValues)
}

// EstimatePeriod computes Ta = Ct·hn^x and the design period min(Cu·Ta, Ta).
// Without a modelled period the design period is Ta, since Cu >= 1.
func EstimatePeriod(t StructureType, totalHeight, sd1 float64) (PeriodResult, error) {
	if !t.valid() {
		return PeriodResult{}, fmt.Errorf("invalid structure type %d", int(t))
	}
	if totalHeight <= 0 {
		return PeriodResult{}, fmt.Errorf("invalid building height hn=%.3f m", totalHeight)
	}

	params := t.Parameters()
	res := PeriodResult{
		Params: params,
		Ta:     params.Ct * math.Pow(totalHeight, params.X),
		Cu:     PeriodUpperLimitCoefficient(sd1),
	}
	res.TUsed = math.Min(res.UpperLimit(), res.Ta)
	return res, nil
}
