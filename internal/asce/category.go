package asce

import "fmt"

// OccupancyCategory as inferred from the importance factor (Table 11.5-1).
// Categories I and II share Ie = 1.0 and are reported as I.
type OccupancyCategory int

const (
	OccupancyI   OccupancyCategory = 1
	OccupancyIII OccupancyCategory = 3
	OccupancyIV  OccupancyCategory = 4
)

// OccupancyFromImportance infers the occupancy category from Ie.
func OccupancyFromImportance(ie float64) OccupancyCategory {
	switch {
	case ie < 1.25:
		return OccupancyI
	case ie < 1.5:
		return OccupancyIII
	default:
		return OccupancyIV
	}
}

func (o OccupancyCategory) String() string {
	switch o {
	case OccupancyI:
		return "I/II"
	case OccupancyIII:
		return "III"
	case OccupancyIV:
		return "IV"
	}
	return fmt.Sprintf("OccupancyCategory(%d)", int(o))
}

// DesignCategory is the Seismic Design Category, ordered by severity.
type DesignCategory int

const (
	SDCA DesignCategory = iota
	SDCB
	SDCC
	SDCD
	SDCE
	SDCF
)

func (c DesignCategory) String() string {
	if c < SDCA || c > SDCF {
		return fmt.Sprintf("DesignCategory(%d)", int(c))
	}
	return string(rune('A' + int(c)))
}

// MarshalText implements encoding.TextMarshaler.
func (c DesignCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// HighSeismic reports whether the category is D, E or F.
func (c DesignCategory) HighSeismic() bool {
	return c >= SDCD
}

// Table 11.6-1 thresholds on SDS (g)
var sdsThresholds = [3]float64{0.167, 0.33, 0.50}

// Table 11.6-2 thresholds on SD1 (g)
var sd1Thresholds = [3]float64{0.067, 0.133, 0.20}

// LongPeriodS1 is the S1 value at and above which categories E/F apply (Section 11.6).
const LongPeriodS1 = 0.75

// ClassifyDesignCategory returns the more severe of the SDS- and SD1-based
// categories of Tables 11.6-1 and 11.6-2.
func ClassifyDesignCategory(sds, sd1, ie float64) DesignCategory {
	occ := OccupancyFromImportance(ie)
	return max(categoryFor(sds, sdsThresholds, occ), categoryFor(sd1, sd1Thresholds, occ))
}

// ApplyLongPeriodRule raises the category to E (F for occupancy IV) where S1 >= 0.75.
func ApplyLongPeriodRule(c DesignCategory, s1, ie float64) DesignCategory {
	if s1 < LongPeriodS1 {
		return c
	}
	floor := SDCE
	if OccupancyFromImportance(ie) == OccupancyIV {
		floor = SDCF
	}
	return max(c, floor)
}

func categoryFor(value float64, thresholds [3]float64, occ OccupancyCategory) DesignCategory {
	promoted := occ == OccupancyIV
	switch {
	case value < thresholds[0]:
		return SDCA
	case value < thresholds[1]:
		if promoted {
			return SDCC
		}
		return SDCB
	case value < thresholds[2]:
		if promoted {
			return SDCD
		}
		return SDCC
	default:
		return SDCD
	}
}
