package dimension

import (
	"fmt"
	"math"
	"strconv"
)

// Formatter renders raw drawing-unit lengths as display text under one
// unit configuration.
type Formatter struct {
	cfg Config
}

// NewFormatter creates a formatter for the given configuration.
func NewFormatter(cfg Config) *Formatter {
	return &Formatter{cfg: cfg}
}

// Format converts a length in drawing units into its display string.
//
//	feet, decimal:     "12.5'"
//	feet, feet-inches: "12' 6\""
//	metric:            "3.8 m"
//	units:             "20.0 units"
func (f *Formatter) Format(length float64) string {
	converted := length / f.cfg.UnitConversion

	if f.cfg.Unit == UnitFeet && f.cfg.FeetInches {
		return feetInches(converted)
	}

	value := strconv.FormatFloat(converted, 'f', f.cfg.Precision, 64)
	switch f.cfg.Unit {
	case UnitFeet:
		return value + "'"
	case UnitMetric:
		return value + " m"
	default:
		return value + " units"
	}
}

// feetInches renders a decimal feet value as feet and whole inches.
func feetInches(feet float64) string {
	whole := int(feet)
	inches := int(math.Round((feet - float64(whole)) * 12))
	if inches == 12 {
		whole++
		inches = 0
	}
	switch {
	case whole > 0 && inches > 0:
		return fmt.Sprintf("%d' %d\"", whole, inches)
	case whole > 0:
		return fmt.Sprintf("%d'", whole)
	default:
		return fmt.Sprintf("%d\"", inches)
	}
}
