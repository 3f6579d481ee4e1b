// Package dimension plans and formats dimension annotations for floor
// plans: which wall edges get a dimension line, on which side, at which
// stacking level, and how the measured length reads as text.
package dimension

import (
	"github.com/bijoor/konkan-house/pkg/errors"
)

// UnitFormat selects how measured lengths are displayed.
type UnitFormat string

const (
	// UnitFeet displays lengths in feet, optionally as feet-inches.
	UnitFeet UnitFormat = "feet"
	// UnitMetric displays lengths in meters.
	UnitMetric UnitFormat = "metric"
	// UnitUnits displays raw drawing units.
	UnitUnits UnitFormat = "units"
)

// ParseUnitFormat validates a unit format string.
func ParseUnitFormat(s string) (UnitFormat, error) {
	switch UnitFormat(s) {
	case UnitFeet, UnitMetric, UnitUnits:
		return UnitFormat(s), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidUnit,
			"unknown unit format %q (expected feet, metric, or units)", s)
	}
}

// Config is the dimension layer options bag. It is decoded from the
// [dimensions] section of a plan file on top of Defaults, so absent
// fields keep their stock values and explicit false/zero stick.
type Config struct {
	ShowOuter   bool `toml:"show_outer_dimensions"`
	ShowInner   bool `toml:"show_inner_dimensions"`
	ShowRoom    bool `toml:"show_room_dimensions"`
	ShowOpening bool `toml:"show_opening_dimensions"`

	// Offset is the distance from the building edge to the first outer
	// dimension line, in drawing units.
	Offset float64 `toml:"dimension_offset"`
	// OffsetIncrement is the extra distance per stacking level.
	OffsetIncrement float64 `toml:"dimension_offset_increment"`
	// InnerOffset is the offset for interior wall dimensions.
	InnerOffset float64 `toml:"inner_dimension_offset"`
	// OpeningOffset is the offset for door and window dimensions.
	OpeningOffset float64 `toml:"opening_dimension_offset"`

	// MinLength suppresses dimensions on edges shorter than this.
	MinLength float64 `toml:"min_dimension_length"`

	Unit UnitFormat `toml:"unit_format"`
	// UnitConversion is how many drawing units make one display unit.
	UnitConversion float64 `toml:"unit_conversion"`
	// Precision is the number of decimal places in decimal display.
	Precision int `toml:"precision"`
	// FeetInches renders feet values as 12' 6" instead of 12.5'.
	FeetInches bool `toml:"use_feet_inches"`

	TextSize        float64 `toml:"text_size"`
	RoomTextSize    float64 `toml:"room_text_size"`
	OpeningTextSize float64 `toml:"opening_text_size"`
}

// Defaults returns the stock configuration: outer, inner, room and
// opening dimensions all on, feet-inches display at 10 units per foot.
func Defaults() Config {
	return Config{
		ShowOuter:   true,
		ShowInner:   true,
		ShowRoom:    true,
		ShowOpening: true,

		Offset:          30,
		OffsetIncrement: 20,
		InnerOffset:     15,
		OpeningOffset:   8,

		MinLength: 20,

		Unit:           UnitFeet,
		UnitConversion: 10,
		Precision:      1,
		FeetInches:     true,

		TextSize:        10,
		RoomTextSize:    12,
		OpeningTextSize: 8,
	}
}

// ApplyDefaults fills unset numeric fields with their default values.
// It is for configs built in code; plan decoding starts from Defaults
// instead, so that explicit zeros in a file survive. Booleans are left
// alone here for the same reason.
func (c *Config) ApplyDefaults() {
	d := Defaults()
	if c.Offset == 0 {
		c.Offset = d.Offset
	}
	if c.OffsetIncrement == 0 {
		c.OffsetIncrement = d.OffsetIncrement
	}
	if c.InnerOffset == 0 {
		c.InnerOffset = d.InnerOffset
	}
	if c.OpeningOffset == 0 {
		c.OpeningOffset = d.OpeningOffset
	}
	if c.Unit == "" {
		c.Unit = d.Unit
	}
	if c.UnitConversion == 0 {
		c.UnitConversion = d.UnitConversion
	}
	if c.TextSize == 0 {
		c.TextSize = d.TextSize
	}
	if c.RoomTextSize == 0 {
		c.RoomTextSize = d.RoomTextSize
	}
	if c.OpeningTextSize == 0 {
		c.OpeningTextSize = d.OpeningTextSize
	}
}

// Validate checks the configuration for values that cannot be rendered.
func (c Config) Validate() error {
	if _, err := ParseUnitFormat(string(c.Unit)); err != nil {
		return err
	}
	if c.UnitConversion <= 0 {
		return errors.New(errors.ErrCodeInvalidPlan,
			"unit_conversion must be positive, got %v", c.UnitConversion)
	}
	if c.MinLength < 0 {
		return errors.New(errors.ErrCodeInvalidPlan,
			"min_dimension_length cannot be negative, got %v", c.MinLength)
	}
	if c.Precision < 0 {
		return errors.New(errors.ErrCodeInvalidPlan,
			"precision cannot be negative, got %v", c.Precision)
	}
	return nil
}
