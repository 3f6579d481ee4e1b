package dimension

import (
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/bijoor/konkan-house/pkg/errors"
)

func TestDefaults(t *testing.T) {
	c := Defaults()

	if !c.ShowOuter || !c.ShowInner || !c.ShowRoom || !c.ShowOpening {
		t.Error("all dimension layers should default on")
	}
	if c.Offset != 30 || c.OffsetIncrement != 20 {
		t.Errorf("outer offsets = (%v, %v), want (30, 20)", c.Offset, c.OffsetIncrement)
	}
	if c.MinLength != 20 {
		t.Errorf("MinLength = %v, want 20", c.MinLength)
	}
	if c.Unit != UnitFeet || !c.FeetInches {
		t.Errorf("unit = (%v, feetInches=%v), want feet-inches", c.Unit, c.FeetInches)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Defaults().Validate() = %v", err)
	}
}

func TestConfigTOMLDecode(t *testing.T) {
	src := `
show_outer_dimensions = true
show_inner_dimensions = false
dimension_offset = 40.0
unit_format = "metric"
unit_conversion = 100.0
min_dimension_length = 10.0
precision = 2
text_size = 12.0
`
	var c Config
	if err := toml.Unmarshal([]byte(src), &c); err != nil {
		t.Fatalf("toml.Unmarshal() error = %v", err)
	}

	if !c.ShowOuter || c.ShowInner {
		t.Errorf("show flags = (%v, %v), want (true, false)", c.ShowOuter, c.ShowInner)
	}
	if c.Offset != 40 {
		t.Errorf("Offset = %v, want 40", c.Offset)
	}
	if c.Unit != UnitMetric {
		t.Errorf("Unit = %v, want metric", c.Unit)
	}
	if c.Precision != 2 {
		t.Errorf("Precision = %v, want 2", c.Precision)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	c := Config{Offset: 50, Unit: UnitUnits, UnitConversion: 1}
	c.ApplyDefaults()

	if c.Offset != 50 {
		t.Errorf("Offset = %v, want explicit 50", c.Offset)
	}
	if c.Unit != UnitUnits {
		t.Errorf("Unit = %v, want explicit units", c.Unit)
	}
	if c.OffsetIncrement != 20 {
		t.Errorf("OffsetIncrement = %v, want default 20", c.OffsetIncrement)
	}
}

func TestParseUnitFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    UnitFormat
		wantErr bool
	}{
		{input: "feet", want: UnitFeet},
		{input: "metric", want: UnitMetric},
		{input: "units", want: UnitUnits},
		{input: "furlongs", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnitFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUnitFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidUnit) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidUnit)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseUnitFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	c := Defaults()
	c.MinLength = -5
	if err := c.Validate(); err == nil {
		t.Error("Validate() = nil, want error for negative min length")
	}

	c = Defaults()
	c.UnitConversion = -1
	if err := c.Validate(); err == nil {
		t.Error("Validate() = nil, want error for negative conversion")
	}
}

func TestSideOffset(t *testing.T) {
	c := Defaults()
	if got := c.SideOffset(0); got != 30 {
		t.Errorf("SideOffset(0) = %v, want 30", got)
	}
	if got := c.SideOffset(2); got != 70 {
		t.Errorf("SideOffset(2) = %v, want 70", got)
	}
}
