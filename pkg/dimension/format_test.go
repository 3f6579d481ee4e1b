package dimension

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		cfg    func() Config
		length float64
		want   string
	}{
		{
			name: "feet decimal",
			cfg: func() Config {
				c := Defaults()
				c.FeetInches = false
				return c
			},
			length: 125,
			want:   "12.5'",
		},
		{
			name:   "feet inches",
			cfg:    Defaults,
			length: 125,
			want:   `12' 6"`,
		},
		{
			name:   "feet inches whole feet",
			cfg:    Defaults,
			length: 200,
			want:   "20'",
		},
		{
			name:   "inches only",
			cfg:    Defaults,
			length: 5,
			want:   `6"`,
		},
		{
			name: "feet inches carry at twelve",
			cfg:  Defaults,
			// 11.99 feet rounds to 12 inches, carrying to 12'.
			length: 119.9,
			want:   "12'",
		},
		{
			name: "units",
			cfg: func() Config {
				c := Defaults()
				c.Unit = UnitUnits
				c.UnitConversion = 1
				c.Precision = 0
				return c
			},
			length: 20,
			want:   "20 units",
		},
		{
			name: "metric",
			cfg: func() Config {
				c := Defaults()
				c.Unit = UnitMetric
				c.UnitConversion = 32.8
				c.Precision = 1
				return c
			},
			length: 328,
			want:   "10.0 m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.cfg())
			if got := f.Format(tt.length); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.length, got, tt.want)
			}
		})
	}
}

// decode parses a formatted dimension back into drawing units.
func decode(t *testing.T, s string, cfg Config) float64 {
	t.Helper()

	if strings.Contains(s, `"`) || strings.HasSuffix(s, "'") {
		feet := 0.0
		inches := 0.0
		if i := strings.Index(s, "'"); i >= 0 {
			f, err := strconv.ParseFloat(s[:i], 64)
			if err != nil {
				t.Fatalf("decode feet from %q: %v", s, err)
			}
			feet = f
			s = strings.TrimSpace(s[i+1:])
		}
		if i := strings.Index(s, `"`); i >= 0 {
			n, err := strconv.ParseFloat(s[:i], 64)
			if err != nil {
				t.Fatalf("decode inches from %q: %v", s, err)
			}
			inches = n
		}
		return (feet + inches/12) * cfg.UnitConversion
	}

	fields := strings.Fields(s)
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return v * cfg.UnitConversion
}

func TestFormatRoundTrip(t *testing.T) {
	configs := map[string]Config{
		"feet-inches": Defaults(),
		"feet-decimal": func() Config {
			c := Defaults()
			c.FeetInches = false
			c.Precision = 2
			return c
		}(),
		"units": func() Config {
			c := Defaults()
			c.Unit = UnitUnits
			c.UnitConversion = 1
			c.Precision = 2
			return c
		}(),
		"metric": func() Config {
			c := Defaults()
			c.Unit = UnitMetric
			c.UnitConversion = 32.8
			c.Precision = 3
			return c
		}(),
	}

	lengths := []float64{20, 125, 200, 333, 450}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			f := NewFormatter(cfg)
			for _, w := range lengths {
				text := f.Format(w)
				got := decode(t, text, cfg)

				// Tolerance: half of the last displayed digit, scaled back
				// to drawing units. Feet-inches rounds to whole inches.
				tol := cfg.UnitConversion / 24
				if !cfg.FeetInches {
					tol = cfg.UnitConversion * math.Pow(10, -float64(cfg.Precision)) / 2
				}
				if math.Abs(got-w) > tol+1e-9 {
					t.Errorf("round trip %v -> %q -> %v exceeds tolerance %v", w, text, got, tol)
				}
			}
		})
	}
}
