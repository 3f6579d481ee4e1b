package plan

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/bijoor/konkan-house/pkg/dimension"
	"github.com/bijoor/konkan-house/pkg/errors"
)

// Load reads and decodes a TOML plan file, applies defaults, and runs
// fatal validation. Non-fatal object problems are left for Problems.
func Load(path string) (*Plan, error) {
	if err := errors.ValidatePlanPath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "plan file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read plan %s", path)
	}

	return Parse(data)
}

// Parse decodes a plan from TOML bytes. Decoding starts from the stock
// dimension configuration, so a plan without a [dimensions] section gets
// the full defaults while any field the file does set, including explicit
// false or zero, survives as written.
func Parse(data []byte) (*Plan, error) {
	p := Plan{Dimensions: dimension.Defaults()}
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "decode plan")
	}

	p.ApplyDefaults()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
