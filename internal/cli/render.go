package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bijoor/konkan-house/pkg/cache"
	"github.com/bijoor/konkan-house/pkg/errors"
	"github.com/bijoor/konkan-house/pkg/plan"
	"github.com/bijoor/konkan-house/pkg/render/floorplan"
)

const (
	defaultScale = 2.0 // pixels per drawing unit

	// cacheTTL bounds how long rendered output stays valid. The key
	// already covers plan content, so this only limits disk growth.
	cacheTTL = 7 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (single floor/format) or base path
	floor   int      // floor number to render; -1 means all floors
	formats []string // output formats: "svg", "png", "pdf"
	scale   float64  // pixels per drawing unit
	noCache bool     // bypass the render cache
	noTitle bool     // omit the floor name heading
}

// renderCommand creates the render command for generating floor-plan drawings.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{floor: -1, scale: defaultScale}

	cmd := &cobra.Command{
		Use:   "render [plan file]",
		Short: "Render a house plan as dimensioned floor-plan drawings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single floor/format) or base path")
	cmd.Flags().IntVar(&opts.floor, "floor", -1, "floor number to render (default: all floors)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", defaultScale, "pixels per drawing unit")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")
	cmd.Flags().BoolVar(&opts.noTitle, "no-title", false, "omit the floor name heading")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file
// paths, stripping a known format extension if present.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath builds the file name for one rendered floor. The floor
// suffix is dropped when the plan has a single floor.
func outputPath(base string, floor int, format string, multiFloor bool) string {
	if multiFloor {
		return fmt.Sprintf("%s_floor%d.%s", base, floor, format)
	}
	return fmt.Sprintf("%s.%s", base, format)
}

// runRender loads the plan, reports non-fatal problems, and renders the
// requested floors in every requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	p, err := plan.Load(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s: %d floors", p.Name, len(p.Floors))

	for _, problem := range p.Problems() {
		printWarning("%s", errors.UserMessage(problem))
	}

	floors, err := selectFloors(p, opts.floor)
	if err != nil {
		return err
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	planHash := cache.Hash(raw)

	base := basePath(opts.output, input)
	multiFloor := len(floors) > 1
	rendered := 0

	for _, f := range floors {
		for _, format := range opts.formats {
			path := outputPath(base, f.Number, format, multiFloor)
			data, hit, err := c.renderFloor(ctx, p, f, format, planHash, store, opts)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}
			printFile(path)
			printStats(len(f.Rooms), len(f.Walls), hit)
			rendered++
		}
	}

	prog.done(fmt.Sprintf("Rendered %d drawings", rendered))
	return nil
}

// selectFloors returns the floors to render: all of them, or the one
// matching number when it is non-negative.
func selectFloors(p *plan.Plan, number int) ([]*plan.Floor, error) {
	if number < 0 {
		floors := make([]*plan.Floor, len(p.Floors))
		for i := range p.Floors {
			floors[i] = &p.Floors[i]
		}
		return floors, nil
	}
	f, err := p.Floor(number)
	if err != nil {
		return nil, err
	}
	return []*plan.Floor{f}, nil
}

// renderFloor produces one floor in one format, consulting the render
// cache first. The second return reports a cache hit.
func (c *CLI) renderFloor(ctx context.Context, p *plan.Plan, f *plan.Floor, format, planHash string, store cache.Cache, opts *renderOpts) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	key := cache.RenderKey(planHash, f.Number, format, opts.scale, p.Dimensions)
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		logger.Debugf("Cache hit for floor %d (%s)", f.Number, format)
		return data, true, nil
	}

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s (%s)", f.Label(), format))
	spin.Start()
	defer spin.Stop()

	renderOpts := []floorplan.Option{
		floorplan.WithDimensions(p.Dimensions),
		floorplan.WithWallThickness(p.WallThickness),
		floorplan.WithScale(opts.scale),
	}
	if opts.noTitle {
		renderOpts = append(renderOpts, floorplan.WithoutTitle())
	}

	svg := floorplan.Render(f, renderOpts...)

	var data []byte
	var err error
	switch format {
	case "svg":
		data = svg
	case "png":
		data, err = floorplan.ToPNG(svg, opts.scale)
	case "pdf":
		data, err = floorplan.ToPDF(svg)
	}
	if err != nil {
		return nil, false, err
	}

	if err := store.Set(ctx, key, data, cacheTTL); err != nil {
		logger.Debugf("Cache write failed: %v", err)
	}
	return data, false, nil
}
