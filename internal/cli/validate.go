package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bijoor/konkan-house/pkg/errors"
	"github.com/bijoor/konkan-house/pkg/plan"
)

// validateCommand creates the validate command for checking plan files.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [plan file]",
		Short: "Check a house plan file for problems",
		Long: `Validate loads a plan file and reports problems.

Fatal problems (unparseable TOML, missing floors, bad dimension
configuration) always fail. Object-level problems (zero-sized rooms,
diagonal walls, bad opening directions) are warnings: those objects
are skipped at render time. With --strict, warnings fail too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat object problems as errors")

	return cmd
}

func runValidate(input string, strict bool) error {
	p, err := plan.Load(input)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	problems := p.Problems()
	for _, problem := range problems {
		printWarning("%s", errors.UserMessage(problem))
	}

	printKeyValue("plan", p.Name)
	printKeyValue("floors", fmt.Sprintf("%d", len(p.Floors)))
	for i := range p.Floors {
		f := &p.Floors[i]
		printDetail("%s: %d rooms, %d walls, %d doors, %d windows",
			f.Label(), len(f.Rooms), len(f.Walls), len(f.Doors), len(f.Windows))
	}

	if len(problems) > 0 {
		if strict {
			return errors.New(errors.ErrCodeInvalidObject, "%d object problems", len(problems))
		}
		printInfo("%d objects will be skipped at render time", len(problems))
	} else {
		printSuccess("Plan is valid")
	}

	printNextStep("Render it", fmt.Sprintf("%s render %s", appName, input))
	return nil
}
