package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/distfield"
)

// algorithmsCommand creates the algorithms command.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range distfield.Algorithms() {
				if _, err := fmt.Fprintf(c.out, "%-8s %s\n", a, a.Description()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
