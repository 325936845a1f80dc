package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/distfield/textmask"
)

// textOpts holds the flags of the text command.
type textOpts struct {
	generateOpts

	font    string  // font file path, empty for Go Regular
	size    float64 // font size in pixels per em
	padding int     // empty cells around the text
}

// textCommand creates the text command.
func (c *CLI) textCommand() *cobra.Command {
	var opts textOpts

	cmd := &cobra.Command{
		Use:   "text <string> <output>",
		Short: "Generate a distance field image from rendered text",
		Long: `Text shapes and rasterizes the string with the given font, then runs the
selected algorithm exactly as generate does.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			f := cmd.Flags()
			if f.Changed("font") {
				cfg.Text.Font = opts.font
			}
			if f.Changed("size") {
				cfg.Text.Size = opts.size
			}
			if f.Changed("padding") {
				cfg.Text.Padding = opts.padding
			}
			if err := opts.merge(cmd, &cfg); err != nil {
				return err
			}

			to := textmask.Options{
				Size:      cfg.Text.Size,
				Padding:   cfg.Text.Padding,
				Threshold: byte(cfg.Threshold),
			}
			if cfg.Text.Font != "" {
				data, err := os.ReadFile(filepath.Clean(cfg.Text.Font))
				if err != nil {
					return fmt.Errorf("read font: %w", err)
				}
				to.Font = data
			}

			p := newProgress(c.Logger)
			m, err := textmask.Render(args[0], to)
			if err != nil {
				return err
			}
			p.done("Rendered text", "width", m.Width(), "height", m.Height())

			return c.writeField(m, cfg, args[1], opts.preview)
		},
	}

	opts.register(cmd, c.Config)
	cmd.Flags().StringVar(&opts.font, "font", c.Config.Text.Font, "TrueType or OpenType font file (default Go Regular)")
	cmd.Flags().Float64Var(&opts.size, "size", c.Config.Text.Size, "font size in pixels")
	cmd.Flags().IntVar(&opts.padding, "padding", c.Config.Text.Padding, "empty pixels around the text")
	return cmd
}
