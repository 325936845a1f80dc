package cli

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/distfield"
	"github.com/gogpu/distfield/internal/config"
	"github.com/gogpu/distfield/internal/imageio"
)

// generateOpts holds the flags shared by generate and text.
type generateOpts struct {
	algorithm string  // transform name, see distfield.ParseAlgorithm
	spread    float64 // distance mapped to the ends of the 8-bit range
	radius    int     // brute force and weight kernel radius
	threshold int     // pixel value above which a source pixel is occupied
	invert    bool    // swap occupied and empty cells
	extraPass bool    // third linear sweep pass
	border    bool    // treat the area outside the image as occupied
	workers   int     // goroutines for brute force and weight field
	preview   string  // optional path for the coverage rendered back from the field
}

// register adds the flags to cmd with defaults from cfg.
func (o *generateOpts) register(cmd *cobra.Command, cfg config.Config) {
	f := cmd.Flags()
	f.StringVarP(&o.algorithm, "algorithm", "a", cfg.Algorithm, "algorithm: sweep, brute, dr, swf, eikonal")
	f.Float64VarP(&o.spread, "spread", "s", cfg.Spread, "distance in pixels mapped to black and white")
	f.IntVar(&o.radius, "radius", cfg.Radius, "search radius of brute and swf")
	f.IntVar(&o.threshold, "threshold", cfg.Threshold, "pixels brighter than this are inside the shape")
	f.BoolVar(&o.invert, "invert", cfg.Invert, "treat dark pixels as inside")
	f.BoolVar(&o.extraPass, "extra-pass", cfg.ExtraPass, "run the third linear sweep pass")
	f.BoolVar(&o.border, "border", cfg.Border, "treat the image border as an obstacle")
	f.IntVar(&o.workers, "workers", cfg.Workers, "worker goroutines, 0 uses all CPUs")
	f.StringVar(&o.preview, "preview", "", "also write the anti-aliased shape rendered back from a signed field")
}

// merge overrides cfg with the flags set on the command line.
func (o *generateOpts) merge(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("algorithm") {
		cfg.Algorithm = o.algorithm
	}
	if f.Changed("spread") {
		cfg.Spread = o.spread
	}
	if f.Changed("radius") {
		cfg.Radius = o.radius
	}
	if f.Changed("threshold") {
		cfg.Threshold = o.threshold
	}
	if f.Changed("invert") {
		cfg.Invert = o.invert
	}
	if f.Changed("extra-pass") {
		cfg.ExtraPass = o.extraPass
	}
	if f.Changed("border") {
		cfg.Border = o.border
	}
	if f.Changed("workers") {
		cfg.Workers = o.workers
	}
	return cfg.Validate()
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <input|-> <output>",
		Short: "Generate a distance field image from a source image",
		Long: `Generate loads an image, marks pixels brighter than --threshold as inside,
runs the selected algorithm and writes the field as an 8-bit grayscale image.
Signed fields map -spread to black, 0 to mid gray and +spread to white.
An input of - reads the image from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if err := opts.merge(cmd, &cfg); err != nil {
				return err
			}

			p := newProgress(c.Logger)
			img, err := loadInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			m, err := distfield.MaskFromImage(img, byte(cfg.Threshold))
			if err != nil {
				return err
			}
			p.done("Loaded image", "path", args[0], "width", m.Width(), "height", m.Height())

			return c.writeField(m, cfg, args[1], opts.preview)
		},
	}

	opts.register(cmd, c.Config)
	return cmd
}

// loadInput decodes the image at path, or from stdin when path is "-".
func loadInput(stdin io.Reader, path string) (image.Image, error) {
	if path != "-" {
		return imageio.Load(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return imageio.LoadBytes(data)
}

// writeField runs the configured algorithm on m and saves the quantized
// field to output, and its coverage to preview when set.
func (c *CLI) writeField(m *distfield.Mask, cfg config.Config, output, preview string) error {
	if cfg.Invert {
		m = m.Invert()
	}

	algo, err := distfield.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		c.Logger.Warn("Unknown algorithm, using default", "name", cfg.Algorithm, "default", algo)
	}

	p := newProgress(c.Logger)
	f, err := distfield.Generate(m, algo, cfg.Options())
	if err != nil {
		return fmt.Errorf("%s: %w", algo, err)
	}
	p.done("Computed field", "algorithm", algo, "kind", f.Kind, "occupied", m.Count())

	gray, err := f.Gray(float32(cfg.Spread))
	if err != nil {
		return err
	}

	output = outputPath(output, cfg.Format)
	p = newProgress(c.Logger)
	if err := imageio.Save(output, gray); err != nil {
		if errors.Is(err, imageio.ErrUnsupportedFormat) {
			return fmt.Errorf("%w (use .png, .bmp, .tif or .jpg)", err)
		}
		return err
	}
	p.done("Wrote "+output, "width", f.Width, "height", f.Height)

	if preview == "" {
		return nil
	}
	cov, err := f.Coverage(0)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	preview = outputPath(preview, cfg.Format)
	if err := imageio.Save(preview, cov); err != nil {
		return err
	}
	c.Logger.Info("Wrote preview " + preview)
	return nil
}

// outputPath appends the default format extension to paths without one.
func outputPath(path, format string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return path + "." + format
}
