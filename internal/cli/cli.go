// Package cli implements the distfield command-line interface.
//
// The CLI is built with cobra. Every command logs through a
// charmbracelet/log logger, which is also installed as the slog handler of
// the distfield library so --verbose shows per-transform diagnostics.
//
// # Commands
//
//   - generate: compute a distance field image from a source image
//   - text: compute a distance field image from rendered text
//   - algorithms: list the available algorithms
//
// # Configuration
//
// --config names a TOML file with command defaults (see internal/config).
// Flags given on the command line override the file.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/distfield"
	"github.com/gogpu/distfield/internal/config"
)

var (
	version = distfield.Version // semantic version
	commit  string              // git commit SHA
	date    string              // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// CLI holds the state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	out io.Writer
}

// New creates a CLI writing command output to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(errOut, log.InfoLevel),
		Config: config.Default(),
		out:    out,
	}
}

// Execute runs the distfield CLI with os.Args.
func Execute(ctx context.Context) error {
	return New(os.Stdout, os.Stderr).RootCommand().ExecuteContext(ctx)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "distfield",
		Short:        "distfield generates distance field images",
		Long:         `distfield turns binary images and text into signed distance fields with a choice of transforms: linear sweep, brute force, dead reckoning, Eikonal sweep and signed weight field.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			c.Logger.SetLevel(level)
			distfield.SetLogger(slog.New(c.Logger))

			if configPath == "" {
				return nil
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			c.Logger.Debug("loaded config", "path", configPath)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("distfield %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with command defaults")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.textCommand())
	root.AddCommand(c.algorithmsCommand())

	return root
}
