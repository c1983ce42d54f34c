// Package commands implements the CLI commands for glimpse.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/glimpse/internal/adapters/detector"
	"go.trai.ch/glimpse/internal/adapters/telemetry"
	"go.trai.ch/glimpse/internal/build"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
)

// CLI represents the command line interface for glimpse.
type CLI struct {
	app      Application
	logger   ports.Logger
	rootCmd  *cobra.Command
	shutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	LoadProject(dir, fallbackRoot string) domain.Project
	PreviewAll(ctx context.Context, project domain.Project, refs []string, opts domain.RenderOptions) []*domain.Preview
	Hover(ctx context.Context, documentPath, text string, pos domain.Position) *domain.Hover
	Watch(ctx context.Context, documentPath string, out io.Writer) error
}

// configurableLogger is implemented by loggers whose output can be tuned from flags.
type configurableLogger interface {
	SetOutput(w io.Writer)
	SetFormat(format domain.LogFormat)
	SetQuiet(quiet bool)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "glimpse",
		Short:         "Preview the graphics included by LaTeX documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("log-format", detector.FlagAuto, "Log format: auto, pretty, plain, or json")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log a timing line for every render")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.configureLogging
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		if c.shutdown == nil {
			return nil
		}
		return c.shutdown(cmd.Context())
	}

	rootCmd.AddCommand(c.newPreviewCmd())
	rootCmd.AddCommand(c.newHoverCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configureLogging applies the logging flags before any command runs.
func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	flag, _ := cmd.Flags().GetString("log-format")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	stderr := cmd.ErrOrStderr()
	auto := domain.LogFormatPlain
	if f, ok := stderr.(*os.File); ok {
		auto = detector.DetectEnvironment(f.Fd())
	}
	format, err := detector.ResolveFormat(auto, flag)
	if err != nil {
		return err
	}

	if configurable, ok := c.logger.(configurableLogger); ok {
		configurable.SetOutput(stderr)
		configurable.SetFormat(format)
		configurable.SetQuiet(quiet && !verbose)
	}

	if verbose {
		c.shutdown = telemetry.Install(c.logger)
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
