// Package commands implements the CLI commands for locksmith.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/locksmith/internal/app"
	"go.trai.ch/locksmith/internal/build"
	"go.trai.ch/locksmith/internal/core/domain"
)

// CLI represents the command line interface for locksmith.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Read(ctx context.Context, dir string, opts app.Options, w io.Writer) error
	Check(ctx context.Context, root string, opts app.CheckOptions) ([]app.CheckResult, error)
	UseJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "locksmith",
		Short:         "Load, repair and gate pnpm lockfiles",
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

	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a settings file (default: nearest locksmith.yaml)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json")
		c.app.UseJSONLogs(jsonLogs)
	}

	rootCmd.AddCommand(c.newReadCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// addReadFlags registers the flags shared by every command that reads a lockfile.
func addReadFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("wanted-version", "w", nil, "Acceptable lockfile format version (repeatable)")
	cmd.Flags().Bool("ignore-incompatible", false, "Treat an incompatible lockfile as missing instead of failing")
	cmd.Flags().Bool("branch-lockfile", false, "Prefer the lockfile of the current git branch")
	cmd.Flags().Bool("current", false, "Read the installed-state lockfile under node_modules")
}

// readOptions collects the shared read flags. Boolean flags that were not
// given stay unset so the settings file can supply them.
func readOptions(cmd *cobra.Command) app.Options {
	wanted, _ := cmd.Flags().GetStringArray("wanted-version")
	current, _ := cmd.Flags().GetBool("current")
	configPath, _ := cmd.Flags().GetString("config")

	return app.Options{
		WantedVersions:     wanted,
		IgnoreIncompatible: optionalBool(cmd, "ignore-incompatible"),
		UseBranchLockfile:  optionalBool(cmd, "branch-lockfile"),
		Current:            current,
		ConfigPath:         configPath,
	}
}

func optionalBool(cmd *cobra.Command, name string) domain.Optional[bool] {
	if !cmd.Flags().Changed(name) {
		return domain.None[bool]()
	}
	v, _ := cmd.Flags().GetBool(name)
	return domain.Some(v)
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
