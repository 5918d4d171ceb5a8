package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/locksmith/internal/app"
	"go.trai.ch/locksmith/internal/ui/output"
	"go.trai.ch/locksmith/internal/ui/style"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check that lockfiles can be used by this version",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recursive, _ := cmd.Flags().GetBool("recursive")
			ignores, _ := cmd.Flags().GetStringArray("ignore")

			results, err := c.app.Check(cmd.Context(), dirArg(args), app.CheckOptions{
				Options:   readOptions(cmd),
				Recursive: recursive,
				Ignores:   ignores,
			})
			if results != nil {
				renderReport(cmd.OutOrStdout(), results)
			}
			return err
		},
	}
	addReadFlags(cmd)
	cmd.Flags().BoolP("recursive", "r", false, "Check every project below the directory")
	cmd.Flags().StringArray("ignore", nil, "Directory name glob to skip when recursing (repeatable)")
	return cmd
}

func renderReport(w io.Writer, results []app.CheckResult) {
	r := output.NewRenderer(w)
	theme := style.NewTheme(r)
	status := r.NewStyle().Width(8)

	failed := 0
	for _, res := range results {
		icon, tone := statusIcon(theme, res.Status)

		line := fmt.Sprintf("%s %s %s", tone.Render(icon), status.Render(string(res.Status)), res.Dir)
		switch res.Status {
		case app.StatusOK, app.StatusMerged:
			line += " " + theme.Muted.Render(res.LockfileVersion+" "+res.Digest)
		case app.StatusFailed:
			failed++
			line += "\n    " + theme.Bad.Render(res.Err.Error())
		case app.StatusMissing:
		}
		_, _ = fmt.Fprintln(w, line)
	}

	summary := fmt.Sprintf("%d checked, %d failed", len(results), failed)
	_, _ = fmt.Fprintln(w, theme.Strong.Render(summary))
}

func statusIcon(theme style.Theme, s app.CheckStatus) (string, lipgloss.Style) {
	switch s {
	case app.StatusOK:
		return style.Check, theme.Good
	case app.StatusMerged:
		return style.Warning, theme.Notice
	case app.StatusFailed:
		return style.Cross, theme.Bad
	default:
		return style.Circle, theme.Muted
	}
}
