package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"stretchwin/internal/app"
	"stretchwin/internal/config"
	"stretchwin/internal/platform"
	"stretchwin/internal/types"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stretchwin",
		Short: "Stretch the editor window across all monitors, above the taskbar",
		Long: `Restore the Visual Studio or Visual Studio Code main window and resize it to
the full virtual screen minus the taskbar height. The window's z-order is left
unchanged.

Register stretchwin as an external tool in the editor and leave --scope at
"parent" so the editor that launched it is the window that gets stretched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStretch,
	}
	cmd.Flags().String("scope", "parent", "Processes to inspect (self|parent|all)")
	cmd.Flags().String("env", "production", "Environment (production|development|test)")
	cmd.Flags().Bool("dry-run", false, "Report the target rectangle without moving any window")
	return cmd
}

func runStretch(cmd *cobra.Command, _ []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		return err
	}

	result, err := application.Execute()
	if result != nil {
		printResult(cmd.OutOrStdout(), result)
	}
	return err
}

func configFromFlags(cmd *cobra.Command) (*config.Config, error) {
	env, _ := cmd.Flags().GetString("env")
	cfg := config.ConfigForEnvironment(env)

	scopeFlag, _ := cmd.Flags().GetString("scope")
	scope, err := platform.ParseProcessScope(scopeFlag)
	if err != nil {
		return nil, err
	}
	cfg.Scope = scope

	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	}

	return cfg, cfg.Validate()
}

func printResult(out io.Writer, result *types.PlacementResult) {
	fmt.Fprintf(out, "Target: %s\n", result.Target)
	if result.Clamped {
		fmt.Fprintln(out, "Warning: taskbar is taller than the screen, height clamped to 0")
	}
	if result.DryRun {
		for _, p := range result.Eligible {
			fmt.Fprintf(out, "Would place: %s\n", p.Description())
		}
	}
	for _, p := range result.Placed {
		fmt.Fprintf(out, "Placed: %s\n", p.Description())
	}
	if len(result.Eligible) == 0 {
		fmt.Fprintf(out, "No editor window found among %d titled windows\n", len(result.Described))
	}
}
