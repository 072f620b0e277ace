package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gantry-run/gantry/internal/ci"
	"github.com/gantry-run/gantry/pkg/commitlint"
)

var lintTitleCmd = &cobra.Command{
	Use:   "lint-title [title]",
	Short: "Validate a pull-request title against the commit grammar",
	Long: `Checks a PR title against the conventional-commit grammar
(type(scope): subject). The title comes from the first argument, from the
--event payload file, or from $GITHUB_EVENT_PATH when running as a GitHub
Actions step. On failure a markdown explanation is appended to
$GITHUB_STEP_SUMMARY (when set) and the command exits 1.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eventPath, _ := cmd.Flags().GetString("event")
		rulesPath, _ := cmd.Flags().GetString("rules")

		title, err := resolveTitle(args, eventPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		rules := commitlint.Default()
		if rulesPath != "" {
			rules, err = commitlint.Load(rulesPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		reporter := ci.NewReporter()
		if v := rules.Validate(title); v != nil {
			reporter.Failure(title, v, rules)
			reporter.Close()
			os.Exit(1)
		}
		reporter.Success(title)
		reporter.Close()
	},
}

// resolveTitle picks the title source: positional argument, then the --event
// file, then the $GITHUB_EVENT_PATH file.
func resolveTitle(args []string, eventPath string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if eventPath != "" {
		return ci.TitleFromEvent(eventPath)
	}
	if path := os.Getenv("GITHUB_EVENT_PATH"); path != "" {
		return ci.TitleFromEvent(path)
	}
	return "", fmt.Errorf("no title given: pass one as an argument, via --event, or set GITHUB_EVENT_PATH")
}

func init() {
	rootCmd.AddCommand(lintTitleCmd)
	lintTitleCmd.Flags().String("event", "", "Path to a GitHub event payload file")
	lintTitleCmd.Flags().String("rules", "", "Path to a YAML rules file overriding the default grammar")
}
