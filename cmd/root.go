package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agentic-research/laminate/internal/batch"
	"github.com/agentic-research/laminate/internal/ruleset"
)

var (
	inputDir   string
	outputDir  string
	presetName string
	rulesPath  string
	targetList []string
)

func init() {
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "input", "Directory whose subdirectories are scanned as projects")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "Directory receiving one summary file per project")
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "web", "Built-in ruleset: web, build or django")
	rootCmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "Path to a custom YAML ruleset (overrides --preset)")
	rootCmd.Flags().StringSliceVarP(&targetList, "targets", "t", nil, "Override the target subdirectory names")
}

var rootCmd = &cobra.Command{
	Use:   "laminate",
	Short: "Laminate: flatten project trees into reviewable text summaries",
	Long: `Laminate scans every project directory under the input root and
writes one flattened summary per project: an indented structure
listing followed by the contents of the selected source files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Best effort: a missing .env is not an error.
		_ = godotenv.Load()
		applyEnv(cmd)

		rs, err := resolveRuleset()
		if err != nil {
			return err
		}
		if len(targetList) > 0 {
			rs = rs.WithTargets(targetList)
		}

		absIn, err := filepath.Abs(inputDir)
		if err != nil {
			return fmt.Errorf("resolve input directory: %w", err)
		}
		absOut, err := filepath.Abs(outputDir)
		if err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}

		out := cmd.OutOrStdout()
		rule := strings.Repeat("=", 60)
		fmt.Fprintf(out, "%s\nPROJECT SUMMARY GENERATOR (%s)\n%s\n", rule, rs.Name, rule)
		fmt.Fprintf(out, "Input directory: %s\n", absIn)
		fmt.Fprintf(out, "Output directory: %s\n", absOut)
		fmt.Fprintf(out, "Target subdirectories: %s\n%s\n\n", strings.Join(rs.Targets, ", "), rule)

		_, err = batch.Run(osfs.New("/"), absIn, absOut, rs, out, cmd.ErrOrStderr())
		return err
	},
}

// applyEnv fills in flags the user did not set from the environment.
// Explicit flags always win over LAMINATE_* variables.
func applyEnv(cmd *cobra.Command) {
	if v := os.Getenv("LAMINATE_INPUT_DIR"); v != "" && !cmd.Flags().Changed("input") {
		inputDir = v
	}
	if v := os.Getenv("LAMINATE_OUTPUT_DIR"); v != "" && !cmd.Flags().Changed("output") {
		outputDir = v
	}
	if v := os.Getenv("LAMINATE_TARGETS"); v != "" && !cmd.Flags().Changed("targets") {
		targetList = strings.Split(v, ",")
	}
}

func resolveRuleset() (ruleset.Ruleset, error) {
	if rulesPath != "" {
		return ruleset.Load(rulesPath)
	}
	rs, ok := ruleset.Preset(presetName)
	if !ok {
		return ruleset.Ruleset{}, fmt.Errorf("unknown preset %q (have: %s)", presetName, strings.Join(ruleset.PresetNames(), ", "))
	}
	return rs, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
