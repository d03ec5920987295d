package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/laminate/internal/ruleset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in rulesets and their key rules",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, name := range ruleset.PresetNames() {
			rs, _ := ruleset.Preset(name)
			fmt.Fprintf(out, "%s\n", rs.Name)
			fmt.Fprintf(out, "  targets:            %s\n", strings.Join(rs.Targets, ", "))
			fmt.Fprintf(out, "  output suffix:      %s\n", rs.OutputSuffix)
			fmt.Fprintf(out, "  content extensions: %s\n", strings.Join(rs.AllowExts, " "))
			if rs.DetectBinary {
				fmt.Fprintf(out, "  binary sniffing:    enabled (%d known-binary extensions)\n", len(rs.BinaryExts))
			}
			if rs.MaxFileSize > 0 {
				fmt.Fprintf(out, "  max content size:   %d bytes\n", rs.MaxFileSize)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
