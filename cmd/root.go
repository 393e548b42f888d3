package cmd

import (
	"github.com/spf13/cobra"

	"mdmerge/pkg/merge"
	"mdmerge/pkg/version"
)

// NewRootCmd builds the command tree. The root command performs the merge.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "mdmerge <input_dir> <output_file>",
		Short: "Merge the files of a directory into a single file",
		Long: `mdmerge concatenates every file directly inside input_dir that matches the
pattern (default "*.md") into output_file. Files are taken in sorted path order
and separated by a horizontal rule ("\n\n---\n\n").`,
		Version:       version.Get().Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, cfgFile, args[0], args[1])
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.StringP("pattern", "p", merge.DefaultPattern, "Glob pattern matched inside input_dir")
	flags.StringSliceP("exclude", "e", nil, "Exclude files whose path relative to input_dir matches this ignore-style pattern (repeatable)")
	flags.String("exclude-from", "", "Read exclude patterns from a file")
	flags.Bool("atomic", false, "Write to a temporary file and rename it into place only on success")
	flags.BoolP("quiet", "q", false, "Do not print progress messages")
	flags.Bool("debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
