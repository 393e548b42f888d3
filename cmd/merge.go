package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mdmerge/pkg/config"
	"mdmerge/pkg/logging"
	"mdmerge/pkg/merge"
	"mdmerge/pkg/version"
)

// runMerge resolves the configuration, sets up logging and runs the merge.
func runMerge(cmd *cobra.Command, cfgFile, inputDir, outputPath string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug, "mdmerge", version.Get().Version)
	if err != nil {
		// Fall back to a silent logger; the merge itself does not depend on it.
		log.Printf("Failed to initialize logger: %v", err)
	}
	defer func() {
		if syncErr := logging.Sync(logger); syncErr != nil {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}()

	var reporter merge.Reporter = merge.NewTextReporter(cmd.OutOrStdout())
	if cfg.Quiet {
		reporter = merge.Discard
	}

	res, err := merge.Run(cfg.Options(inputDir, outputPath), reporter, logger)
	if err != nil {
		logger.Error("mdmerge execution failed", zap.Error(err))
		return fmt.Errorf("merge failed: %w", err)
	}

	logger.Debug("mdmerge finished",
		zap.Bool("written", res.Written),
		zap.Int("files", len(res.Files)),
		zap.Int64("bytes", res.Bytes))
	return nil
}
