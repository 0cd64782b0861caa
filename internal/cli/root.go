// Package cli implements the examprep command line: one command per study
// aid plus a batch command over many topics.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"exam-prep/internal/domain"
	"exam-prep/internal/service"

	"github.com/spf13/cobra"
)

// Services used by the commands. Set by main before Execute.
var (
	studyService     service.StudyService
	batchService     service.BatchService
	defaultOutputDir = "./output"
)

// outDir is the --out flag shared by every generating command.
var outDir string

var rootCmd = &cobra.Command{
	Use:   "examprep",
	Short: "Generate printable study aids",
	Long: `Generates study aids for a topic with a language model and saves them as PDF:
multiple-choice questions with an answer key, short revision notes, and long
tutorials with code blocks and tips.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory (defaults to document.output_dir)")
}

// SetServices injects the services and the configured output directory.
func SetServices(study service.StudyService, batch service.BatchService, outputDir string) {
	studyService = study
	batchService = batch
	if outputDir != "" {
		defaultOutputDir = outputDir
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// outputDir resolves the directory documents are written to.
func outputDir() string {
	if outDir != "" {
		return outDir
	}
	return defaultOutputDir
}

// writeArtifact saves the artifact as {dir}/{file name} and returns the path.
func writeArtifact(dir string, artifact *domain.Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, artifact.FileName)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func requireStudyService() error {
	if studyService == nil {
		return errors.New("study service not configured")
	}
	return nil
}
