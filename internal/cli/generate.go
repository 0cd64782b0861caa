package cli

import (
	"fmt"

	"exam-prep/internal/domain"

	"github.com/spf13/cobra"
)

var (
	topic         string
	questionCount int
)

var mcqsCmd = &cobra.Command{
	Use:   "mcqs",
	Short: "Generate multiple-choice questions",
	Long:  `Generates numbered multiple-choice questions with an answer key on the last page.`,
	Args:  cobra.NoArgs,
	RunE:  runMCQs,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate short revision notes",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

var tutorialCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Generate a long-form tutorial",
	Long:  `Generates a multi-chapter tutorial with code blocks, tips, and page numbers.`,
	Args:  cobra.NoArgs,
	RunE:  runTutorial,
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List suggested topics",
	Args:  cobra.NoArgs,
	RunE:  runTopics,
}

func init() {
	for _, cmd := range []*cobra.Command{mcqsCmd, summaryCmd, tutorialCmd} {
		cmd.Flags().StringVarP(&topic, "topic", "t", "", "study topic")
		_ = cmd.MarkFlagRequired("topic")
		rootCmd.AddCommand(cmd)
	}
	mcqsCmd.Flags().IntVarP(&questionCount, "count", "n", domain.DefaultQuestions, "number of questions (1-50)")
	rootCmd.AddCommand(topicsCmd)
}

func runMCQs(cmd *cobra.Command, _ []string) error {
	if err := requireStudyService(); err != nil {
		return err
	}
	artifact, err := studyService.GenerateMCQs(cmd.Context(), topic, questionCount)
	if err != nil {
		return fmt.Errorf("failed to generate MCQs: %w", err)
	}
	return save(cmd, artifact)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	if err := requireStudyService(); err != nil {
		return err
	}
	artifact, err := studyService.GenerateSummary(cmd.Context(), topic)
	if err != nil {
		return fmt.Errorf("failed to generate summary: %w", err)
	}
	return save(cmd, artifact)
}

func runTutorial(cmd *cobra.Command, _ []string) error {
	if err := requireStudyService(); err != nil {
		return err
	}
	artifact, err := studyService.GenerateTutorial(cmd.Context(), topic)
	if err != nil {
		return fmt.Errorf("failed to generate tutorial: %w", err)
	}
	return save(cmd, artifact)
}

func runTopics(cmd *cobra.Command, _ []string) error {
	topics := domain.CommonTopics
	if studyService != nil {
		topics = studyService.GetTopics()
	}
	for _, t := range topics {
		cmd.Println(t)
	}
	return nil
}

func save(cmd *cobra.Command, artifact *domain.Artifact) error {
	path, err := writeArtifact(outputDir(), artifact)
	if err != nil {
		return err
	}
	cmd.Printf("Saved %s (%d pages)\n", path, artifact.Pages)
	return nil
}
