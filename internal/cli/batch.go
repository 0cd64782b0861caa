package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"exam-prep/internal/domain"
	"exam-prep/internal/service"

	"github.com/spf13/cobra"
)

var (
	batchKind        string
	batchTopics      string
	batchCount       int
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate one kind of document for many topics",
	Long: `Generates the same kind of document (mcqs, summary or tutorial) for several
topics concurrently. Without --topics the suggested topic list is used.
A topic that fails is reported and the rest still complete.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchKind, "kind", "k", string(domain.KindSummary), "document kind: mcqs, summary or tutorial")
	batchCmd.Flags().StringVar(&batchTopics, "topics", "", "comma-separated topics (defaults to the suggested list)")
	batchCmd.Flags().IntVarP(&batchCount, "count", "n", domain.DefaultQuestions, "questions per topic for mcqs")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", service.DefaultBatchConcurrency, "documents generated at once")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchService == nil {
		return errors.New("batch service not configured")
	}

	kind, err := domain.ParseDocumentKind(batchKind)
	if err != nil {
		return err
	}

	topics := splitTopics(batchTopics)
	if len(topics) == 0 {
		topics = domain.CommonTopics
	}

	dir := outputDir()
	var mu sync.Mutex
	sink := func(_ context.Context, artifact *domain.Artifact) error {
		path, err := writeArtifact(dir, artifact)
		if err != nil {
			return err
		}
		mu.Lock()
		cmd.Printf("Saved %s\n", path)
		mu.Unlock()
		return nil
	}

	result, err := batchService.GenerateBatch(cmd.Context(), service.BatchRequest{
		Kind:        kind,
		Topics:      topics,
		Count:       batchCount,
		Concurrency: batchConcurrency,
	}, sink)
	if err != nil {
		return fmt.Errorf("batch aborted: %w", err)
	}

	cmd.Printf("Generated %d of %d documents\n", len(result.Succeeded), len(topics))
	if len(result.Failed) == 0 {
		return nil
	}

	failed := make([]string, 0, len(result.Failed))
	for t := range result.Failed {
		failed = append(failed, t)
	}
	sort.Strings(failed)
	for _, t := range failed {
		cmd.PrintErrf("  %s: %v\n", t, result.Failed[t])
	}
	return fmt.Errorf("%d topics failed", len(failed))
}

func splitTopics(s string) []string {
	var topics []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
