package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	var (
		role         string
		topK         int
		withFeedback bool
	)

	cmd := &cobra.Command{
		Use:   "analyze-resume <file>",
		Short: "Score a local resume, match it against the job catalog and optionally ask for feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], role, topK, withFeedback)
		},
	}

	cmd.Flags().StringVar(&role, "role", "General", "role the feedback should target")
	cmd.Flags().IntVar(&topK, "top", services.DefaultTopK, "number of job matches to show")
	cmd.Flags().BoolVar(&withFeedback, "feedback", false, "request feedback from the configured chat provider")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, path, role string, topK int, withFeedback bool) error {
	log.Printf("📄 Processing: %s", path)

	text, err := services.NewTextExtractor().ExtractText(path)
	if err != nil {
		return fmt.Errorf("extract %s: %w", path, err)
	}
	log.Printf("   ✅ Extracted %d characters", len([]rune(text)))

	score := services.NewResumeScorer().Score(text)
	matcher := services.NewJobMatcher(services.DefaultJobCatalog)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("📊 Resume score: %d/100\n\n", score)
	fmt.Println("🎯 Job matches:")
	fmt.Println(services.FormatMatches(matcher.Match(text, topK)))

	for _, result := range matcher.Scores(text) {
		log.Printf("   %-20s %d keyword hits", result.Title, result.Score)
	}

	if !withFeedback {
		fmt.Println(strings.Repeat("=", 60))
		return nil
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	zlog, err := logger.New(false, false)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	provider, err := services.NewChatProvider(ctx, cfg.ProviderSettings())
	if err != nil {
		return err
	}

	feedback, err := services.NewFeedbackService(provider, cfg.Provider.Timeout, zlog).
		GenerateFeedback(ctx, text, role)
	if err != nil {
		zlog.Warn("feedback unavailable", zap.Error(err))
	}

	fmt.Println("\n📝 Feedback:")
	fmt.Println(services.CleanText(services.FeedbackOrSentinel(feedback, err)))
	fmt.Println(strings.Repeat("=", 60))

	return nil
}
