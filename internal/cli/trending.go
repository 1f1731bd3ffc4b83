package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show trending music",
	Long:  `List the music videos currently trending in the configured region.`,
	RunE:  runTrending,
}

func init() {
	rootCmd.AddCommand(trendingCmd)
}

func runTrending(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := newYouTubeClient().Trending(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch trending: %w", err)
	}

	outputResults(results, "no trending music found")
	return nil
}
