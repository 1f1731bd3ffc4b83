package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/strum-player/strum/internal/youtube"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the music catalog",
	Long: `Search YouTube for music videos.

Examples:
  strum search "bohemian rhapsody"
  strum search daft punk --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results to display")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := strings.Join(args, " ")
	results, err := newYouTubeClient().Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	outputResults(results, fmt.Sprintf("no results found for '%s'", query))
	return nil
}

// outputResults renders a result list as a table or JSON.
func outputResults(results []youtube.Result, emptyMsg string) {
	if len(results) == 0 {
		fmt.Println(emptyMsg)
		return
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(results)
		return
	}

	table := NewTable("#", "TITLE", "CHANNEL", "DURATION", "VIEWS")
	for i, r := range results {
		views := ""
		if r.ViewCount > 0 {
			views = humanize.SIWithDigits(float64(r.ViewCount), 1, "")
		}
		table.Row(
			strconv.Itoa(i+1),
			TruncateString(r.Track.Title, 50),
			TruncateString(r.Track.ChannelTitle, 25),
			r.Track.Duration,
			views,
		)
	}
	table.Flush()
}
