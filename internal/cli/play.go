package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/strum-player/strum/internal/core"
	"github.com/strum-player/strum/internal/tui"
	"github.com/strum-player/strum/internal/wizard"
	"github.com/strum-player/strum/internal/youtube"
)

var (
	playMood    string
	playFirst   bool
	playShuffle bool
	playNoUI    bool
)

var playCmd = &cobra.Command{
	Use:   "play [query]",
	Short: "Search and play music",
	Long: `Search for a track and start playback.
Without arguments, opens the interactive search.

Examples:
  strum play                       # Interactive search
  strum play "bohemian rhapsody"   # Search and pick a track
  strum play --mood focus          # Play a curated mood mix
  strum play daft punk --first     # Play the top result directly`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playMood, "mood", "", "Play a curated mood mix (romantic, workout, focus, sad, party)")
	playCmd.Flags().BoolVar(&playFirst, "first", false, "Play the top result without prompting")
	playCmd.Flags().BoolVar(&playShuffle, "shuffle", false, "Enable shuffle mode")
	playCmd.Flags().BoolVar(&playNoUI, "no-ui", false, "Play in the terminal without the dashboard")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	yt := newYouTubeClient()

	query := strings.Join(args, " ")
	if playMood != "" {
		mood, ok := youtube.MoodByName(playMood)
		if !ok {
			return fmt.Errorf("unknown mood '%s'", playMood)
		}
		query = mood.Query
		playFirst = true
	}

	var selected *youtube.Result
	var results []youtube.Result

	if playMood == "" && wizard.NeedsTrack(args) {
		// Interactive search
		interactive := wizard.NewInteractive()
		// JSON output implies scripted use, never a prompt.
		interactive.SetEnabled(!JSONOutput())
		interactive.SetSearchFunc(func(q string) ([]youtube.Result, error) {
			qctx, qcancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer qcancel()
			return yt.Search(qctx, q)
		})
		if !interactive.CanInteract() {
			return fmt.Errorf("no query given and no interactive terminal to prompt in")
		}
		sel, err := interactive.PromptSearch()
		if err != nil {
			return err
		}
		if sel == nil {
			return nil // cancelled
		}
		selected = sel
		results = []youtube.Result{*sel}
	} else {
		var err error
		results, err = yt.Search(ctx, query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if len(results) == 0 {
			return fmt.Errorf("no results found for '%s'", query)
		}

		if playFirst || !wizard.IsTerminal() || len(results) == 1 {
			selected = &results[0]
		} else {
			sel, err := wizard.RunTrackPicker(results)
			if err != nil {
				return err
			}
			if sel == nil {
				return nil // cancelled
			}
			selected = sel
		}
	}

	queue := make([]core.Track, len(results))
	for i, r := range results {
		queue[i] = r.Track
	}

	ctrl := newController()
	defer ctrl.Close()

	if playShuffle {
		ctrl.ToggleShuffle()
	}
	ctrl.PlayTrack(selected.Track, queue)

	if playNoUI || !wizard.IsTerminal() {
		return playHeadless(selected.Track)
	}

	return tui.Run(ctrl, yt, cfg.TUI.Theme)
}

// playHeadless plays without the dashboard, blocking until interrupted.
// The controller keeps playing in the background; Close on return tears
// the stream down.
func playHeadless(track core.Track) error {
	outputPlayResult(track)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

func outputPlayResult(track core.Track) {
	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"status":   "playing",
			"video_id": track.VideoID,
			"title":    track.Title,
			"channel":  track.ChannelTitle,
		})
	} else {
		fmt.Printf("▶ Playing %s by %s\n", track.Title, track.ChannelTitle)
		fmt.Println("  Press Ctrl+C to stop")
	}
}
