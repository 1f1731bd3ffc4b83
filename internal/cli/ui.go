package cli

import (
	"github.com/spf13/cobra"
	"github.com/strum-player/strum/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch interactive player",
	Long: `Launch the interactive terminal player.

The player provides a live view with:
  • Now Playing - current track, progress, volume
  • Queue - the active play context
  • Liked Songs - your liked tracks
  • Recently Played - play history

Keyboard shortcuts:
  q, Ctrl+C    Quit
  ?            Help
  /            Search
  Space        Play/Pause
  n            Next track
  p            Previous track
  s/r/m        Shuffle / Repeat / Mute
  l            Like track
  +/-          Volume up/down
  Tab          Switch panel`,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	ctrl := newController()
	defer ctrl.Close()

	return tui.Run(ctrl, newYouTubeClient(), cfg.TUI.Theme)
}
