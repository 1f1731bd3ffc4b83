package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/strum-player/strum/internal/youtube"
)

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List curated mood mixes",
	Long:  `List the curated mood mixes available for 'strum play --mood'.`,
	RunE:  runMoods,
}

func init() {
	rootCmd.AddCommand(moodsCmd)
}

func runMoods(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(youtube.Moods)
	}

	table := NewTable("MOOD", "QUERY")
	for _, m := range youtube.Moods {
		table.Row(m.Emoji+" "+m.Name, m.Query)
	}
	table.Flush()
	return nil
}
