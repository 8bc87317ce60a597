package matches

import (
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/spf13/cobra"
)

var filter string

// MatchesCmd lists matches and groups the organizer commands
var MatchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List matches",
	Long: `Lists the tournament matches. Use --filter to show only completed or
scheduled ones. Organizers can create, update and delete matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := tournament.ParseFilter(filter)
		if err != nil {
			return err
		}
		a, err := cli.Open(cmd, routes.PathMatches)
		if err != nil {
			return err
		}
		matches, err := a.Matches(cmd.Context(), f)
		if err != nil {
			return err
		}
		cli.PrintMatches(matches, f)
		return nil
	},
}

func init() {
	MatchesCmd.Flags().StringVar(&filter, "filter", string(tournament.FilterAll), "Which matches to show: all, completed or scheduled")

	MatchesCmd.AddCommand(createCmd)
	MatchesCmd.AddCommand(updateCmd)
	MatchesCmd.AddCommand(deleteCmd)
}
