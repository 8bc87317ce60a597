package matches

import (
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	"github.com/jrsteele09/torneo-pingpong/internal/utils"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// matchFlags are shared by create and update.
type matchFlags struct {
	playerA string
	playerB string
	date    string
	scoreA  int
	scoreB  int
}

func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.playerA, "player-a", "", "Participant ID of player A")
	cmd.Flags().StringVar(&f.playerB, "player-b", "", "Participant ID of player B")
	cmd.Flags().StringVar(&f.date, "date", "", "Match date, YYYY-MM-DD")
	cmd.Flags().IntVar(&f.scoreA, "score-a", 0, "Points of player A (set together with --score-b)")
	cmd.Flags().IntVar(&f.scoreB, "score-b", 0, "Points of player B (set together with --score-a)")
}

// apply writes the flags the user actually set over in.
func (f *matchFlags) apply(cmd *cobra.Command, in tournament.MatchInput) tournament.MatchInput {
	if cmd.Flags().Changed("player-a") {
		in.PlayerA = users.ID(f.playerA)
	}
	if cmd.Flags().Changed("player-b") {
		in.PlayerB = users.ID(f.playerB)
	}
	if cmd.Flags().Changed("date") {
		in.Date = f.date
	}
	if cmd.Flags().Changed("score-a") {
		in.ScoreA = utils.Ptr(f.scoreA)
	}
	if cmd.Flags().Changed("score-b") {
		in.ScoreB = utils.Ptr(f.scoreB)
	}
	return in
}

var createFlags matchFlags

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Schedule a match, optionally with its result",
	Example: `  torneo matches create --player-a 3 --player-b 7 --date 2024-05-01
  torneo matches create --player-a 3 --player-b 7 --date 2024-05-01 --score-a 11 --score-b 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathManage)
		if err != nil {
			return err
		}
		in := createFlags.apply(cmd, tournament.MatchInput{})
		if err := a.CreateMatch(cmd.Context(), in); err != nil {
			return err
		}
		pterm.Success.Println("Match created")
		return nil
	},
}

func init() {
	createFlags.register(createCmd)
}
