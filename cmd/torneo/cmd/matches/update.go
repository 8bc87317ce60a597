package matches

import (
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var updateFlags matchFlags

var updateCmd = &cobra.Command{
	Use:   "update <match-id>",
	Short: "Change a match or record its result",
	Long: `Updates a match. Fields that are not given keep their current value,
so recording a result only needs the two scores.`,
	Example: `  torneo matches update 12 --score-a 11 --score-b 9`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathManage)
		if err != nil {
			return err
		}
		id := users.ID(args[0])
		current, err := a.Match(cmd.Context(), id)
		if err != nil {
			return err
		}

		in := updateFlags.apply(cmd, tournament.InputFromMatch(current))
		if err := a.UpdateMatch(cmd.Context(), id, in); err != nil {
			return err
		}
		pterm.Success.Printf("Match %s updated\n", id)
		return nil
	},
}

func init() {
	updateFlags.register(updateCmd)
}
