package matches

import (
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var confirmed bool

var deleteCmd = &cobra.Command{
	Use:   "delete <match-id>",
	Short: "Delete a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathManage)
		if err != nil {
			return err
		}
		id := users.ID(args[0])

		if !confirmed {
			ok, err := pterm.DefaultInteractiveConfirm.Show("Delete match " + id.String() + "?")
			if err != nil {
				return err
			}
			if !ok {
				pterm.Info.Println("Nothing deleted")
				return nil
			}
		}

		if err := a.DeleteMatch(cmd.Context(), id); err != nil {
			return err
		}
		pterm.Success.Printf("Match %s deleted\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Skip the confirmation prompt")
}
