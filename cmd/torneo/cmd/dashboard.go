package cmd

import (
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	"github.com/jrsteele09/torneo-pingpong/routes"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your profile and tournament status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathDashboard)
		if err != nil {
			return err
		}
		s := a.Sessions.Snapshot()
		cli.PrintDashboard(s, a.Router.Links(s))
		return nil
	},
}

var enrollCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Join the tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathDashboard)
		if err != nil {
			return err
		}
		if p := a.Sessions.Snapshot().Profile; p != nil && p.Enrolled {
			pterm.Info.Println("You are already enrolled")
			return nil
		}
		if err := a.Enroll(cmd.Context()); err != nil {
			return err
		}
		pterm.Success.Println("Enrolled in the tournament!")
		return nil
	},
}

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Become a tournament organizer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathDashboard)
		if err != nil {
			return err
		}
		if p := a.Sessions.Snapshot().Profile; p != nil && p.Organizer {
			pterm.Info.Println("You are already an organizer")
			return nil
		}
		if err := a.BecomeOrganizer(cmd.Context()); err != nil {
			return err
		}
		pterm.Success.Println("You are now a tournament organizer")
		pterm.Info.Println("Manage matches with: torneo matches create|update|delete")
		return nil
	},
}

var participantsCmd = &cobra.Command{
	Use:   "participants",
	Short: "List enrolled players",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathParticipants)
		if err != nil {
			return err
		}
		participants, err := a.Participants(cmd.Context())
		if err != nil {
			return err
		}
		cli.PrintParticipants(participants)
		return nil
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the tournament ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cli.Open(cmd, routes.PathStandings)
		if err != nil {
			return err
		}
		rows, err := a.Standings(cmd.Context())
		if err != nil {
			return err
		}
		cli.PrintStandings(rows)
		return nil
	},
}
