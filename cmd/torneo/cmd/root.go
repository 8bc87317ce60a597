package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/torneo-pingpong/app"
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/cmd/auth"
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/cmd/matches"
	"github.com/jrsteele09/torneo-pingpong/cmd/torneo/internal/cli"
	"github.com/jrsteele09/torneo-pingpong/internal/config"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	storeKind string
	dataDir   string
	redisAddr string
	logLevel  string

	client *app.App
)

var rootCmd = &cobra.Command{
	Use:   "torneo",
	Short: "Torneo PingPong - company table tennis tournament client",
	Long: `torneo is the command-line client of the company table tennis tournament.
Sign up, enroll, follow matches and standings, and, as an organizer,
schedule matches and record their results.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New(
			config.WithValue(config.APIBaseURLVar, serverURL),
			config.WithValue(config.TokenStoreVar, storeKind),
			config.WithValue(config.DataFolderVar, dataDir),
			config.WithValue(config.RedisAddrVar, redisAddr),
			config.WithValue(config.LogLevelVar, logLevel),
		)
		setupLogging(cfg.GetLogLevel())

		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		client = a
		a.Boot(cmd.Context())
		cmd.SetContext(cli.Inject(cmd.Context(), a))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if client == nil {
			return nil
		}
		return client.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a := cli.MustFromContext(cmd.Context())
		displayAppname(a.Config.GetAppName())

		s := a.Sessions.Snapshot()
		if s.Profile != nil {
			pterm.Info.Printf("Signed in as %s\n", s.Profile.FullName())
		} else if s.Authenticated() {
			pterm.Info.Printf("Signed in as user %s\n", s.UserID())
		} else {
			pterm.Info.Println("Not signed in")
		}
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.Explain(err)
		if client != nil {
			_ = client.Close()
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Tournament API URL (default from API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Token store: file, memory or redis (default from TOKEN_STORE)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Folder of the file token store (default from DATA_FOLDER)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "Redis address of the redis token store (default from REDIS_ADDR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default from LOG_LEVEL)")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(matches.MatchesCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(participantsCmd)
	rootCmd.AddCommand(standingsCmd)
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
