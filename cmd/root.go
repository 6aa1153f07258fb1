package cmd

import (
	"fmt"
	"os"

	"github.com/make-os/dao/cmd/govcmd"
	"github.com/make-os/dao/config"
	"github.com/make-os/dao/pkgs/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thoas/go-funk"
)

var (
	// BuildVersion is the build version set by goreleaser
	BuildVersion = ""

	// BuildCommit is the git hash of the build. It is set by goreleaser
	BuildCommit = ""

	// GoVersion is the version of go used to build the client
	GoVersion = ""
)

var (
	log logger.Logger

	// cfg is the application config
	cfg = config.GetConfig()
)

// Execute the root command
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd represents the base command when called without any sub-commands
var RootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "A quorum-gated treasury governance engine",
	Long:  ``,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {

		// Run pre-run routine if current called command is not in the pre-run ignore list
		preRunIgnoreList := []string{cmd.Root().Name(), "help", "completion"}
		if !funk.ContainsString(preRunIgnoreList, cmd.CalledAs()) {
			preRun()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		version, _ := cmd.Flags().GetBool("version")
		if version {
			fmt.Println("Client:", BuildVersion)
			fmt.Println("Build:", BuildCommit)
			fmt.Println("Go:", GoVersion)
			return
		}
		_ = cmd.Help()
	},
}

func preRun() {
	if err := config.Configure(viper.GetViper(), cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	log = cfg.G().Log
	log.Debug("Configured", "home", cfg.DataDir(), "dev", cfg.IsDev())
}

func init() {
	RootCmd.Flags().SortFlags = false
	RootCmd.AddCommand(
		govcmd.InitCmd,
		govcmd.FundCmd,
		govcmd.CreditCmd,
		govcmd.ProposeCmd,
		govcmd.VoteCmd,
		govcmd.FinalizeCmd,
		govcmd.ProposalCmd,
		govcmd.InfoCmd,
		govcmd.SeedCmd,
	)

	// Register flags
	RootCmd.PersistentFlags().String("home", config.DefaultDataDir, "Set the path to the home directory")
	RootCmd.PersistentFlags().String("home.prefix", "", "Adds a prefix to the home directory in dev mode")
	RootCmd.PersistentFlags().Bool("dev", false, "Enables development mode")
	RootCmd.PersistentFlags().Bool("no-log", false, "Disables loggers")
	RootCmd.PersistentFlags().Bool("no-colors", false, "Disables output colors")
	RootCmd.PersistentFlags().String("loglevel", "", "Set log level for modules, e.g [dao=5]")
	RootCmd.Flags().BoolP("version", "v", false, "Print version information")

	// Viper bindings
	_ = viper.BindPFlag("dev", RootCmd.PersistentFlags().Lookup("dev"))
	_ = viper.BindPFlag("home", RootCmd.PersistentFlags().Lookup("home"))
	_ = viper.BindPFlag("home.prefix", RootCmd.PersistentFlags().Lookup("home.prefix"))
	_ = viper.BindPFlag("no-log", RootCmd.PersistentFlags().Lookup("no-log"))
	_ = viper.BindPFlag("no-colors", RootCmd.PersistentFlags().Lookup("no-colors"))
	_ = viper.BindPFlag("loglevel", RootCmd.PersistentFlags().Lookup("loglevel"))
}
