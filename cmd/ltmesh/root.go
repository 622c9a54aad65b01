package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is the semantic version number, set at build time.
	Version = "dev"
	// Build is the build date, set at build time.
	Build string
)

// newRootCmd assembles the command tree around one viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "ltmesh",
		Short: "Logarithm and tan frequency mesh generator",
		Long: `ltmesh generates a non-uniform mesh that is logarithmic close to zero and
follows a tan law towards large frequencies, together with the trapezoid
weights dh used to integrate over it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Usage()
		},
	}
	rootCmd.PersistentFlags().String("config", "", "Configuration file (any format viper reads)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print detailed execution info")
	v.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newVersionCmd(), newGenerateCmd(v))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ltmesh version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ltmesh "+Version)
			if Build != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Build Time: ", Build)
			}
		},
	}
}

// initLog configures logrus the way every ltmesh command expects it.
func initLog(cmd *cobra.Command, verbose bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(cmd.ErrOrStderr())
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
