// Command coaster builds rollercoaster rails and runs the ride, flock and avatar headless or in a terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	debug      bool
}

func rootCmd() *cobra.Command {
	opts := &options{}
	var logFile *os.File

	c := &cobra.Command{
		Use:           "coaster",
		Short:         "VR rollercoaster track builder and ride simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(opts.debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}
	c.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (yaml, toml or json)")
	c.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)

	c.AddCommand(
		BuildCmd(opts),
		RideCmd(opts),
		FlockCmd(opts),
		SandboxCmd(opts),
	)
	return c
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "coaster: %v\n", err)
		os.Exit(1)
	}
}
