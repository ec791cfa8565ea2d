// Command desim-demo runs one of the end-to-end scenarios from the desim
// kernel's test suite as a standalone program, so the engine's behavior is
// directly observable rather than only asserted in unit tests.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "desim-demo",
		Short: "Run a scenario against the desim discrete-event kernel",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level engine logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logLevel = logrus.DebugLevel
		} else {
			logLevel = logrus.InfoLevel
		}
	}

	root.AddCommand(
		newSelfLoopCmd(),
		newUnicastCmd(),
		newMultiDelayCmd(),
		newBroadcastCmd(),
		newMeshCmd(),
		newTimerCmd(),
		newBatchCmd(),
	)
	return root
}

// logLevel is set from the --verbose persistent flag before any subcommand
// runs, and read by each scenario when it builds its Simulator's logger.
var logLevel = logrus.InfoLevel

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logLevel)
	return l
}
