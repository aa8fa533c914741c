package main

import (
	"fmt"
	"os"
	"time"

	"github.com/xmrtools/monerod-go/config"
	"github.com/xmrtools/monerod-go/logger"
	"github.com/xmrtools/monerod-go/rpc"
	"github.com/xmrtools/monerod-go/rpc/daemonrpc"

	"github.com/spf13/cobra"
)

var Log = logger.New()

var default_rpc = fmt.Sprintf("http://127.0.0.1:%d", config.RPC_BIND_PORT)

var (
	daemonAddress string
	rawResponses  bool
	timeout       time.Duration
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "monerod-cli",
	Short: "Command-line client for a monerod-compatible daemon",
	Long: `monerod-cli talks to the admin and query RPC interface of a
monerod-compatible daemon. Every cataloged method can be invoked
generically with "call", and "console" opens an interactive session.

Examples:
  monerod-cli call getblockcount
  monerod-cli call on_getblockhash '[1000]'
  monerod-cli --daemon node.example:18089 status
  monerod-cli console`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			Log.SetLogLevel(2)
			rpc.Log = Log
		}
	},
}

func client() *daemonrpc.Client {
	opts := []daemonrpc.Option{daemonrpc.WithTimeout(timeout)}
	if rawResponses {
		opts = append(opts, daemonrpc.WithRawResponses())
	}
	return daemonrpc.New(daemonAddress, opts...)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", config.NAME, config.VERSION)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&daemonAddress, "daemon", "d", default_rpc,
		fmt.Sprintf("daemon RPC address (public nodes usually listen on %d)", config.RESTRICTED_RPC_PORT))
	rootCmd.PersistentFlags().BoolVar(&rawResponses, "raw", false, "print response bodies without decoding them")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "round-trip timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log wire traffic")

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		Log.Err(err)
		os.Exit(1)
	}
}
