package main

import (
	"fmt"

	"github.com/xmrtools/monerod-go/util"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize the daemon state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client()

		info, err := c.GetInfo(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "get_info")
		}
		header, err := c.GetLastBlockHeader(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "get_last_block_header")
		}

		bold := color.New(color.Bold)
		green := color.New(color.FgGreen)

		bold.Printf("Daemon %s\n", c.DaemonAddress)
		row("Status", green.Sprint(info.Status))
		row("Height", fmt.Sprint(info.Height))
		row("Target height", fmt.Sprint(info.TargetHeight))
		row("Difficulty", fmt.Sprint(info.Difficulty))
		row("Top block", header.BlockHeader.Hash)
		row("Tx pool", fmt.Sprint(info.TxPoolSize))
		row("Connections", fmt.Sprintf("%d in / %d out",
			info.IncomingConnectionsCount, info.OutgoingConnectionsCount))
		return nil
	},
}

func row(name, value string) {
	fmt.Printf("%s %s\n", util.PadL(name+":", 15), value)
}
