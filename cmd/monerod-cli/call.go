package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <method> [params-json]",
	Short: "Invoke a daemon RPC method",
	Long: `Invoke any cataloged daemon method. Params, when the method takes
some, are given as a single JSON value:

  monerod-cli call getblockcount
  monerod-cli call on_getblockhash '[1000]'
  monerod-cli call getblocktemplate '{"wallet_address":"44Af...","reserve_size":8}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var params any
		if len(args) == 2 {
			if err := json.Unmarshal([]byte(args[1]), &params); err != nil {
				return errors.Wrap(err, "params must be a single JSON value")
			}
		}

		body, err := client().Invoke(cmd.Context(), args[0], params)
		if err != nil {
			return errors.Wrap(err, args[0])
		}

		fmt.Println(formatBody(body))
		return nil
	},
}

// formatBody re-indents decoded responses; raw bodies pass through
// untouched.
func formatBody(body []byte) string {
	if rawResponses {
		return string(body)
	}
	buf := bytes.Buffer{}
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return strings.TrimSpace(buf.String())
}
