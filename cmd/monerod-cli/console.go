package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xmrtools/monerod-go/rpc/daemonrpc"
	"github.com/xmrtools/monerod-go/util"

	"github.com/ergochat/readline"
	"github.com/spf13/cobra"
)

type Cmd struct {
	Names  []string
	Args   string
	Action func(args []string)
}

type Commands []Cmd

// Do implements readline's AutoComplete over the primary command names.
func (c Commands) Do(line []rune, pos int) ([][]rune, int) {
	if len(line) == 0 {
		return [][]rune{}, 0
	}

	lineStr := string(line)

	sols := [][]rune{}

	for _, v := range c {
		name := v.Names[0]
		if len(name) >= len(lineStr) && strings.HasPrefix(name, lineStr) {
			sols = append(sols, []rune(name[len(lineStr):]))
		}
	}

	return sols, pos
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive daemon console",
	Args:  cobra.NoArgs,
	RunE:  runConsole,
}

func runConsole(cmd *cobra.Command, _ []string) error {
	c := client()

	// one console command per cataloged method, taking an optional JSON
	// params value
	commands := Commands{}
	invoke := func(method string) func(args []string) {
		return func(args []string) {
			var params any
			if len(args) > 0 {
				if err := json.Unmarshal([]byte(strings.Join(args, " ")), &params); err != nil {
					Log.Err("params must be a single JSON value:", err)
					return
				}
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			body, err := c.Invoke(ctx, method, params)
			if err != nil {
				Log.Err(err)
				return
			}
			fmt.Println(formatBody(body))
		}
	}
	for _, m := range daemonrpc.Methods() {
		commands = append(commands, Cmd{
			Names:  []string{m},
			Args:   "[params-json]",
			Action: invoke(m),
		})
	}
	commands = append(commands, Cmd{
		Names: []string{"help"},
		Action: func(args []string) {
			Log.Info("List of available commands:")
			for _, v := range commands {
				Log.Infof("%s %s", util.PadR(v.Names[0], 24), v.Args)
			}
		},
	}, Cmd{
		Names: []string{"exit", "quit"},
	})

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32m>\033[0m ",
		AutoComplete:    commands,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	Log.SetStdout(l.Stdout())
	Log.SetStderr(l.Stderr())

	Log.Infof("Using daemon %s; type help for a list of commands", c.DaemonAddress)

	for {
		line, err := l.ReadLine()
		if err != nil {
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		name := strings.ToLower(fields[0])
		if name == "exit" || name == "quit" {
			return nil
		}

		found := false
		for _, v := range commands {
			for _, n := range v.Names {
				if n == name {
					v.Action(fields[1:])
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			Log.Err("unknown command", name)
		}
	}
}
