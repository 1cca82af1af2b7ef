package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mediavault/cmd/app/commands"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-master-key",
			Usage: "Generate a random MASTER_KEY for credential encryption",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateMasterKey(commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
	}
}
