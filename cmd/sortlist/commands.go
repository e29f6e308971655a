package main

import "github.com/urfave/cli/v3"

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "theme",
			Usage: "Override the configured theme (classic, neon, mono)",
		},
		&cli.BoolFlag{
			Name:  "no-mouse",
			Usage: "Disable mouse drag and click",
		},
		&cli.StringSliceFlag{
			Name:    "item",
			Aliases: []string{"i"},
			Usage:   "Start with an item, as Category:content (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "summary",
			Usage: "Print the final list when the session ends",
		},
	}
}

// runCommand starts the interactive list (also the default action).
// Its flags live on the root command and are inherited.
func runCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Open the interactive list",
		Action: r.RunList,
	}
}

func categoriesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "categories",
		Usage:  "List the available categories",
		Action: r.Categories,
	}
}

// configCommand manages the TOML config file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the example configuration to --config",
				Action: r.ConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: r.ConfigShow,
			},
		},
	}
}
