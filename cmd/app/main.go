package main

import (
	"context"
	"fmt"
	"os"

	"github.com/OniDaito/crabseal/internal/core"
	"github.com/OniDaito/crabseal/internal/logger"
	"github.com/urfave/cli"
)

var app = cli.NewApp()
var log = logger.Log

func init() {
	app.Name = "crabseal"
	app.Usage = "Render saved array dumps into a colorized video"
	app.UsageText = "crabseal [--base file] [--mask file] [--outpath dir]\n   crabseal info filename"
	app.HideHelp = true
	app.HideVersion = true
	app.ArgsUsage = ""
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "base, b",
			Value: ".",
			Usage: "path to the saved base array",
		},
		cli.StringFlag{
			Name:  "mask, m",
			Usage: "path to an optional mask array to overlay",
		},
		cli.StringFlag{
			Name:  "outpath, o",
			Value: ".",
			Usage: "directory the video is written into",
		},
	}
	app.Action = func(c *cli.Context) error {
		cr := core.NewCore(context.Background())
		out, err := cr.Render(c.String("base"), c.String("mask"), c.String("outpath"))
		if err != nil {
			return err
		}
		log.Infof("Video saved to %s", out)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:    "info",
			Aliases: []string{"i"},
			Usage:   "Print dump header and value stats",
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				cr := core.NewCore(context.Background())
				return cr.Info(filename)
			},
		},
	}
}

func getFilename(c *cli.Context) (string, error) {
	f := c.Args().Get(0)
	if f == "" {
		return "", fmt.Errorf("Filename is required")
	}
	return f, nil
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
