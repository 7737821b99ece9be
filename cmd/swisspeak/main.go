package main

import (
	"context"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/tools4origins/swisspeak"
	"github.com/tools4origins/swisspeak/config"
)

const defaultConfig = "swisspeak.yaml"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func newApp(c *cli.Context) (*swisspeak.App, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("workers") {
		cfg.Processing.Workers = c.Int("workers")
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return swisspeak.New(cfg, logger), nil
}

func coordinate(c *cli.Context, i int) (int, error) {
	v, err := strconv.Atoi(c.Args().Get(i))
	if err != nil {
		return 0, cli.Exit("peak coordinates must be integers", 1)
	}
	return v, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "swisspeak"
	app.Usage = "ASCII raster grid toolbox"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"SWISSPEAK_CONFIG"},
			Value:   defaultConfig,
			Usage:   "path to configuration file",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "number of parallel workers for classification",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "dominance",
			Usage:     "Classify every cell by whether the peak dominates it",
			ArgsUsage: "INPUT OUTPUT PEAKCOL PEAKROW",
			Action: func(c *cli.Context) error {
				if c.NArg() < 4 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				peakCol, err := coordinate(c, 2)
				if err != nil {
					return err
				}
				peakRow, err := coordinate(c, 3)
				if err != nil {
					return err
				}

				a, err := newApp(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := a.Dominance(context.Background(), c.Args().Get(0), c.Args().Get(1), peakCol, peakRow); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "downsample",
			Usage:     "Reduce a grid by block",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "factor",
					Usage: "block edge length (defaults from configuration)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				a, err := newApp(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := a.Downsample(c.Args().Get(0), c.Args().Get(1), c.Int("factor")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "restrict",
			Usage:     "Keep grid values only where a second grid has data",
			ArgsUsage: "INPUT MASK OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				a, err := newApp(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := a.Restrict(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "image",
			Usage:     "Render a grid as a color-coded image",
			ArgsUsage: "INPUT [OUTPUT]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				in := c.Args().Get(0)
				out := c.Args().Get(1)
				if out == "" {
					out = strings.TrimSuffix(in, ".asc") + ".png"
				}

				a, err := newApp(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := a.ToImage(in, out); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "parse",
			Usage:     "Convert an image to a presence grid",
			ArgsUsage: "INPUT [OUTPUT]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				in := c.Args().Get(0)
				out := c.Args().Get(1)
				if out == "" {
					out = strings.TrimSuffix(in, ".png") + ".from_image.asc"
				}

				a, err := newApp(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := a.FromImage(in, out); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
