package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/supaplex"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "supaplex"
	app.Usage = "Supaplex graphics extraction utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "extract",
			Usage:       "Decode .DAT graphics into PNG sprite sheets",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "palette-file",
					EnvVars: []string{"SUPAPLEX_PALETTES"},
					Usage:   "path to PALETTES.DAT",
				},
				&cli.StringFlag{
					Name:  "output-dir",
					Value: "dat_png",
					Usage: "destination directory for the PNG files",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(ioutil.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				s := supaplex.New(logger)

				results, err := s.Extract(c.Args().First(), c.String("palette-file"), c.String("output-dir"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				extracted := 0
				for _, r := range results {
					switch r.Status {
					case supaplex.StatusExtracted:
						fmt.Println("Wrote", r.Output)
						extracted++
					case supaplex.StatusFailed:
						fmt.Fprintf(os.Stderr, "Failed to convert %s: %v\n", r.Name, r.Err)
					}
				}

				if extracted == 0 {
					return cli.NewExitError("no files converted", 1)
				}

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List known .DAT resources",
			Description: "",
			Action: func(c *cli.Context) error {
				for _, name := range supaplex.Resources() {
					spec, err := supaplex.LookupSpec(name)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					fmt.Printf("%-12s %4d x %-4d %3d tile(s)\n", name, spec.SheetWidth(), spec.SheetHeight(), spec.Tiles)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
