package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bodgit/mandelpbm"
	"github.com/bodgit/mandelpbm/pbm"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB   = "mandelpbm.db"
	defaultSize = 500
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func output(c *cli.Context) (io.Writer, func() error, error) {
	if file := c.String("output"); file != "" {
		f, err := os.Create(file)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
	return os.Stdout, func() error { return nil }, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "mandelpbm"
	app.Usage = "Mandelbrot set PBM renderer"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"MANDELPBM_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to render catalog",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "render",
			Usage:       "Render the Mandelbrot set as a binary PBM image",
			Description: "",
			ArgsUsage:   "[SIZE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write to file instead of stdout",
				},
				&cli.BoolFlag{
					Name:  "store",
					Usage: "record the render in the catalog instead of writing it out",
				},
			},
			Action: func(c *cli.Context) error {
				size := defaultSize
				if c.NArg() > 0 {
					var err error
					if size, err = strconv.Atoi(c.Args().First()); err != nil {
						return cli.NewExitError(err, 1)
					}
				}
				if size < 1 {
					return cli.NewExitError(fmt.Errorf("size must be positive, got %d", size), 1)
				}

				if c.Bool("store") {
					db, err := mandelpbm.NewCatalog(c.String("db"))
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					defer db.Close()

					m := mandelpbm.New(db, newLogger(c))
					if _, err := m.Store(size); err != nil {
						return cli.NewExitError(err, 1)
					}

					return nil
				}

				w, closer, err := output(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := mandelpbm.Render(w, size); err != nil {
					closer()
					return cli.NewExitError(err, 1)
				}

				if err := closer(); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Print the dimensions of PBM files",
			Description: "",
			ArgsUsage:   "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				for _, file := range c.Args().Slice() {
					f, err := os.Open(file)
					if err != nil {
						return cli.NewExitError(err, 1)
					}

					config, err := pbm.DecodeConfig(f)
					f.Close()
					if err != nil {
						return cli.NewExitError(fmt.Errorf("%s: %v", file, err), 1)
					}

					fmt.Printf("%s: %dx%d\n", file, config.Width, config.Height)
				}

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert an image to binary PBM",
			Description: "Reads a PNG, GIF, JPEG or PBM image and re-encodes it as binary PBM. Images with more than two colors are quantized down to two.",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write to file instead of stdout",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				m, _, err := image.Decode(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				w, closer, err := output(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := pbm.Encode(w, m); err != nil {
					closer()
					return cli.NewExitError(err, 1)
				}

				if err := closer(); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan a directory tree and catalog PBM files",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := mandelpbm.NewCatalog(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				m := mandelpbm.New(db, newLogger(c))
				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List catalogued renders",
			Description: "",
			Action: func(c *cli.Context) error {
				db, err := mandelpbm.NewCatalog(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				infos, err := db.List()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, info := range infos {
					fmt.Printf("%d\t%dx%d\t%s\n", info.ID, info.Width, info.Height, info.SHA1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
