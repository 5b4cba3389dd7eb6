// strokeplay renders a saved drawing document to an image or PDF without
// opening a window.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "strokeplay"
	app.Usage = "Replay a saved drawing into an image, PDF or document"
	app.Description = `strokeplay redraws the strokes of a .json drawing the same way the board does
and writes the result in the format named by the output file's extension.`
	app.ArgsUsage = "<drawing.json>"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   "paint.png",
			Usage:   "Output file; .png, .jpg, .bmp, .tiff, .pdf or .json",
		},
		&cli.IntFlag{
			Name:  "strokes",
			Value: -1,
			Usage: "Replay only the first N strokes (default: all)",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "Override the canvas width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "Override the canvas height in pixels",
		},
		&cli.StringFlag{
			Name:  "background",
			Usage: "Override the background color (#rrggbb)",
		},
	}
	app.Action = runPlay

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runPlay(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one drawing, got %d arguments", c.NArg())
	}
	opts := playOptions{
		In:         c.Args().First(),
		Out:        c.String("out"),
		Strokes:    c.Int("strokes"),
		Width:      c.Int("width"),
		Height:     c.Int("height"),
		Background: c.String("background"),
	}
	n, err := play(opts)
	if err != nil {
		return err
	}
	fmt.Printf("Replayed %d strokes into %s\n", n, opts.Out)
	return nil
}
