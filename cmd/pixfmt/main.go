// Command pixfmt prints the pixel format catalogue and computes buffer
// sizes for image extents.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pixfmt"
)

// CLI defines the command-line interface using Kong.
type CLI struct {
	Verbose bool `name:"verbose" short:"v" help:"Log classification diagnostics to stderr"`

	List ListCmd `cmd:"" help:"List every format with its properties"`
	Size SizeCmd `cmd:"" help:"Compute the buffer size of an image"`
}

// ListCmd prints the catalogue as a table.
type ListCmd struct {
	Compressed bool `name:"compressed" help:"Only list block-compressed formats"`
}

func (c *ListCmd) Run(ctx *kong.Context) error {
	w := tabwriter.NewWriter(ctx.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FORMAT\tSCALAR\tCOMPONENTS\tELEMENT\tBLOCK\tSRGB\tGPU")
	for _, f := range pixfmt.Formats() {
		if c.Compressed && !f.IsCompressed() {
			continue
		}
		info := f.Info()
		gpu := "-"
		if tf, ok := f.TextureFormat(); ok {
			gpu = fmt.Sprint(tf)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%dB %dx%d\t%t\t%s\n",
			f, info.ScalarKind, info.Components, info.ElementByteSize,
			info.BlockByteSize, info.BlockWidth, info.BlockHeight,
			info.SRGB, gpu)
	}
	return w.Flush()
}

// SizeCmd computes the bytes needed for an image of a given extent.
type SizeCmd struct {
	Format string `arg:"" help:"Format name or ordinal, e.g. Float32Vec4, BC7UNorm8Vec4 or 15"`
	Width  int    `arg:"" help:"Width in pixels"`
	Height int    `arg:"" help:"Height in pixels"`
	Depth  int    `arg:"" optional:"" default:"1" help:"Layer count"`
}

func (c *SizeCmd) Run(ctx *kong.Context) error {
	f, err := parseFormatArg(c.Format)
	if err != nil {
		return err
	}
	e := pixfmt.Extent{Width: c.Width, Height: c.Height, Depth: c.Depth}
	across, down := f.BlockCount(e)
	size, bw, bh := f.BlockByteSize()
	fmt.Fprintf(ctx.Stdout, "%s %dx%dx%d: %dx%d blocks of %d bytes (%dx%d px), %d bytes\n",
		f, e.Width, e.Height, e.Depth, across, down, size, bw, bh, f.BufferByteSize(e))
	return nil
}

// parseFormatArg accepts a format name or its numeric value. Numeric values
// are not range checked, so sentinels reach the registry and are reported
// on the diagnostic logger.
func parseFormatArg(arg string) (pixfmt.Format, error) {
	if n, err := strconv.ParseInt(arg, 10, 32); err == nil {
		return pixfmt.Format(n), nil
	}
	return pixfmt.ParseFormat(arg)
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("pixfmt"),
		kong.Description("Pixel format catalogue and buffer size calculator"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return fmt.Errorf("pixfmt: %w", err)
	}
	if cli.Verbose {
		pixfmt.SetLogger(slog.New(slog.NewTextHandler(stderr, nil)))
	}
	return ctx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
