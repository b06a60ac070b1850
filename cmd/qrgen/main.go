// Command qrgen generates a QR code for a string given on the command
// line or standard input. On a terminal it prints the symbol as text;
// otherwise, or with -o, it writes an image.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	qrgen "github.com/NeaByteLab/QR-Generator"
	"github.com/NeaByteLab/QR-Generator/render"
)

var g = struct {
	level    string // QR correction level
	version  int    // QR version, 0 = auto
	mode     string // encoding mode
	format   string // output format
	fn       string // output filename
	cellSize int    // pixels or characters per module
	margin   int    // quiet zone in modules
	dataURL  bool   // emit a base64 data URL
}{
	level:   "M",
	mode:    "Byte",
	margin:  -1,
	dataURL: false,
}

func init() {
	getopt.FlagLong(&g.level, "level", 'l', "error correction level (L, M, Q, H)")
	getopt.FlagLong(&g.version, "version", 'v', "QR version 1-40, 0 selects automatically")
	getopt.FlagLong(&g.mode, "mode", 'm', "segment mode (Numeric, Alphanumeric, Byte, Kanji, auto)")
	getopt.FlagLong(&g.format, "format", 'f', "output format (ascii, png, gif, svg, html)")
	getopt.FlagLong(&g.fn, "output", 'o', "output file")
	getopt.FlagLong(&g.cellSize, "scale", 's', "cell size (pixels per module)")
	getopt.FlagLong(&g.margin, "border", 'b', "quiet zone width in modules")
	getopt.FlagLong(&g.dataURL, "url", 'u', "write a base64 data URL instead of raw bytes")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("qrgen: ")
	getopt.Parse()

	text := strings.Join(getopt.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		text = strings.TrimSuffix(string(data), "\n")
	}

	code, err := qrgen.New(g.version, g.level)
	if err != nil {
		log.Fatal(err)
	}
	if g.mode == "auto" {
		err = code.AddDataAuto(text)
	} else {
		err = code.AddDataMode(text, g.mode)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := code.Make(); err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if g.fn != "" {
		f, err := os.Create(g.fn)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Fatal(err)
			}
		}()
		out = f
	}

	format := g.format
	if format == "" {
		if g.fn == "" && isatty.IsTerminal(os.Stdout.Fd()) {
			format = "ascii"
		} else {
			format = "png"
		}
	}

	switch format {
	case "ascii":
		fmt.Fprint(out, code.ASCIIText(g.cellSize, g.margin))
	case "png":
		if g.dataURL {
			url, err := code.PNGDataURL(g.cellSize, g.margin)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Fprintln(out, url)
			break
		}
		data, err := render.PNG(code, g.cellSize, g.margin, nil, nil)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := out.Write(data); err != nil {
			log.Fatal(err)
		}
	case "gif":
		if g.dataURL {
			fmt.Fprintln(out, code.GIFDataURL(g.cellSize, g.margin))
			break
		}
		if _, err := out.Write(render.GIF(code, g.cellSize, g.margin)); err != nil {
			log.Fatal(err)
		}
	case "svg":
		fmt.Fprintln(out, render.SVG(code, g.cellSize, g.margin))
	case "html":
		fmt.Fprintln(out, code.HTMLTable(g.cellSize, g.margin))
	default:
		log.Fatalf("unknown format %q", format)
	}
}
