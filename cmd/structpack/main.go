package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/structpack"
)

func main() {
	var (
		format      = flag.String("f", "", "Format string (e.g. '<2HI8s')")
		sizeOnly    = flag.Bool("size", false, "Print the format's byte size and exit")
		unpackHex   = flag.String("unpack", "", "Hex-encoded buffer to decode")
		packVals    = flag.String("pack", "", "Comma-separated values to encode")
		interactive = flag.Bool("i", false, "Interactive layout explorer")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *format == "" {
		fmt.Fprintln(os.Stderr, "Usage: structpack -f <format> [-size] [-unpack <hex>] [-pack v1,v2,...]")
		fmt.Fprintln(os.Stderr, "       structpack -i  (interactive explorer)")
		os.Exit(1)
	}

	if err := run(*format, *sizeOnly, *unpackHex, *packVals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(format string, sizeOnly bool, unpackHex, packVals string) error {
	fmt.Printf("Format: %s\n", format)
	fmt.Printf("Size: %d bytes\n", structpack.SizeOf(format))
	printLayout(format)

	if sizeOnly {
		return nil
	}

	if unpackHex != "" {
		data, err := parseHex(unpackHex)
		if err != nil {
			return fmt.Errorf("parse hex: %w", err)
		}
		vals, err := structpack.UnpackChecked(format, data)
		if err != nil {
			return fmt.Errorf("unpack: %w", err)
		}
		fmt.Println("\nDecoded values:")
		for i, v := range vals {
			fmt.Printf("  [%d] %v (%T)\n", i, v, v)
		}
	}

	if packVals != "" {
		buf, err := structpack.Pack(format, parseValues(packVals), true)
		if err != nil {
			return fmt.Errorf("pack: %w", err)
		}
		fmt.Printf("\nEncoded: %s\n", hex.EncodeToString(buf))
	}

	return nil
}

func printLayout(format string) {
	fields := structpack.Fields(format)
	if len(fields) == 0 {
		return
	}
	fmt.Println("\nLayout:")
	fmt.Println("  offset  size  code")
	for _, f := range fields {
		fmt.Printf("  %6d  %4d  %c\n", f.Offset, f.Size, f.Code)
	}
}

func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == ':' {
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(s)
}

// parseValues splits a comma-separated value list, guessing each token's
// type: integer, float, bool, then string.
func parseValues(s string) []any {
	var out []any
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		switch {
		case tok == "true":
			out = append(out, true)
		case tok == "false":
			out = append(out, false)
		default:
			if n, err := strconv.ParseInt(tok, 0, 64); err == nil {
				out = append(out, n)
			} else if u, err := strconv.ParseUint(tok, 0, 64); err == nil {
				out = append(out, u)
			} else if f, err := strconv.ParseFloat(tok, 64); err == nil {
				out = append(out, f)
			} else {
				out = append(out, tok)
			}
		}
	}
	return out
}
