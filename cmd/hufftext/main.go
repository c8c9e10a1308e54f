// Command hufftext Huffman-encodes a text file.
//
// Usage:
//
//     hufftext -i <input file> -o <output file>
//
// The log level is read from LOG_LEVEL (debug, info, warn, error).
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/hufftext"
	"github.com/chronos-tachyon/hufftext/internal/logging"
)

var errUsage = errors.New("both -i and -o are required")

func main() {
	logger := logging.FromEnv()
	if err := run(os.Args[1:], os.Stderr, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Error().Err(err).Msg("hufftext failed")
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer, logger zerolog.Logger) error {
	var inPath, outPath string

	fs := flag.NewFlagSet("hufftext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inPath, "infile", "", "name of the file to compress")
	fs.StringVar(&inPath, "i", "", "shorthand for -infile")
	fs.StringVar(&outPath, "outfile", "", "name of the file to write compressed data to")
	fs.StringVar(&outPath, "o", "", "shorthand for -outfile")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if inPath == "" || outPath == "" || fs.NArg() != 0 {
		fs.Usage()
		return errUsage
	}

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	text := string(raw)
	logger.Info().Str("path", inPath).Int("bytes", len(raw)).Msg("read input")

	var e hufftext.Encoder
	if err := e.Init(text); err != nil {
		return fmt.Errorf("encoding %s: %w", inPath, err)
	}
	if logger.GetLevel() <= zerolog.DebugLevel {
		var dump strings.Builder
		_, _ = e.Dump(&dump)
		logger.Debug().Str("table", dump.String()).Msg("built code table")
	}

	for _, entry := range e.Table().Entries() {
		if entry.Symbol.Truncated() {
			logger.Warn().Str("symbol", string(rune(entry.Symbol))).Uint8("stored", entry.Symbol.Byte()).Msg("symbol truncated to 8 bits in header")
		}
	}

	out, err := e.Encode(text)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", inPath, err)
	}

	if err := os.WriteFile(outPath, out, 0o666); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Info().
		Str("path", outPath).
		Int("bytes", len(out)).
		Str("xxhash64", fmt.Sprintf("%016x", xxhash.Sum64(out))).
		Msg("wrote output")
	return nil
}
