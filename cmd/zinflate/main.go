package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/zinflate"
)

const version = "0.1.0"

var cli struct {
	Input     string `arg:"" help:"Compressed input file." type:"existingfile"`
	Output    string `help:"Write decompressed data to this file instead of stdout." short:"o" type:"path"`
	Size      int    `help:"Output buffer capacity in bytes. Defaults to the input file size." short:"s"`
	Raw       bool   `help:"Treat input as a raw DEFLATE block stream without the zlib container."`
	KeepGoing bool   `help:"Consume but do not verify the Adler-32 trailer." short:"k"`
	Debug     bool   `help:"Enable debug logging." short:"d"`

	Version kong.VersionFlag `help:"Show version and exit." short:"v"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("zinflate"),
		kong.Description("Decompress zlib or raw DEFLATE data from a file."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if cli.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Debug("debug mode enabled")
	}

	ctx.FatalIfErrorf(run())
}

func run() error {
	src, err := os.ReadFile(cli.Input)
	if err != nil {
		return errors.Wrap(err, "unable to read input file")
	}

	// The source size is only a guess at the decompressed size; callers with
	// a better bound pass --size.
	outLen := cli.Size
	if outLen <= 0 {
		outLen = len(src)
	}

	logrus.Debugf("input: %d bytes, output capacity: %d bytes, raw: %v",
		len(src), outLen, cli.Raw)

	var out []byte
	if cli.Raw {
		out, err = zinflate.DecompressRaw(src, outLen, nil)
	} else {
		opts := zinflate.DefaultOptions()
		if cli.KeepGoing {
			opts = zinflate.LenientOptions()
		}
		out, err = zinflate.Decompress(src, outLen, opts)
	}
	if err != nil {
		return errors.Wrapf(err, "unable to decompress %s", cli.Input)
	}

	logrus.Debugf("decompressed %d bytes", len(out))

	if cli.Output == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			return errors.Wrap(err, "unable to write to stdout")
		}

		return nil
	}

	if err := os.WriteFile(cli.Output, out, 0o644); err != nil {
		return errors.Wrap(err, "unable to write output file")
	}

	logrus.Infof("wrote %d bytes to %s", len(out), cli.Output)

	return nil
}
