// Command roundicon converts an image into a square app icon with rounded
// corners, removing a light grey border first unless -no-crop is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iconkit/icon"
	"github.com/nvr-ai/go-iconkit/images"
)

var (
	// DefaultInputPath is the source icon used when -input is omitted. Like
	// DefaultOutputPath it is relative to the working directory.
	DefaultInputPath = filepath.Join("assets", "icon3.png")
	// DefaultOutputPath is the destination used when -output is omitted.
	DefaultOutputPath = filepath.Join("assets", "icon.png")
)

const banner = "============================================================"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, processes one icon and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		input      string
		output     string
		noCrop     bool
		configFile string
		size       int
		preset     string
		quiet      bool
	)

	fs := flag.NewFlagSet("roundicon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&input, "i", DefaultInputPath, "input icon path, relative to the working directory (shorthand)")
	fs.StringVar(&input, "input", DefaultInputPath, "input icon path, relative to the working directory")
	fs.StringVar(&output, "o", DefaultOutputPath, "output icon path, relative to the working directory (shorthand)")
	fs.StringVar(&output, "output", DefaultOutputPath, "output icon path, relative to the working directory")
	fs.BoolVar(&noCrop, "no-crop", false, "skip grey border cropping")
	fs.StringVar(&configFile, "config", "", "path to a YAML options file")
	fs.IntVar(&size, "size", 0, "output side length in pixels (0 = from config, default 1024)")
	fs.StringVar(&preset, "preset", "", "macOS iconset rendition name, e.g. icon_512x512@2x")
	fs.BoolVar(&quiet, "quiet", false, "only print errors")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	opts, err := resolveOptions(configFile, size, preset, noCrop)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}

	logger := log.New(stdout, "", 0)
	if quiet {
		logger.SetOutput(io.Discard)
	}

	logger.Println(banner)
	logger.Println("Apple HIG Icon Processor")
	logger.Println(banner)
	logger.Printf("Input:  %s", input)
	logger.Printf("Output: %s", output)
	logger.Printf("Border crop: %s", yesNo(opts.CropBorder))
	logger.Println()

	normalizer, err := icon.NewNormalizer(opts, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}

	if _, err := normalizer.ProcessFile(input, output); err != nil {
		fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}

	logger.Println()
	logger.Println(banner)
	logger.Println("Icon processing complete!")
	logger.Println(banner)
	return 0
}

// resolveOptions merges defaults, the config file, the environment and the
// command line, in increasing precedence.
func resolveOptions(configFile string, size int, preset string, noCrop bool) (icon.Options, error) {
	opts, err := icon.LoadOptions(configFile)
	if err != nil {
		return icon.Options{}, err
	}

	if preset != "" {
		spec, ok := images.GetIconSpec(images.IconSpecName(preset))
		if !ok {
			return icon.Options{}, errors.Errorf("unknown preset %q (known: %s)", preset, presetNames())
		}
		opts.ApplyIconSpec(spec)
	} else if size != 0 {
		opts.TargetSize = size
	}

	if noCrop {
		opts.CropBorder = false
	}

	if err := opts.Validate(); err != nil {
		return icon.Options{}, err
	}
	return opts, nil
}

func presetNames() string {
	specs := images.GetIconSpecs()
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, string(spec.Name))
	}
	return strings.Join(names, ", ")
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
