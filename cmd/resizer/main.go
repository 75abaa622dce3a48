package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/resizer"
	"github.com/akeil/resizer/internal/imaging"
)

const version = "0.2.0"

const usage = `usage: resizer resize <INPUT> <WIDTH> <HEIGHT> --output <OUTPUT>
       resizer info <INPUT>
Try 'resizer --help' for more information.
`

// errExited is returned by parseArgs after kingpin printed help or version.
var errExited = errors.New("exited")

// exitRequest is raised from kingpin's terminate hook.
type exitRequest int

type settings struct {
	logLevel string
	quality  int
}

// builder creates the Resizer that executes a parsed command.
type builder func(s settings, out io.Writer) *resizer.Resizer

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, newResizer))
}

func newResizer(s settings, out io.Writer) *resizer.Resizer {
	codec := imaging.Codec{Quality: s.quality}
	return resizer.New(codec, imaging.Gaussian{}, codec, out)
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, build builder) int {
	resizer.SetLogOutput(stderr)

	cmd, s, err := parseArgs(args, stderr)
	if err == errExited {
		return 0
	}
	if err == nil {
		resizer.SetLogLevel(s.logLevel)
		err = build(s, stdout).Run(cmd)
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if resizer.IsArgumentError(err) {
			fmt.Fprint(stderr, usage)
		}
		return 1
	}
	return 0
}

// parseArgs turns the argument vector into a command.
// All failures are argument errors; no file is touched.
func parseArgs(args []string, stderr io.Writer) (cmd resizer.Command, s settings, err error) {
	if len(args) == 0 {
		return nil, s, resizer.NewArgumentError("command not specified")
	}

	app := kingpin.New("resizer", "Resize images and show image information")
	app.HelpFlag.Short('h')
	app.Version(version)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	// kingpin terminates after help and version output; return instead.
	app.Terminate(func(code int) {
		panic(exitRequest(code))
	})
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		code, ok := r.(exitRequest)
		if !ok {
			panic(r)
		}
		cmd = nil
		switch {
		case code == 0 && helpRequested(args):
			err = errExited
		case code == 0:
			// kingpin prints usage when no command is given
			err = resizer.NewArgumentError("command not specified")
		default:
			err = resizer.NewArgumentError("invalid arguments")
		}
	}()

	logLevel := app.Flag("log-level", "Log level (debug, info, warning, error, none)").
		Default("warning").
		Envar("RESIZER_LOG_LEVEL").
		Enum("debug", "info", "warning", "error", "none")

	resize := app.Command("resize", "Resize an image to exactly WIDTH x HEIGHT pixels")
	var (
		input   = resize.Arg("input", "Input image").Required().String()
		width   = resize.Arg("width", "Target width in pixels").Required().Uint32()
		height  = resize.Arg("height", "Target height in pixels").Required().Uint32()
		output  = resize.Flag("output", "Output file, the format is chosen by extension").Short('o').Required().String()
		quality = resize.Flag("quality", "Quality for JPEG and WebP output (1-100)").Short('q').Default(strconv.Itoa(imaging.DefaultQuality)).Int()
	)

	info := app.Command("info", "Show image dimensions and color type")
	infoInput := info.Arg("input", "Input image").Required().String()

	command, err := app.Parse(args)
	if err != nil {
		return nil, s, resizer.NewArgumentError("%v", err)
	}

	s.logLevel = *logLevel
	s.quality = *quality

	switch command {
	case resize.FullCommand():
		if s.quality < 1 || s.quality > 100 {
			return nil, s, resizer.NewArgumentError("quality must be between 1 and 100, got %d", s.quality)
		}
		return resizer.ResizeCommand{
			Input:  *input,
			Width:  *width,
			Height: *height,
			Output: *output,
		}, s, nil
	case info.FullCommand():
		return resizer.InfoCommand{Input: *infoInput}, s, nil
	default:
		return nil, s, resizer.NewArgumentError("unknown command: %q", command)
	}
}

// helpRequested reports whether args ask for help or version output.
func helpRequested(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-h", "--help", "--help-long", "--help-man", "--version", "help":
			return true
		}
	}
	return false
}
