package resizer

// Command is one of ResizeCommand or InfoCommand.
type Command interface {
	// Validate checks the command for missing or malformed arguments.
	// The returned error is an argument error.
	Validate() error
	command()
}

// ResizeCommand scales the image at Input to exactly Width x Height pixels
// and saves the result to Output.
type ResizeCommand struct {
	Input  string
	Width  uint32
	Height uint32
	Output string
}

func (ResizeCommand) command() {}

// Validate checks that input and output paths are given.
// Zero dimensions are valid; what they produce is up to the Resampler.
func (c ResizeCommand) Validate() error {
	if c.Input == "" {
		return NewArgumentError("no input file specified")
	}
	if c.Output == "" {
		return NewArgumentError("no output file specified")
	}
	return nil
}

// InfoCommand reports dimensions and color type of the image at Input.
type InfoCommand struct {
	Input string
}

func (InfoCommand) command() {}

// Validate checks that an input path is given.
func (c InfoCommand) Validate() error {
	if c.Input == "" {
		return NewArgumentError("no input file specified")
	}
	return nil
}
