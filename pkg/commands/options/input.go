package options

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// InputOptions
type InputOptions struct {
	Stdin bool
}

func AddInputArgs(cmd *cobra.Command, o *InputOptions) {
	cmd.Flags().BoolVar(&o.Stdin, "stdin", false,
		Wrap80("Read the content from standard input. Implied when input is piped and no content is given."))
}

// ReadContent returns standard input when asked for, or when it is piped and
// content is empty.
func (o *InputOptions) ReadContent(in io.Reader, content string) (string, error) {
	if !o.Stdin && (content != "" || !piped()) {
		return content, nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func piped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
