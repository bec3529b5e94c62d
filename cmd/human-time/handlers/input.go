package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/concave-dev/humantime/internal/validate"
	"github.com/mattn/go-isatty"
)

// ErrMissingTimeValue is returned when neither an argument nor piped stdin
// supplies a time value.
var ErrMissingTimeValue = errors.New("TIME_DURATION is required either as an argument or through stdin")

// ReadTimeValue returns the raw time value from the positional argument or,
// when there is none, from the first line of in. A terminal on stdin is not
// read from.
func ReadTimeValue(args []string, in io.Reader) (uint64, error) {
	if len(args) > 0 {
		return parseTimeValue(strings.TrimSpace(args[0]))
	}

	if in == nil || isTerminal(in) {
		return 0, ErrMissingTimeValue
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read TIME_DURATION from stdin: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return 0, ErrMissingTimeValue
	}
	return parseTimeValue(line)
}

func parseTimeValue(s string) (uint64, error) {
	return validate.ValidateUint(s, "TIME_DURATION")
}

// isTerminal reports whether in is an interactive terminal. Readers that are
// not files are always treated as piped input.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
