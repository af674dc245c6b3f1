// Package confirm asks the user for confirmation from stdin.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/calyptia/getmein/exitcode"
)

const (
	Question = "Do you want to continue with the automation? (Y/n) "
	Retry    = "Please provide a valid answer. (Y/n) "
)

// ErrDeclined is returned by Ask when the user answers no.
var ErrDeclined = exitcode.Fatal(errors.New("automation declined by user"))

// Ask prints Question to w and reads lines from r until the answer is
// one of y, yes, n or no, case-insensitive. Any other answer, including an
// empty one, prints Retry and reads again.
// It returns nil on yes and ErrDeclined on no.
func Ask(r io.Reader, w io.Writer) error {
	fmt.Fprint(w, Question)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "y", "yes":
			return nil
		case "n", "no":
			return ErrDeclined
		}
		fmt.Fprint(w, Retry)
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("could not read answer: %w", err)
	}

	return fmt.Errorf("could not read answer: %w", io.ErrUnexpectedEOF)
}
