package board

import (
	"fmt"
	"strconv"
)

// ParseRoute parses a route such as "10R5L5" into steps. Digits form a
// forward move; 'L' and 'R' are turns. Whitespace is ignored.
//
// Postcondition: Returns the steps in order, or an error naming the first
// unexpected character.
func ParseRoute(s string) ([]Step, error) {
	var (
		steps  []Step
		digits []byte
	)
	flush := func() error {
		if len(digits) == 0 {
			return nil
		}
		n, err := strconv.ParseInt(string(digits), 10, 64)
		if err != nil {
			return fmt.Errorf("parsing route distance %q: %w", digits, err)
		}
		steps = append(steps, Step{Forward: n})
		digits = digits[:0]
		return nil
	}
	for i, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, byte(c))
		case c == 'L' || c == 'R':
			if err := flush(); err != nil {
				return nil, err
			}
			steps = append(steps, Step{Turn: c})
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("route: unexpected %q at offset %d", c, i)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return steps, nil
}
