// Package extron speaks the Extron SIS control protocol to switchers over
// a serial tty or a TCP control port.
package extron

import (
	"fmt"
	"strings"

	"github.com/avkit/extronctl/internal/domain/model"
)

// SIS commands are short ASCII strings; replies are single CR/LF terminated
// lines. `ESC CN CR` asks the unit for its configured name, `<input>!` ties
// the input to all outputs.
const nameQuery = "\x1bCN\r"

const errInvalidInputCode = "E01"

func switchCommand(input string) []byte {
	return []byte(input + "!")
}

func switchAck(input string) string {
	return "In" + input + "All"
}

// parseSwitchReply maps the unit's answer line to a domain error.
func parseSwitchReply(line, input string) error {
	switch {
	case strings.HasPrefix(line, errInvalidInputCode):
		return fmt.Errorf("%w: input %q", model.ErrInvalidInput, input)
	case strings.HasPrefix(line, switchAck(input)):
		return nil
	default:
		return fmt.Errorf("%w: unexpected answer %q", model.ErrDeviceUnreachable, line)
	}
}
