package sim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ScriptStep holds Actions for Frames consecutive frames.
type ScriptStep struct {
	Frames  int
	Actions Actions
}

// Script is a recorded input sequence for headless runs. Frames past the
// end get no input.
type Script []ScriptStep

// ParseScript reads one step per line: a frame count and the held keys as
// letters L (left), R (right), J (jump) and A (attack), or "-" for none.
// Blank lines and lines starting with # are skipped.
//
//	# run right, jump while running, then swing
//	60 R
//	20 RJ
//	25 A
func ParseScript(r io.Reader) (Script, error) {
	var script Script
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) > 2 {
			return nil, fmt.Errorf("script line %d: expected \"<frames> <keys>\"", line)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("script line %d: bad frame count %q", line, fields[0])
		}

		step := ScriptStep{Frames: n}
		if len(fields) == 2 && fields[1] != "-" {
			for _, c := range strings.ToUpper(fields[1]) {
				switch c {
				case 'L':
					step.Actions.Left = true
				case 'R':
					step.Actions.Right = true
				case 'J':
					step.Actions.Jump = true
				case 'A':
					step.Actions.Attack = true
				default:
					return nil, fmt.Errorf("script line %d: unknown key %q", line, c)
				}
			}
		}
		script = append(script, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return script, nil
}

// Len returns the number of frames the script covers.
func (s Script) Len() int {
	n := 0
	for _, st := range s {
		n += st.Frames
	}
	return n
}

// At returns the actions held on frame (0-based).
func (s Script) At(frame int) Actions {
	for _, st := range s {
		if frame < st.Frames {
			return st.Actions
		}
		frame -= st.Frames
	}
	return Actions{}
}
