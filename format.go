package treediff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(p Patch, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, p, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a one-line-per-operation report to w. If colorTTY is
// true it adds
// green "+" for add and append
// red "-" for remove
// blue "~" for replace
// cyan ">" for move and copy
// neutral "?" for test
func FormatPretty(w io.Writer, p Patch, colorTTY bool) error {
	var colorMap map[Op]string
	if colorTTY {
		colorMap = map[Op]string{
			Op("close"): "\x1b[0m", // end color tag

			OpAdd:     "\x1b[32m", // green
			OpAppend:  "\x1b[32m",
			OpRemove:  "\x1b[31m", // red
			OpReplace: "\x1b[34m", // blue
			OpMove:    "\x1b[36m", // cyan
			OpCopy:    "\x1b[36m",
			OpTest:    "\x1b[37m", // neutral
		}
	}

	marks := map[Op]string{
		OpAdd:     "+",
		OpAppend:  "+",
		OpRemove:  "-",
		OpReplace: "~",
		OpMove:    ">",
		OpCopy:    ">",
		OpTest:    "?",
	}

	for _, op := range p {
		valStr := ""
		if op.Op.needsValue() {
			data, err := json.Marshal(op.Value)
			if err != nil {
				return err
			}
			valStr = " " + string(data)
		}
		path := op.Path
		if op.Op.needsFrom() {
			path = op.From + " -> " + op.Path
		}
		fmt.Fprintf(w, "%s%s %s%s%s\n", colorMap[op.Op], marks[op.Op], path, valStr, colorMap[Op("close")])
	}

	return nil
}

// FormatStats prints a one-line summary of a patch's operation counts
func FormatStats(s Stats) string {
	return formatStats(s, false)
}

// FormatStatsColor prints the summary with ANSI colors
func FormatStatsColor(s Stats) string {
	return formatStats(s, true)
}

func formatStats(s Stats, color bool) string {
	var insertColor, deleteColor, updateColor, closeColor string
	if color {
		insertColor = "\x1b[32m"
		deleteColor = "\x1b[31m"
		updateColor = "\x1b[34m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	opsWord := "operations"
	if s.Total() == 1 {
		opsWord = "operation"
	}
	fmt.Fprintf(buf, "%d %s.", s.Total(), opsWord)

	count := func(n int, color, singular, plural string) {
		if n == 0 {
			return
		}
		word := plural
		if n == 1 {
			word = singular
		}
		fmt.Fprintf(buf, " %s%d %s.%s", color, n, word, closeColor)
	}

	count(s.Adds, insertColor, "add", "adds")
	count(s.Appends, insertColor, "append", "appends")
	count(s.Removes, deleteColor, "remove", "removes")
	count(s.Replaces, updateColor, "replace", "replaces")
	count(s.Moves, updateColor, "move", "moves")
	count(s.Copies, updateColor, "copy", "copies")
	count(s.Tests, updateColor, "test", "tests")

	buf.WriteRune('\n')

	return buf.String()
}
