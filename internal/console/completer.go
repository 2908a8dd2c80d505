package console

import (
	"context"
	"strings"

	"github.com/chzyer/readline"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
)

// lineCompleter adapts Console.CompleteLine to readline. Readline expects
// the part of each candidate still to be typed, plus the length of the
// text being replaced.
type lineCompleter struct {
	ctx     context.Context
	console *Console
	caller  cmdtree.Caller
}

var _ readline.AutoCompleter = (*lineCompleter)(nil)

func (l *lineCompleter) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])
	current := currentToken(typed)

	var suffixes [][]rune
	for _, candidate := range l.console.CompleteLine(l.ctx, l.caller, typed) {
		// Sources may return candidates that do not extend what was typed.
		if !strings.HasPrefix(candidate, current) {
			continue
		}
		suffixes = append(suffixes, []rune(candidate[len(current):]+" "))
	}
	return suffixes, len([]rune(current))
}

// currentToken returns the token under the cursor, empty after whitespace.
func currentToken(typed string) string {
	if endsInSpace(typed) {
		return ""
	}
	fields := strings.Fields(typed)
	return fields[len(fields)-1]
}

// filterInput blocks Ctrl-Z, which would suspend the console mid-line.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
