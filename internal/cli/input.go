// Package cli runs the interactive wordglob prompt
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordglob/pkg/config"
	"github.com/bastiangx/wordglob/pkg/dictionary"
	"github.com/bastiangx/wordglob/pkg/query"
	"github.com/charmbracelet/log"
)

const instructions = `This program uses "Glob" patterns to find wordle words.
- '*' matches any number of characters
- '?' matches exactly one character
- 'a' matches the character 'a' (case insensitive)

Ex: 'h?t' matches 'hat', 'hot', 'hit', etc.
    't*e' matches 'tale', 'time', 'tree', etc.

After entering your pattern, you can also blacklist letters or specify yellow letters.
Type 'quit' or press Ctrl+D to leave.
`

// InputHandler reads lookups from a prompt and prints the result panels.
type InputHandler struct {
	dict         *dictionary.Dictionary
	reader       *bufio.Reader
	readErr      error
	out          io.Writer
	cfg          config.CliConfig
	render       *renderer
	requestCount int
}

// NewInputHandler creates a prompt reading from in and writing to out.
func NewInputHandler(dict *dictionary.Dictionary, in io.Reader, out io.Writer, cfg config.CliConfig) *InputHandler {
	return &InputHandler{
		dict:    dict,
		reader:  bufio.NewReader(in),
		out:     out,
		cfg:     cfg,
		render:  newRenderer(out, cfg),
	}
}

// Start begins the prompt loop.
// It returns nil at end of input or when the user types quit or exit.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, h.render.heading("Welcome to Wordle Glob!"))
	if h.cfg.ShowInstructions {
		fmt.Fprintln(h.out)
		fmt.Fprint(h.out, instructions)
	}

	for {
		pattern, ok := h.ask("Enter a glob pattern")
		if !ok {
			return h.readErr
		}
		switch strings.ToLower(pattern) {
		case "quit", "exit":
			return nil
		}

		blacklist, ok := h.ask("Enter any letters to " + h.render.blacklist("blacklist"))
		if !ok {
			return h.readErr
		}
		yellow, ok := h.ask("Enter any " + h.render.yellow("yellow") + " letters (non-positional)")
		if !ok {
			return h.readErr
		}

		h.handleInput(query.New(pattern, blacklist, yellow))
	}
}

// ask prints a prompt and reads one trimmed line.
// ok is false once the input is exhausted; a final line without a newline still counts.
// Lines have no length limit.
func (h *InputHandler) ask(prompt string) (string, bool) {
	fmt.Fprintf(h.out, "%s: ", prompt)
	line, err := h.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			h.readErr = err
		}
		if line == "" || h.readErr != nil {
			fmt.Fprintln(h.out)
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

// handleInput runs one lookup and prints its panels
func (h *InputHandler) handleInput(q query.Query) {
	h.requestCount++
	log.Debug("Processing request", "n", h.requestCount, "pattern", q.Pattern,
		"blacklist", q.Blacklist.String(), "yellow", q.Yellow.String())

	start := time.Now()
	res := query.Run(h.dict, q)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for pattern '%s'", elapsed, q.Pattern)

	fmt.Fprintln(h.out, h.render.results(q.Pattern, res))
}
