package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mash-protocol/mash-bridge/pkg/browsename"
)

// Interactive reads item identifiers from a prompt and prints their browse
// names.
type Interactive struct {
	parser browsename.Parser
	rl     *readline.Instance
}

// NewInteractive creates an interactive session for p.
func NewInteractive(p browsename.Parser) (*Interactive, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "browse> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Interactive{parser: p, rl: rl}, nil
}

// SetParser replaces the parser. It must not be called while Run is active.
func (s *Interactive) SetParser(p browsename.Parser) {
	s.parser = p
}

// Stderr returns a writer that coordinates with the prompt. Use it for log
// output.
func (s *Interactive) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run starts the prompt loop. It returns on EOF, :quit or when ctx is done.
func (s *Interactive) Run(ctx context.Context) {
	defer s.rl.Close()

	out := s.rl.Stdout()
	s.printHelp(out)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			return
		}

		if !s.handle(line, out) {
			return
		}
	}
}

// handle processes one input line. It returns false when the session should
// end.
func (s *Interactive) handle(line string, out io.Writer) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	switch strings.ToLower(input) {
	case ":help", ":h", ":?":
		s.printHelp(out)
		return true
	case ":config":
		fmt.Fprintf(out, "%s (%s)\n", DescribeConfig(browsename.ConfigOf(s.parser)), browsename.VariantOf(s.parser))
		return true
	case ":quit", ":q", ":exit":
		fmt.Fprintln(out, "Exiting...")
		return false
	}

	// Identifiers that collide with a command are entered as ":parse <id>".
	// Any other input, ":"-prefixed or not, is an identifier.
	if rest, ok := strings.CutPrefix(input, ":parse "); ok {
		input = rest
	}

	if name, ok := s.parser.Parse(input); ok {
		fmt.Fprintf(out, "  %s\n", name)
	} else {
		fmt.Fprintln(out, "  (no browse name)")
	}
	return true
}

func (s *Interactive) printHelp(out io.Writer) {
	fmt.Fprintln(out, `
Enter an item identifier to derive its browse name.

Commands:
  :config      - Show the active parser configuration
  :parse <id>  - Parse an identifier that looks like a command
  :help        - Show this help
  :quit        - Exit`)
}
