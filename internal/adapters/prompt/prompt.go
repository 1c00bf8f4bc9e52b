package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/weth-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

var questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

// Terminal asks yes/no questions on a line-oriented terminal. Anything other
// than y/yes, including end of input, is a refusal.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	mu  sync.Mutex

	// pending is a read left running by a canceled Confirm. The next Confirm
	// takes its answer instead of starting a second reader on in.
	pending chan answer
}

type answer struct {
	line string
	err  error
}

var _ ports.Prompter = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := fmt.Fprintf(t.out, "%s [y/N] ", questionStyle.Render(question)); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	done := t.pending
	if done == nil {
		done = make(chan answer, 1)
		go func() {
			line, err := t.in.ReadString('\n')
			done <- answer{line: line, err: err}
		}()
	}
	t.pending = done

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case got := <-done:
		t.pending = nil
		if got.err != nil && got.err != io.EOF {
			return false, fmt.Errorf("read answer: %w", got.err)
		}
		switch strings.ToLower(strings.TrimSpace(got.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// AutoApprove answers yes to everything, for --yes.
type AutoApprove struct{}

var _ ports.Prompter = AutoApprove{}

func (AutoApprove) Confirm(ctx context.Context, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}
