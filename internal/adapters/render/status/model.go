package status

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/bnema/weth-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	snapshot application.Snapshot
	opts     RenderOptions
	styles   styles
	output   string
}

func newModel(snapshot application.Snapshot, opts RenderOptions) model {
	return model{
		snapshot: snapshot,
		opts:     opts,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.snapshot, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render produces the session view once, without touching the terminal.
func Render(snapshot application.Snapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(snapshot, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

type snapshotMsg application.Snapshot

type updatesClosedMsg struct{}

// watchModel re-renders whenever a new snapshot arrives and exits on q,
// ctrl+c, or when the update channel is closed.
type watchModel struct {
	updates <-chan application.Snapshot
	current application.Snapshot
	opts    RenderOptions
	styles  styles
	now     func() time.Time
}

func waitForSnapshot(updates <-chan application.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return snapshotMsg(snapshot)
	}
}

func (m watchModel) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.current = application.Snapshot(msg)
		return m, waitForSnapshot(m.updates)
	case updatesClosedMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	opts := m.opts
	opts.Now = m.now()
	return renderView(m.current, opts, m.styles) + "\n" + m.styles.empty.Render("press q to quit") + "\n"
}

// Watch renders initial and every snapshot received on updates until the
// user quits, ctx ends, or updates is closed.
func Watch(ctx context.Context, initial application.Snapshot, updates <-chan application.Snapshot, opts RenderOptions, input io.Reader, output io.Writer) error {
	m := watchModel{
		updates: updates,
		current: initial,
		opts:    opts,
		styles:  newStyles(),
		now:     time.Now,
	}

	_, err := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
	).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
