package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type operationDoneMsg struct {
	op  domain.PendingOperation
	err error
}

type operationSpinnerModel struct {
	spinner spinner.Model
	kind    domain.OperationKind
	current func() domain.PendingOperation
	submit  tea.Cmd
	op      domain.PendingOperation
	err     error
	done    bool
}

func newOperationSpinnerModel(kind domain.OperationKind, current func() domain.PendingOperation, submit tea.Cmd) operationSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return operationSpinnerModel{
		spinner: s,
		kind:    kind,
		current: current,
		submit:  submit,
	}
}

func (m operationSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.submit)
}

func (m operationSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case operationDoneMsg:
		m.done = true
		m.op = msg.op
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

// View follows the workflow's status so the label moves from validating to
// awaiting approval to awaiting confirmation.
func (m operationSpinnerModel) View() string {
	if m.done {
		return ""
	}

	status := m.current().Status
	if status == "" || status == domain.StatusIdle {
		status = domain.StatusValidating
	}

	return fmt.Sprintf("%s %s: %s...", m.spinner.View(), m.kind, status.Label())
}

func runOperationSpinner(
	ctx context.Context,
	output io.Writer,
	kind domain.OperationKind,
	current func() domain.PendingOperation,
	submit func(context.Context) (domain.PendingOperation, error),
) (domain.PendingOperation, error) {
	submitCmd := func() tea.Msg {
		op, err := submit(ctx)
		return operationDoneMsg{op: op, err: err}
	}

	p := tea.NewProgram(
		newOperationSpinnerModel(kind, current, submitCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.PendingOperation{}, err
	}

	result, ok := finalModel.(operationSpinnerModel)
	if !ok {
		return domain.PendingOperation{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.op, result.err
}
