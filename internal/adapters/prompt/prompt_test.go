package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalConfirmAnswers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "short yes", input: "Y\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "end of input", input: "", want: false},
		{name: "yes without newline", input: "y", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			terminal := NewTerminal(strings.NewReader(tc.input), out)

			got, err := terminal.Confirm(context.Background(), "Wrap 1 ETH?")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Wrap 1 ETH?")
		})
	}
}

func TestTerminalConfirmCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTerminal(strings.NewReader("y\n"), &bytes.Buffer{}).Confirm(ctx, "Connect?")
	require.ErrorIs(t, err, context.Canceled)
}

func TestTerminalConfirmReusesReadLeftByCanceledPrompt(t *testing.T) {
	t.Parallel()

	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = reader.Close() })
	terminal := NewTerminal(reader, &bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := terminal.Confirm(ctx, "Approve WETH spending?")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, terminal.pending)

	type result struct {
		ok  bool
		err error
	}
	got := make(chan result, 1)
	go func() {
		ok, err := terminal.Confirm(context.Background(), "Withdraw 1 WETH?")
		got <- result{ok: ok, err: err}
	}()

	_, err = writer.Write([]byte("y\n"))
	require.NoError(t, err)

	select {
	case r := <-got:
		require.NoError(t, r.err)
		assert.True(t, r.ok)
	case <-time.After(time.Second):
		t.Fatal("confirm did not return")
	}
	assert.Nil(t, terminal.pending)

	require.NoError(t, writer.Close())
	ok, err := terminal.Confirm(context.Background(), "Again?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAutoApprove(t *testing.T) {
	t.Parallel()

	ok, err := AutoApprove{}.Confirm(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, ok)
}
