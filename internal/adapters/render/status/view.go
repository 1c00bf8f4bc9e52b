package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/weth-cli/internal/application"
	"github.com/bnema/weth-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const barWidth = 24

type RenderOptions struct {
	Now         time.Time
	AccountName string
	ShowTxs     bool
}

func renderView(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	network := snapshot.Network
	lines := []string{
		s.title.Render(fmt.Sprintf("%s on %s", tokenSymbol(network), networkName(network))),
		s.header.Render(fmt.Sprintf("contract: %s", network.TokenAddress)),
	}

	if !snapshot.Session.Active() {
		lines = append(lines, s.empty.Render("Not connected."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.section.Render(renderBalances(snapshot, opts, s)),
		s.section.Render(renderOperations(snapshot, opts, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBalances(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	session := snapshot.Session
	decimals := snapshot.Network.Decimals

	title := session.AccountID.Short()
	if name := strings.TrimSpace(opts.AccountName); name != "" {
		title = fmt.Sprintf("%s (%s)", name, session.AccountID)
	}

	parts := []string{
		s.account.Render(title),
		balanceLine(nativeSymbol(snapshot.Network), session.NativeBalance, decimals, s),
		balanceLine(tokenSymbol(snapshot.Network), session.TokenBalance, decimals, s),
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Render("wrapped"),
			renderShareBar(wrappedShare(session), barWidth, s),
			" ",
			s.detail.Render(fmt.Sprintf("%3.0f%%", wrappedShare(session))),
		),
	}

	updated := s.detail.Render("updated " + formatUpdated(session.UpdatedAt, opts.Now))
	if snapshot.Stale {
		updated += " " + s.warning.Render("[stale]")
	}
	parts = append(parts, updated)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func balanceLine(symbol string, amount domain.Amount, decimals int32, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.label.Render(symbol),
		s.amount.Render(formatAmount(amount, decimals)),
	)
}

func renderOperations(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	lines := make([]string, 0, 2)
	for _, op := range []domain.PendingOperation{snapshot.Deposit, snapshot.Withdraw} {
		lines = append(lines, operationLine(op, opts, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func operationLine(op domain.PendingOperation, opts RenderOptions, s styles) string {
	status := op.Status
	if status == "" {
		status = domain.StatusIdle
	}

	var rendered string
	switch {
	case status == domain.StatusFailed:
		rendered = s.warning.Render(status.Label())
	case status == domain.StatusSucceeded:
		rendered = s.success.Render(status.Label())
	case status.InFlight():
		rendered = s.pending.Render(status.Label())
	default:
		rendered = s.detail.Render(status.Label())
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(string(op.Kind)), rendered)
	if op.Reason != "" {
		line += s.warning.Render(": " + op.Reason)
	}
	if opts.ShowTxs && len(op.TxHashes) > 0 {
		hashes := make([]string, 0, len(op.TxHashes))
		for _, hash := range op.TxHashes {
			hashes = append(hashes, string(hash))
		}
		line += " " + s.detail.Render("tx "+strings.Join(hashes, ", "))
	}

	return line
}

// wrappedShare is the token balance as a percentage of total holdings.
func wrappedShare(session domain.Session) float64 {
	total := session.NativeBalance.Add(session.TokenBalance)
	if total.IsZero() {
		return 0
	}

	share := decimal.NewFromBigInt(session.TokenBalance.BigInt(), 0).
		Div(decimal.NewFromBigInt(total.BigInt(), 0)).
		Mul(decimal.NewFromInt(100))
	f, _ := share.Float64()
	return clampPercent(f)
}

func renderShareBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// formatAmount shows at most six decimal places, truncating so a balance is
// never displayed larger than it is.
func formatAmount(amount domain.Amount, decimals int32) string {
	display := domain.FromSmallestUnit(amount, decimals)
	truncated := display.Truncate(6)
	if !truncated.Equal(display) {
		return truncated.StringFixed(6) + "…"
	}
	return display.String()
}

func formatUpdated(updatedAt, now time.Time) string {
	if updatedAt.IsZero() {
		return "never"
	}
	if now.IsZero() {
		return updatedAt.Format(time.RFC3339)
	}

	age := now.Sub(updatedAt)
	if age < time.Second {
		return "just now"
	}
	return fmt.Sprintf("%s ago", age.Truncate(time.Second))
}

func tokenSymbol(network domain.Network) string {
	if symbol := strings.TrimSpace(network.TokenSymbol); symbol != "" {
		return symbol
	}
	return "WETH"
}

// nativeSymbol derives the coin from the wrapped symbol: WETH wraps ETH.
func nativeSymbol(network domain.Network) string {
	symbol := tokenSymbol(network)
	if len(symbol) > 1 && strings.HasPrefix(strings.ToUpper(symbol), "W") {
		return symbol[1:]
	}
	return "native"
}

func networkName(network domain.Network) string {
	if name := strings.TrimSpace(network.Name); name != "" {
		return name
	}
	return "unknown network"
}
