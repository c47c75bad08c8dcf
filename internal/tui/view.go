package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordshot/internal/game"
)

var (
	typedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F7A8A"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DFFFE7"))
	targetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7CFF6B")).Bold(true)
	shipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFD5")).Bold(true)
	laserStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7CFF6B"))
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5DF4")).Bold(true)
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF5DF4")).
			Padding(1, 3)
)

const shipSprite = "/^\\"

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	snap := m.session.Snapshot()
	switch snap.State {
	case game.StateMenu:
		return m.place(renderMenu(snap))
	case game.StateSettings:
		return m.place(renderSettings(snap))
	case game.StateGameOver:
		return renderHUD(snap, m.width) + "\n" + lipgloss.Place(m.width, max(1, m.height-1), lipgloss.Center, lipgloss.Center, renderGameOver(snap))
	default:
		return renderHUD(snap, m.width) + "\n" + renderField(snap, m.width, max(1, m.height-1))
	}
}

func (m *Model) place(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func renderMenu(snap game.Snapshot) string {
	lines := []string{
		titleStyle.Render("W O R D S H O T"),
		"",
		fmt.Sprintf("Best: %d", snap.Best),
		"",
		hudStyle.Render("enter play · s settings · q quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func renderSettings(snap game.Snapshot) string {
	lines := []string{
		titleStyle.Render("Settings"),
		"",
		fmt.Sprintf("%s Sound effects  (1)", checkbox(snap.SFX)),
		fmt.Sprintf("%s Music          (2)", checkbox(snap.Music)),
		"",
		hudStyle.Render("esc back"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGameOver(snap game.Snapshot) string {
	lines := []string{
		titleStyle.Render("Game over"),
		"",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Best:  %d", snap.Best),
		"",
		hudStyle.Render("enter retry · esc menu · q quit"),
	}
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func renderHUD(snap game.Snapshot, width int) string {
	segments := []string{
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("Best %d", snap.Best),
		fmt.Sprintf("Words %d", snap.Destroyed),
	}
	hud := strings.Join(segments, "  ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, hudStyle.Render(hud))
}

func renderField(snap game.Snapshot, cols, rows int) string {
	c := newCanvas(cols, rows, snap.Width, snap.Height)
	for _, l := range snap.Lasers {
		c.line(l.X1, l.Y1, l.X2, l.Y2, '·', &laserStyle)
	}
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		if e.Y+e.H < 0 {
			continue
		}
		col, row := c.toCell(e.X, e.Y+e.H/2)
		style := &pendingStyle
		if i == snap.Target {
			style = &targetStyle
		}
		col = c.text(col, row, e.Text[:e.Typed], &typedStyle)
		c.text(col, row, e.Remaining(), style)
	}
	col, row := c.toCell(snap.Ship.X, snap.Ship.Y)
	c.text(col-len(shipSprite)/2, row, shipSprite, &shipStyle)
	return c.render()
}
