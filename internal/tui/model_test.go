package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordshot/internal/game"
	"github.com/verte-zerg/wordshot/internal/generator"
	"github.com/verte-zerg/wordshot/internal/model"
	"github.com/verte-zerg/wordshot/internal/wordbank"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	session := game.NewSession(game.Options{
		Config: model.Config{
			Width:         900,
			Height:        600,
			MaxEnemies:    8,
			SpawnInterval: 130,
			BaseSpeed:     0.35,
			SurvivalBonus: 0.02,
			TickRate:      60,
			SFX:           true,
			Music:         true,
		},
		Generator: generator.New(wordbank.Default(), 1),
	})
	m := NewModel(session, 60)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 31})
	return m
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMenuSettingsNavigation(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(stripANSI(m.View()), "Best: 0") {
		t.Fatalf("expected menu with best score")
	}
	press(m, runeKey('s'))
	if m.session.State() != game.StateSettings {
		t.Fatalf("expected settings, got %s", m.session.State())
	}
	press(m, runeKey('1'), runeKey('2'))
	if m.session.SFX() || m.session.Music() {
		t.Fatalf("expected both toggles off")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "[ ] Sound effects") || !strings.Contains(view, "[ ] Music") {
		t.Fatalf("unexpected settings view:\n%s", view)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.session.State() != game.StateMenu {
		t.Fatalf("expected menu, got %s", m.session.State())
	}
}

func TestPlayingKeysReachSession(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.State() != game.StatePlaying {
		t.Fatalf("expected playing, got %s", m.session.State())
	}
	// q is a letter while playing.
	press(m, runeKey('q'))
	if m.session.State() != game.StatePlaying {
		t.Fatalf("expected q to be typed, not quit")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.session.State() != game.StateMenu {
		t.Fatalf("expected escape to return to menu")
	}
}

func TestTicksAdvanceOnlyWhilePlaying(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()
	m.Update(tickMsg(now))
	m.Update(tickMsg(now.Add(time.Second)))
	if snap := m.session.Snapshot(); snap.Ticks != 0 {
		t.Fatalf("expected no ticks in menu, got %d", snap.Ticks)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	start := time.Now()
	m.Update(tickMsg(start.Add(50 * time.Millisecond)))
	if snap := m.session.Snapshot(); snap.Ticks != 3 {
		t.Fatalf("expected 3 fixed steps, got %d", snap.Ticks)
	}
}

func TestRenderFieldDrawsEnemiesAndShip(t *testing.T) {
	snap := game.Snapshot{
		State:  game.StatePlaying,
		Width:  900,
		Height: 600,
		Ship:   model.Ship{X: 450, Y: 530, W: 54, H: 28},
		Enemies: []model.Enemy{
			{Text: "ziel", Typed: 1, X: 100, Y: 100, W: 80, H: 30},
			{Text: "raum", X: 500, Y: -200, W: 80, H: 30},
		},
		Target: 0,
		Lasers: []model.Laser{{X1: 450, Y1: 524, X2: 140, Y2: 115, TTL: 5}},
	}
	out := stripANSI(renderField(snap, 90, 30))
	lines := strings.Split(out, "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[5], "ziel") {
		t.Fatalf("expected word on row 5, got %q", lines[5])
	}
	if strings.Contains(out, "raum") {
		t.Fatalf("expected off-screen enemy to be hidden")
	}
	if !strings.Contains(lines[26], shipSprite) {
		t.Fatalf("expected ship on row 26, got %q", lines[26])
	}
	if !strings.Contains(out, "·") {
		t.Fatalf("expected laser dots")
	}
}

func TestHUDAndGameOverView(t *testing.T) {
	snap := game.Snapshot{Score: 42, Best: 57, Destroyed: 6}
	hud := stripANSI(renderHUD(snap, 40))
	if !strings.Contains(hud, "Score 42  Best 57  Words 6") {
		t.Fatalf("unexpected hud %q", hud)
	}
	over := stripANSI(renderGameOver(snap))
	for _, want := range []string{"Game over", "Score: 42", "Best:  57"} {
		if !strings.Contains(over, want) {
			t.Fatalf("game over view missing %q:\n%s", want, over)
		}
	}
}
