package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eyedrop-invaders/internal/core"
	"github.com/vovakirdan/eyedrop-invaders/internal/storage"
)

// stubGame ends its round after a fixed number of steps and records input.
type stubGame struct {
	steps    int
	endAfter int
	resets   int
	resized  [2]int
	seen     []core.InputFrame
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++; g.steps = 0 }
func (g *stubGame) Resize(w, h int)          { g.resized = [2]int{w, h} }
func (g *stubGame) Render(dst *core.Screen)  { dst.Clear(); dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState    { return g.state() }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	// The host clears its frame in place after each step
	copied := core.NewInputFrame()
	for a, on := range in.Actions {
		copied.Actions[a] = on
	}
	copied.PointerX, copied.HasPointer = in.PointerX, in.HasPointer
	g.seen = append(g.seen, copied)
	return core.StepResult{State: g.state()}
}

func (g *stubGame) state() core.GameState {
	if g.steps < g.endAfter {
		return core.GameState{Score: g.steps}
	}
	return core.GameState{
		Score:    200,
		GameOver: true,
		Outcome: &core.Outcome{
			Difficulty: "medium",
			Correct:    2,
			Accuracy:   1,
			Badge:      "Novice",
		},
	}
}

func newTestModel(t *testing.T, g Game) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Player: "ann"}, nil)
	m.Init()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelSavesRoundOnce(t *testing.T) {
	g := &stubGame{endAfter: 3}
	m, store := newTestModel(t, g)

	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
	}

	top, err := store.TopRounds("", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("saved %d rounds, want 1", len(top))
	}
	if top[0].Player != "ann" || top[0].Score != 200 || top[0].Badge != "Novice" {
		t.Errorf("saved round = %+v", top[0])
	}
}

func TestModelKeyAndPointerReachGame(t *testing.T) {
	g := &stubGame{endAfter: 100}
	m, _ := newTestModel(t, g)

	m = update(t, m, runeKey("2"))
	m = update(t, m, tea.MouseMsg{X: 17, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = update(t, m, TickMsg{})

	in := g.seen[len(g.seen)-1]
	if !in.Has(core.ActionSlot2) {
		t.Error("slot key not delivered")
	}
	if !in.HasPointer || in.PointerX != 17 {
		t.Errorf("pointer = %d (set %v), want 17", in.PointerX, in.HasPointer)
	}

	// Frame is cleared after each tick
	m = update(t, m, TickMsg{})
	if last := g.seen[len(g.seen)-1]; last.Has(core.ActionSlot2) || last.HasPointer {
		t.Error("input leaked into the next frame")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	g := &stubGame{endAfter: 100}
	m, _ := newTestModel(t, g)
	resets := g.resets

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != resets {
		t.Error("resize reset a game that can resize in place")
	}
	if !strings.HasPrefix(m.View(), "stub") {
		t.Errorf("view = %q", m.View())
	}
}

func TestModelBack(t *testing.T) {
	tests := []struct {
		name     string
		endAfter int
		wantBack bool
	}{
		{"result screen quits program", 1, true},
		{"during round goes to game", 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &stubGame{endAfter: tt.endAfter}
			m, _ := newTestModel(t, g)
			m = update(t, m, TickMsg{})

			next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
			m = next.(Model)
			if m.BackToMenu() != tt.wantBack {
				t.Fatalf("BackToMenu() = %v, want %v", m.BackToMenu(), tt.wantBack)
			}
			if !tt.wantBack {
				if cmd != nil {
					t.Error("back during a round returned a command")
				}
				return
			}
			if cmd == nil {
				t.Fatal("back on the result screen returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("back on the result screen did not quit the program")
			}
			if m.View() != "" {
				t.Error("view not empty after leaving")
			}
			if _, cmd := m.Update(TickMsg{}); cmd != nil {
				t.Error("tick loop kept running after leaving")
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{endAfter: 100})
	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
}
