package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/cartlab/internal/domain"
)

type fakeLoader struct {
	cfg domain.Config
	err error
}

func (f fakeLoader) LoadConfig(string) (domain.Config, error) { return f.cfg, f.err }

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func newTestModel(limit int) model {
	cfg := domain.DefaultConfig()
	cfg.Point.Limit = limit
	return newModel(Deps{Config: cfg, Bounds: domain.NewBounds(limit)})
}

func TestHomeEnterOpensClassify(t *testing.T) {
	m := update(t, newTestModel(10), enter())
	if m.scr != screenClassify {
		t.Fatalf("expected classify screen, got %v", m.scr)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenHome {
		t.Fatalf("expected home after esc, got %v", m.scr)
	}
}

func TestClassifyRecordsVerdicts(t *testing.T) {
	m := newTestModel(10)
	m.scr = screenClassify

	cases := []struct {
		in   string
		text string
		ok   bool
	}{
		{"123.45", "yes (decimal)", true},
		{"-7", "yes (integer)", true},
		{"chicken", "NO", false},
		{"", "NO", false},
	}

	for _, tc := range cases {
		m.input.SetValue(tc.in)
		m = update(t, m, enter())

		got := m.history[0]
		if got.text != tc.text || got.ok != tc.ok {
			t.Fatalf("%q: got %q ok=%v, want %q ok=%v", tc.in, got.text, got.ok, tc.text, tc.ok)
		}
		if m.input.Value() != "" {
			t.Fatalf("input should reset after enter")
		}
	}

	if len(m.history) != len(cases) {
		t.Fatalf("history len=%d", len(m.history))
	}
	if !strings.Contains(m.View(), "chicken") {
		t.Fatalf("view should list history:\n%s", m.View())
	}
}

func TestPointEntryDistance(t *testing.T) {
	m := newTestModel(10)
	m.scr = screenPoint

	m.input.SetValue("3, 4")
	m = update(t, m, enter())

	if want := "(3, 4) is 5.000000 from the origin"; m.history[0].text != want {
		t.Fatalf("got %q want %q", m.history[0].text, want)
	}
}

func TestPointEntryOutOfRangeAndLimit(t *testing.T) {
	m := newTestModel(2)
	m.scr = screenPoint

	m.input.SetValue("3 4")
	m = update(t, m, enter())
	if m.history[0].ok || !strings.Contains(m.history[0].text, "must be between -2 and 2") {
		t.Fatalf("unexpected entry: %+v", m.history[0])
	}

	m.input.SetValue("limit -7")
	m = update(t, m, enter())
	if m.bounds.Limit() != 7 {
		t.Fatalf("limit=%d want 7", m.bounds.Limit())
	}

	m.input.SetValue("3 4")
	m = update(t, m, enter())
	if !m.history[0].ok {
		t.Fatalf("expected success after raising the limit: %+v", m.history[0])
	}
}

func TestPointEntryRejectsMalformedInput(t *testing.T) {
	m := newTestModel(10)
	m.scr = screenPoint

	for _, in := range []string{"3", "3.5, 1", "a b", "limit x"} {
		m.input.SetValue(in)
		m = update(t, m, enter())
		if m.history[0].ok {
			t.Fatalf("%q should fail: %+v", in, m.history[0])
		}
	}
}

func TestHistoryIsCapped(t *testing.T) {
	m := newTestModel(10)
	m.scr = screenClassify

	for i := 0; i < maxHistory+3; i++ {
		m.input.SetValue("1")
		m = update(t, m, enter())
	}
	if len(m.history) != maxHistory {
		t.Fatalf("history len=%d want %d", len(m.history), maxHistory)
	}
}

func TestConfigReloadAppliesLimit(t *testing.T) {
	m := newTestModel(10)

	cfg := domain.DefaultConfig()
	cfg.Point.Limit = 5
	m = update(t, m, configReloadedMsg{cfg: cfg})

	if m.bounds.Limit() != 5 {
		t.Fatalf("limit=%d want 5", m.bounds.Limit())
	}
	if !strings.Contains(m.toast, "limit 5") {
		t.Fatalf("toast=%q", m.toast)
	}
}

func TestConfigReloadFailureKeepsLimit(t *testing.T) {
	m := newTestModel(10)

	err := &domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/ws/cartlab.yaml", Err: errors.New("yaml: line 4: did not find expected key")}
	m = update(t, m, configReloadedMsg{err: err})

	if m.bounds.Limit() != 10 {
		t.Fatalf("limit changed to %d", m.bounds.Limit())
	}
	if m.toast != "Invalid YAML at cartlab.yaml line 4" {
		t.Fatalf("toast=%q", m.toast)
	}
}

func TestCmdReloadConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Point.Limit = 3

	msg := cmdReloadConfig(fakeLoader{cfg: cfg}, "cartlab.yaml")()
	got, ok := msg.(configReloadedMsg)
	if !ok || got.err != nil || got.cfg.Point.Limit != 3 {
		t.Fatalf("unexpected msg: %#v", msg)
	}

	msg = cmdReloadConfig(nil, "cartlab.yaml")()
	if got := msg.(configReloadedMsg); got.err == nil {
		t.Fatalf("expected error for nil loader")
	}
}

func TestWatchWithoutWorkspaceShowsToast(t *testing.T) {
	m := newModel(Deps{Config: domain.DefaultConfig(), Watch: true})
	if m.toast == "" {
		t.Fatalf("expected toast")
	}
	if m.bounds == nil {
		t.Fatalf("bounds should default from config")
	}
}

func TestSafeModelForwardsUpdates(t *testing.T) {
	s := wrapSafe(newTestModel(10), nil)

	next, _ := s.Update(enter())
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if sm.inner.scr != screenClassify {
		t.Fatalf("expected classify screen, got %v", sm.inner.scr)
	}
	if sm.View() == "" {
		t.Fatalf("empty view")
	}
}

func TestRecoveredReturnsHome(t *testing.T) {
	m := newTestModel(10)
	m.scr = screenPoint

	m = m.recovered()
	if m.scr != screenHome || m.toast == "" {
		t.Fatalf("unexpected state after recovery: scr=%v toast=%q", m.scr, m.toast)
	}
}
