package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/cartlab/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenClassify
	screenPoint
)

const maxHistory = 8

type menuItem struct {
	title  string
	desc   string
	target screen
	quit   bool
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type entry struct {
	input string
	text  string
	ok    bool
}

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	menu  list.Model
	input textinput.Model

	cfg     domain.Config
	bounds  *domain.Bounds
	history []entry
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())

	if deps.Watch && deps.ConfigPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		stop, err := startWatch(ctx, p, deps)
		if err != nil {
			if deps.Logger != nil {
				deps.Logger.Warn("tui.watch.failed", "path", deps.ConfigPath, "err", err)
			}
		} else {
			defer stop()
		}
	}

	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{title: "Classify", desc: "Check whether a string is a number", target: screenClassify},
		menuItem{title: "Point", desc: "Build points against the shared limit", target: screenPoint},
		menuItem{title: "Quit", desc: "Exit cartlab", quit: true},
	}

	l := list.New(items, list.NewDefaultDelegate(), 60, 14)
	l.Title = "cartlab"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Prompt = "› "
	in.CharLimit = 256
	in.Width = 40

	bounds := deps.Bounds
	if bounds == nil {
		bounds = domain.NewBounds(deps.Config.Point.Limit)
	}

	m := model{
		theme:  t,
		deps:   deps,
		scr:    screenHome,
		menu:   l,
		input:  in,
		cfg:    deps.Config,
		bounds: bounds,
	}

	if deps.Watch && deps.ConfigPath == "" {
		m.toast = "No workspace found: --watch ignored"
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		if w := msg.Width - 12; w > 10 {
			m.input.Width = w
		}
		return m, nil

	case configChangedMsg:
		return m, cmdReloadConfig(m.deps.Loader, m.deps.ConfigPath)

	case configReloadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			if m.deps.Logger != nil {
				m.deps.Logger.Warn("tui.config.reload.failed", "path", m.deps.ConfigPath, "err", msg.err)
			}
			return m, nil
		}
		m.cfg = msg.cfg
		m.bounds.SetLimit(msg.cfg.Point.Limit)
		m.toast = fmt.Sprintf("Config reloaded (limit %d)", m.bounds.Limit())
		if m.deps.Logger != nil {
			m.deps.Logger.Info("tui.config.reloaded", "path", m.deps.ConfigPath, "limit", m.bounds.Limit())
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.scr == screenHome {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "enter":
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				if it.quit {
					return m, tea.Quit
				}
				m.scr = it.target
				m.history = nil
				m.toast = ""
				m.input.Reset()
				return m, m.input.Focus()
			}
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "esc":
			m.scr = screenHome
			m.input.Blur()
			return m, nil
		case "enter":
			m = m.submit()
			return m, nil
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// recovered resets the model after a panic in Update.
func (m model) recovered() model {
	m.scr = screenHome
	m.input.Blur()
	m.input.Reset()
	m.toast = "Unexpected error (see logs)"
	return m
}

// submit records the current input line on the active screen.
func (m model) submit() model {
	raw := m.input.Value()
	m.input.Reset()

	var e entry
	switch m.scr {
	case screenClassify:
		e = m.classifyEntry(raw)
	case screenPoint:
		s := strings.TrimSpace(raw)
		if s == "" {
			return m
		}
		e = m.pointEntry(s)
	default:
		return m
	}

	m.history = append([]entry{e}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
	return m
}

func (m model) classifyEntry(raw string) entry {
	text, ok := describeNumber(raw)
	return entry{input: raw, text: text, ok: ok}
}

func (m model) pointEntry(s string) entry {
	if limit, isCmd, err := parseLimitCommand(s); isCmd {
		if err != nil {
			return entry{input: s, text: err.Error()}
		}
		m.bounds.SetLimit(limit)
		return entry{input: s, text: fmt.Sprintf("limit set to %d", m.bounds.Limit()), ok: true}
	}

	x, y, err := parsePointInput(s)
	if err != nil {
		return entry{input: s, text: err.Error()}
	}

	p, err := domain.NewPoint(m.bounds, x, y)
	if err != nil {
		if m.deps.Logger != nil {
			m.deps.Logger.Debug("point.set.failed", "input", s, "err", err)
		}
		return entry{input: s, text: userMessage(err)}
	}

	origin, _ := domain.NewPoint(m.bounds, 0, 0)
	return entry{
		input: s,
		text:  fmt.Sprintf("%s is %.*f from the origin", p, m.cfg.Table.Precision, p.DistanceTo(origin)),
		ok:    true,
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("cartlab") + "\n" +
		m.theme.Subtitle.Render("numeric strings and bounded points") + "\n"

	var banner string
	if m.deps.ConfigPath != "" {
		banner = m.theme.Help.Render("Config: " + m.deps.ConfigPath)
	} else {
		banner = m.theme.Help.Render("No workspace: using defaults")
	}
	if m.toast != "" {
		banner += "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenClassify:
		live, ok := describeNumber(m.input.Value())
		body := fmt.Sprintf("%s\n\n%s\n\n%s %s",
			m.theme.Title.Render("Classify"),
			m.input.View(),
			"Numeric?",
			m.theme.Verdict(ok).Render(live),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(body+m.renderHistory()) + "\n" +
			m.theme.Help.Render("enter record • esc back • ctrl+c quit"))

	case screenPoint:
		l := m.bounds.Limit()
		body := fmt.Sprintf("%s\n\n%s\n\n%s",
			m.theme.Title.Render("Point"),
			m.theme.Subtitle.Render(fmt.Sprintf("Coordinates must be between %d and %d", -l, l)),
			m.input.View(),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(body+m.renderHistory()) + "\n" +
			m.theme.Help.Render("x, y to build • limit N to change the limit • esc back"))

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) renderHistory() string {
	if len(m.history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n")
	for _, e := range m.history {
		fmt.Fprintf(&b, "%-20s %s\n", clampString(fmt.Sprintf("%q", e.input), 20), m.theme.Verdict(e.ok).Render(e.text))
	}
	return strings.TrimRight(b.String(), "\n")
}
