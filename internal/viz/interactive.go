package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/scene"
)

var (
	menuTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4682b4")).Bold(true)
	menuSub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffa500")).Bold(true)
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc     = lipgloss.NewStyle().Foreground(lipgloss.Color("#b0c4de"))
	menuIdle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4682b4")).Bold(true)
)

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// paramNames are the settings editable before launch.
var paramNames = []string{"asteroids", "stars", "speed_scale", "eccentricity_scale", "seed", "fps"}

type model struct {
	state, cursor int
	presets       []string
	selected      string
	cfg           *config.Config
	paramCursor   int
	editing       bool
	editBuf       string
	err           error
	liveModel     Model
}

// NewInteractiveApp opens on the preset menu.
func NewInteractiveApp() *model {
	return &model{
		state:   stateMenu,
		presets: config.ListPresets(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.state == stateSim {
			newLive, cmd := m.liveModel.Update(msg)
			m.liveModel = newLive.(Model)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		newLive, cmd := m.liveModel.Update(msg)
		m.liveModel = newLive.(Model)
		return m, cmd
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.presets[m.cursor]
		cfg, err := config.GetPreset(m.selected)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.cfg, m.err = cfg, nil
		m.state, m.paramCursor = stateConfig, 0
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				m.setParam(paramNames[m.paramCursor], val)
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	name := paramNames[m.paramCursor]
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing, m.editBuf = true, formatParam(m.param(name))
	case "s":
		cmd := m.start()
		return m, cmd
	case "left", "h":
		m.setParam(name, m.param(name)-stepFor(name))
	case "right", "l":
		m.setParam(name, m.param(name)+stepFor(name))
	}
	return m, nil
}

func stepFor(name string) float64 {
	switch name {
	case "asteroids", "stars":
		return 10
	case "seed", "fps":
		return 1
	}
	return 0.1
}

func formatParam(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}

func (m *model) param(name string) float64 {
	switch name {
	case "asteroids":
		return float64(m.cfg.Asteroids)
	case "stars":
		return float64(m.cfg.Stars)
	case "speed_scale":
		return m.cfg.SpeedScale
	case "eccentricity_scale":
		return m.cfg.EccentricityScale
	case "seed":
		return float64(m.cfg.Seed)
	case "fps":
		return m.cfg.FPS
	}
	return 0
}

func (m *model) setParam(name string, v float64) {
	switch name {
	case "asteroids":
		m.cfg.Asteroids = max(int(v), 0)
	case "stars":
		m.cfg.Stars = max(int(v), 0)
	case "speed_scale":
		m.cfg.SpeedScale = max(v, 0.1)
	case "eccentricity_scale":
		m.cfg.EccentricityScale = max(v, 1e-9)
	case "seed":
		m.cfg.Seed = int64(v)
	case "fps":
		m.cfg.FPS = max(v, 1)
	}
}

func (m *model) start() tea.Cmd {
	if err := m.cfg.Validate(); err != nil {
		m.err = err
		return nil
	}
	s, err := scene.New(m.cfg.Scene())
	if err != nil {
		m.err = err
		return nil
	}
	m.liveModel = NewModel(s, Options{FPS: m.cfg.FPS, Theme: m.cfg.Theme})
	m.state = stateSim
	return m.liveModel.Init()
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.liveModel.View()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("ORRERY") + "\n    " + menuSub.Render("a small solar system") + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.presets {
		desc := config.Describe(name)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-10s", name)), menuDesc.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", menuIdle.Render(fmt.Sprintf("  %-10s", name)), menuIdle.Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + StatusRecording.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuIdle.Render(" navigate  ") + menuKey.Render("enter") + menuIdle.Render(" select  ") + menuKey.Render("q") + menuIdle.Render(" quit") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render(strings.ToUpper(m.selected)) + "\n    " + menuSub.Render(config.Describe(m.selected)) + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, name := range paramNames {
		valStr := fmt.Sprintf("%10s", formatParam(m.param(name)))
		if m.editing && i == m.paramCursor {
			valStr = fmt.Sprintf("%10s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-20s", name)), menuDesc.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", menuIdle.Render(fmt.Sprintf("  %-20s", name)), menuIdle.Render(valStr)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + StatusRecording.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuIdle.Render(" select  ") + menuKey.Render("h/l") + menuIdle.Render(" adjust  ") + menuKey.Render("s") + menuIdle.Render(" start  ") + menuKey.Render("esc") + menuIdle.Render(" back") + "\n")
	return b.String()
}

// RunInteractive opens the preset menu and then the live view.
func RunInteractive() error {
	_, err := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
