package viz

import (
	"fmt"
	"image"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/sim"
)

const (
	width           = 80
	height          = 30
	panelWidth      = 44
	historyCapacity = 600
	maxSpeed        = 32

	// canvasPadX and canvasPadY match canvasStyle's padding; mouse cells are
	// shifted by them before mapping onto the canvas.
	canvasPadX = 2
	canvasPadY = 1
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(canvasPadY, canvasPadX)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(panelWidth)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Options struct {
	FPS     float64
	Theme   string
	GIFPath string
}

// Model is the live orrery view: the scene on a Braille canvas with a stats
// panel beside it.
type Model struct {
	scene         *scene.Scene
	canvas        *Canvas
	proj          projection
	fps           float64
	running       bool
	speed         int
	showOrbits    bool
	showHelp      bool
	now           time.Time
	hovered       string
	revs          *metrics.RevolutionCounter
	earthDist     []float64
	mercuryDist   []float64
	recording     bool
	frames        []*image.Paletted
	gifPath       string
	status        string
	width, height int
}

func NewModel(s *scene.Scene, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "orrery.gif"
	}
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}

	m := Model{
		scene:       s,
		canvas:      NewCanvas(width, height),
		fps:         opts.FPS,
		running:     true,
		speed:       1,
		showOrbits:  true,
		revs:        metrics.NewRevolutionCounter(),
		earthDist:   make([]float64, 0, historyCapacity),
		mercuryDist: make([]float64, 0, historyCapacity),
		gifPath:     opts.GIFPath,
		width:       width,
		height:      height,
	}
	m.draw()
	return m
}

func (m Model) tick() tea.Cmd {
	interval := time.Duration(float64(time.Second) / m.fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n", ".":
			if !m.running {
				m.step()
				m.draw()
			}
		case "r":
			m.reset()
		case "o":
			m.showOrbits = !m.showOrbits
		case "p":
			m.scene.Tooltip().TogglePin(m.now)
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = max(m.speed/2, 1)
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			NextTheme()
			m.draw()
		}

	case tea.MouseMsg:
		p, ok := m.mouseToScene(msg.X, msg.Y)
		if !ok {
			m.hovered = ""
			break
		}
		b := m.scene.HoverNear(p, 2/m.proj.scale, m.now)
		m.hovered = ""
		if b != nil {
			m.hovered = b.Name
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && b != nil {
			m.scene.Tooltip().TogglePin(m.now)
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case TickMsg:
		m.now = time.Time(msg)
		if m.running {
			for i := 0; i < m.speed; i++ {
				m.step()
			}
		}
		m.draw()
		if m.recording {
			m.frames = append(m.frames, captureFrame(m.canvas))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	wrapped := m.scene.Tick()
	m.revs.OnFrame(&sim.Frame{Index: m.scene.Frame(), Wrapped: wrapped})

	m.earthDist = appendDistance(m.earthDist, m.scene, "Earth")
	m.mercuryDist = appendDistance(m.mercuryDist, m.scene, "Mercury")
}

// appendDistance records name's distance from the sun, keeping the newest
// historyCapacity samples.
func appendDistance(hist []float64, s *scene.Scene, name string) []float64 {
	b := s.System().Find(name)
	if b == nil {
		return hist
	}
	hist = append(hist, b.Pos.Dist(s.Center()))
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

func (m *Model) reset() {
	m.scene.Reset()
	m.revs.Reset()
	m.earthDist = m.earthDist[:0]
	m.mercuryDist = m.mercuryDist[:0]
	m.hovered = ""
	m.draw()
}

func (m *Model) draw() {
	snap := m.scene.Snapshot()
	m.proj = drawSnapshot(m.canvas, snap, CurrentTheme, m.showOrbits)
	if b, ok := snap.Body(m.hovered); ok && b.Kind != body.Sun {
		x0, y0 := m.proj.toCanvas(snap.Center)
		x1, y1 := m.proj.toCanvas(b.Pos)
		m.canvas.DrawLine(int(x0), int(y0), int(x1), int(y1))
	}
}

func (m *Model) resize(w, h int) {
	cw := w - panelWidth - 2*canvasPadX - 4
	ch := h - 2*canvasPadY
	cw = max(cw, 20)
	ch = max(ch, 10)
	if cw == m.width && ch == m.height {
		return
	}
	m.width, m.height = cw, ch
	m.canvas = NewCanvas(cw, ch)
	m.frames = nil
	m.recording = false
	m.draw()
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording = true
		m.frames = make([]*image.Paletted, 0)
		m.status = ""
		return
	}
	m.recording = false
	delay := max(int(100/m.fps), 1)
	if err := saveGIF(m.gifPath, m.frames, delay); err != nil {
		m.status = "gif: " + err.Error()
	} else {
		m.status = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.gifPath)
	}
	m.frames = nil
}

// mouseToScene maps a terminal cell to the scene point under its centre.
func (m Model) mouseToScene(x, y int) (orbit.Point, bool) {
	col, row := x-canvasPadX, y-canvasPadY
	if col < 0 || row < 0 || col >= m.canvas.Width || row >= m.canvas.Height || m.proj.scale == 0 {
		return orbit.Point{}, false
	}
	return m.proj.toScene(float64(col*2)+1, float64(row*4)+2), true
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.Render())

	var s strings.Builder
	s.WriteString(GradientText("ORRERY", CurrentTheme.Primary, CurrentTheme.Accent) + "\n\n")

	switch {
	case m.recording:
		s.WriteString(StatusRecording.Render(fmt.Sprintf("● REC %d", len(m.frames))))
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING"))
	default:
		s.WriteString(StatusPaused.Render("PAUSED"))
	}
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.scene.Frame())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("x%d", m.speed)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(CurrentTheme.Name) + "\n")
	if earth := m.scene.System().Find("Earth"); earth != nil {
		s.WriteString(labelStyle.Render("Earth year") + ProgressBar(earth.Orbit.Angle/orbit.FullTurn, 20) + "\n")
	}

	if len(m.earthDist) > 1 {
		chart := asciigraph.Plot(m.earthDist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Earth-Sun distance"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if len(m.mercuryDist) > 1 {
		s.WriteString(labelStyle.Render("Mercury r") + SparklineChart(m.mercuryDist, 24) + "\n")
	}

	s.WriteString("\n" + Separator(panelWidth-6) + "\n")
	s.WriteString("REVOLUTIONS\n")
	counts := m.revs.Breakdown()
	if len(counts) == 0 {
		s.WriteString(labelStyle.Render("  (none yet)") + "\n")
	} else {
		names := make([]string, 0, len(counts))
		for k := range counts {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, n := range names {
			s.WriteString(labelStyle.Render("  "+n) + valueStyle.Render(fmt.Sprintf("%.0f", counts[n])) + "\n")
		}
	}

	if text := m.scene.Tooltip().Text(m.now); text != "" {
		title := "info"
		if m.scene.Tooltip().Pinned() {
			title = "info (pinned)"
		}
		s.WriteString("\n" + BoxWithTitle(title, text, panelWidth-8) + "\n")
	}

	if m.status != "" {
		s.WriteString("\n" + Subtle.Render(m.status) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit ?:Help\nT:Theme  G:Record O:Orbits"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return KeyHint.Render(helpText) + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N / .    - Single step when paused  ║
║  R        - Reset to frame zero      ║
║  + / -    - Double / halve speed     ║
║  O        - Toggle orbit guides      ║
║  P/Click  - Pin or release tooltip   ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run starts the live view with mouse motion reporting on.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
