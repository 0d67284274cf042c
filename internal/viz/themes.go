package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the terminal chrome and the orbit guides. Bodies always use
// their own palette colours.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Orbit     string
	Belt      string
	Star      string
}

var (
	ThemeDeep = Theme{
		Name:      "deep",
		Primary:   lipgloss.Color("#4682b4"),
		Secondary: lipgloss.Color("#00008b"),
		Accent:    lipgloss.Color("#ffa500"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Orbit:     "#2a2a44",
		Belt:      "#faf0e6",
		Star:      "#ffffff",
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Orbit:     "#004400",
		Belt:      "#00aa00",
		Star:      "#88ff88",
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Orbit:     "#444444",
		Belt:      "#aaaaaa",
		Star:      "#cccccc",
	}

	ThemeEmber = Theme{
		Name:      "ember",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Orbit:     "#4a2b3e",
		Belt:      "#ffc048",
		Star:      "#fff5f5",
	}

	CurrentTheme = ThemeDeep

	Themes = []Theme{
		ThemeDeep,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeEmber,
	}
)

// GetTheme returns a theme by name, falling back to deep.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDeep
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
