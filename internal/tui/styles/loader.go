package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`
}

// DefaultThemeName is the built-in theme.
const DefaultThemeName = "default"

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// LoadThemeFile reads and validates a theme definition from path.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return &theme, nil
}

// Validate checks the theme file for required fields and valid colors.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme is missing a name")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version %q (expected \"1\")", t.Version)
	}

	required := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"warning":   t.Colors.Warning,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"surface":   t.Colors.Surface,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("theme %q is missing color %q", t.Name, name)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("theme %q: color %q is not a hex color: %q", t.Name, name, value)
		}
	}
	return nil
}

func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// Apply installs the theme's colors as the active palette and rebuilds the
// derived styles.
func (t *ThemeFile) Apply() {
	PrimaryColor = lipgloss.Color(t.Colors.Primary)
	SecondaryColor = lipgloss.Color(t.Colors.Secondary)
	WarningColor = lipgloss.Color(t.Colors.Warning)
	ErrorColor = lipgloss.Color(t.Colors.Error)
	MutedColor = lipgloss.Color(t.Colors.Muted)
	SurfaceColor = lipgloss.Color(t.Colors.Surface)
	TextColor = lipgloss.Color(t.Colors.Text)
	BorderColor = lipgloss.Color(t.Colors.Border)

	rebuild()
}

// rebuild recreates every style var from the current palette. Styles capture
// colors at construction, so swapping the palette alone is not enough.
func rebuild() {
	Primary = Primary.Foreground(PrimaryColor)
	Secondary = Secondary.Foreground(SecondaryColor)
	Warning = Warning.Foreground(WarningColor)
	Error = Error.Foreground(ErrorColor)
	Muted = Muted.Foreground(MutedColor)
	Text = Text.Foreground(TextColor)

	Title = Title.Foreground(PrimaryColor)
	Subtitle = Subtitle.Foreground(MutedColor)
	Header = Header.Foreground(PrimaryColor).BorderForeground(BorderColor)
	ContentBox = ContentBox.BorderForeground(BorderColor)
	Sidebar = Sidebar.BorderForeground(BorderColor)
	PanelTitle = PanelTitle.Foreground(TextColor)
	DayHeader = DayHeader.Foreground(SecondaryColor)
	SlotName = SlotName.Foreground(TextColor)
	ItemTitle = ItemTitle.Foreground(TextColor)
	PriceBadge = PriceBadge.Foreground(TextColor).Background(SurfaceColor)
	Link = Link.Foreground(SecondaryColor)
	ConfidenceFill = ConfidenceFill.Foreground(SecondaryColor)
	ConfidenceTrack = ConfidenceTrack.Foreground(BorderColor)
	Notification = Notification.Foreground(ErrorColor)
	HelpBar = HelpBar.Foreground(MutedColor)
	HelpKey = HelpKey.Foreground(SecondaryColor)
}

// ThemesDir returns the directory custom themes are loaded from.
func ThemesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "concierge", "themes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".concierge", "themes")
	}
	return filepath.Join(home, ".config", "concierge", "themes")
}

// ApplyTheme activates the named theme. "default" (or empty) keeps the
// built-in palette; any other name loads {ThemesDir}/{name}.yaml.
func ApplyTheme(name string) error {
	if name == "" || name == DefaultThemeName {
		return nil
	}

	theme, err := LoadThemeFile(filepath.Join(ThemesDir(), name+".yaml"))
	if err != nil {
		return err
	}
	theme.Apply()
	return nil
}
