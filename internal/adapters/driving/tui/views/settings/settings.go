// Package settings provides the settings panel for the TUI.
package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
	"github.com/custodia-labs/pagecal-cli/internal/core/ports/driving"
)

// Field indices in focus order.
const (
	fieldAPIKey = iota
	fieldModel
	fieldTimeZone
	fieldCount
)

// View is the settings panel.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error

	inputs  [fieldCount]textinput.Model
	focused int

	width  int
	height int
}

// NewView creates a new settings panel.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	apiKeyInput := textinput.New()
	apiKeyInput.Placeholder = "sk-ant-..."
	apiKeyInput.EchoMode = textinput.EchoPassword
	apiKeyInput.CharLimit = 256

	modelInput := textinput.New()
	modelInput.Placeholder = domain.DefaultModel
	modelInput.CharLimit = 128

	timeZoneInput := textinput.New()
	timeZoneInput.Placeholder = "Europe/London"
	timeZoneInput.CharLimit = 64

	v := &View{
		styles:          s,
		settingsService: settingsService,
	}
	v.inputs[fieldAPIKey] = apiKeyInput
	v.inputs[fieldModel] = modelInput
	v.inputs[fieldTimeZone] = timeZoneInput
	return v
}

// Init initialises the panel and loads settings.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.loadSettings(), v.focusField(fieldAPIKey))
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.settings = msg.Settings
		v.err = nil
		v.inputs[fieldModel].SetValue(msg.Settings.Anthropic.Model)
		v.inputs[fieldTimeZone].SetValue(msg.Settings.Calendar.TimeZone)
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewEvents} }

	case "enter":
		return v, v.save()

	case "tab", "down":
		return v, v.focusField((v.focused + 1) % fieldCount)

	case "shift+tab", "up":
		return v, v.focusField((v.focused + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
	return v, cmd
}

// save writes the edited fields through the settings service. The API
// key is only touched when a new value was typed, so leaving the field
// blank keeps the stored key.
func (v *View) save() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		if key := strings.TrimSpace(v.inputs[fieldAPIKey].Value()); key != "" {
			if err := v.settingsService.SetAPIKey(key); err != nil {
				return messages.SettingsSaved{Err: err}
			}
		}
		if err := v.settingsService.SetModel(strings.TrimSpace(v.inputs[fieldModel].Value())); err != nil {
			return messages.SettingsSaved{Err: err}
		}
		if err := v.settingsService.SetTimeZone(strings.TrimSpace(v.inputs[fieldTimeZone].Value())); err != nil {
			return messages.SettingsSaved{Err: err}
		}
		return messages.SettingsSaved{}
	}
}

func (v *View) focusField(index int) tea.Cmd {
	v.focused = index
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	return v.inputs[index].Focus()
}

// Focused returns the focused field index, for tests.
func (v *View) Focused() int {
	return v.focused
}

// View renders the settings panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	labels := [fieldCount]string{v.apiKeyLabel(), "Model", "Time zone (IANA)"}
	for i := range v.inputs {
		if i == v.focused {
			b.WriteString(v.styles.Selected.Render(labels[i]))
		} else {
			b.WriteString(v.styles.Normal.Render(labels[i]))
		}
		b.WriteString("\n")
		b.WriteString(v.inputs[i].View())
		b.WriteString("\n")
	}

	if v.settingsService != nil {
		b.WriteString("\n")
		if err := v.settingsService.Validate(); err != nil {
			b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warning: %s", err.Error())))
		} else {
			b.WriteString(v.styles.Success.Render("Configuration is valid"))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] save  [esc] back"))

	return b.String()
}

func (v *View) apiKeyLabel() string {
	if v.settings != nil && v.settings.Anthropic.IsConfigured() {
		return fmt.Sprintf("Anthropic API key (current: %s)", domain.MaskAPIKey(v.settings.Anthropic.APIKey))
	}
	return "Anthropic API key (not set)"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Reset clears transient state before the panel is shown again.
func (v *View) Reset() {
	v.err = nil
	v.inputs[fieldAPIKey].SetValue("")
	v.focused = fieldAPIKey
}
