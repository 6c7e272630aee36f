package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

const menuBanner = "B L O C K F A L L"

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// MenuItem is one variant in the picker.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel lets the player pick a registered variant.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	chosen    bool
	quitting  bool
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
}

// NewMenuModel lists every registered variant. cfg carries the terminal size.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, info := range registry.List() {
		items = append(items, MenuItem{GameID: info.ID, Title: info.Title})
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
		case MenuActionSelect:
			if len(m.items) == 0 {
				break
			}
			m.chosen = true
			return m, tea.Quit
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.config.ScreenW
	lines := []string{
		"",
		centerText(menuTitleStyle.Render(menuBanner), width),
		"",
		centerText("Select a variant", width),
		"",
	}
	for i, item := range m.items {
		lines = append(lines, centerText(m.renderItem(i, item), width))
	}
	lines = append(lines, "", centerText(helpStyle.Render(m.help.View(m.keyMapper.MenuKeys())), width))

	return strings.Join(lines, "\n") + "\n"
}

func (m MenuModel) renderItem(i int, item MenuItem) string {
	if i == m.cursor {
		return menuSelectedStyle.Render("> " + item.Title)
	}
	return menuItemStyle.Render("  " + item.Title)
}

// Selected returns the chosen item, or nil until one is picked.
func (m MenuModel) Selected() *MenuItem {
	if !m.chosen {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// IsQuitting reports whether the player backed out of the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, tracking the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text so it sits in the middle of width cells.
// Styled text is measured by its printable width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what RunMenu reports back to the CLI.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu shows the picker full screen until the player chooses or quits.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	res := MenuResult{Config: m.Config()}
	if sel := m.Selected(); sel != nil && !m.IsQuitting() {
		res.GameID = sel.GameID
	} else {
		res.Quit = true
	}
	return res, nil
}
