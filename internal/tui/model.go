package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	zone "github.com/lrstanley/bubblezone/v2"

	"tkapp/internal/config"
	"tkapp/internal/constants"
	"tkapp/internal/launch"
	"tkapp/internal/logger"
	"tkapp/internal/strutil"
)

// Tab is one rendered tab: a category's enabled entries, or the About view.
type Tab struct {
	Name    string
	Entries []config.Entry
	About   bool
}

// newTabs maps the loaded configuration onto tabs, one per category in
// document order, with the mandatory About tab last. Disabled entries never
// make it into a tab.
func newTabs(cfg config.LauncherConfig) []Tab {
	tabs := make([]Tab, 0, len(cfg.Categories)+1)
	for _, cat := range cfg.Categories {
		tabs = append(tabs, Tab{Name: cat.Name, Entries: cat.EnabledEntries()})
	}
	tabs = append(tabs, Tab{Name: constants.AboutTabName, About: true})
	return tabs
}

// Messages
type (
	// launchResultMsg reports whether process creation for an entry
	// succeeded. Failures open an error dialog; the loop keeps running.
	launchResultMsg struct {
		Entry config.Entry
		Err   error
	}

	// openLinkResultMsg reports the outcome of opening the About link.
	openLinkResultMsg struct {
		Err error
	}
)

// Model is the launcher's top-level bubbletea model.
type Model struct {
	ctx        context.Context
	cfg        config.LauncherConfig
	dispatcher *launch.Dispatcher
	styles     Styles
	help       help.Model

	tabs    []Tab
	active  int // active tab index
	cursor  int // selected button row within the active tab
	aboutHL bool

	dialog *messageDialog
	opener func(url string) error

	width  int
	height int
	ready  bool
}

// NewModel builds the launcher model. A non-nil startupErr (the
// configuration-load failure) is shown once as a dialog over the UI, which
// then keeps running with whatever configuration it got.
func NewModel(ctx context.Context, cfg config.LauncherConfig, settings config.AppSettings, dispatcher *launch.Dispatcher, startupErr error) Model {
	m := Model{
		ctx:        ctx,
		cfg:        cfg,
		dispatcher: dispatcher,
		styles:     NewStyles(settings.UI),
		help:       help.New(),
		tabs:       newTabs(cfg),
		opener:     openURL,
	}
	if startupErr != nil {
		m.dialog = newMessageDialog("Configuration Error", startupErr.Error(), MessageError)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// currentTab returns the active tab.
func (m Model) currentTab() Tab {
	return m.tabs[m.active]
}

// launchCmd starts the entry off the event loop. The dispatcher only waits
// for process creation, never for the child, so the UI stays responsive.
func (m Model) launchCmd(entry config.Entry) tea.Cmd {
	return func() tea.Msg {
		return launchResultMsg{Entry: entry, Err: m.dispatcher.Launch(m.ctx, entry)}
	}
}

// openLinkCmd opens the attribution link in the default browser.
func (m Model) openLinkCmd() tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		return openLinkResultMsg{Err: opener(constants.ProjectURL)}
	}
}

// selectTab activates a tab and resets the row selection.
func (m *Model) selectTab(i int) {
	if i < 0 {
		i = len(m.tabs) - 1
	}
	if i >= len(m.tabs) {
		i = 0
	}
	m.active = i
	m.cursor = 0
	m.aboutHL = false
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.ready = true
		return m, nil

	case launchResultMsg:
		if msg.Err != nil {
			logger.Error(m.ctx, "Launch of '%s' failed: %v", msg.Entry.Name, msg.Err)
			m.dialog = newMessageDialog("Launch Error",
				fmt.Sprintf("Failed to launch '%s':\n%v", msg.Entry.Name, msg.Err), MessageError)
		} else {
			logger.Notice(m.ctx, "Launched '%s'", msg.Entry.Name)
		}
		return m, nil

	case openLinkResultMsg:
		if msg.Err != nil {
			m.dialog = newMessageDialog("Error",
				fmt.Sprintf("Failed to open browser:\n%v", msg.Err), MessageError)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, Keys.ForceQuit) {
			return m, tea.Quit
		}

		// A modal dialog eats everything else; any key closes it
		if m.dialog != nil {
			m.dialog = nil
			return m, nil
		}

		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, Keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, Keys.Left), key.Matches(msg, Keys.ShiftTab):
			m.selectTab(m.active - 1)
			return m, nil

		case key.Matches(msg, Keys.Right), key.Matches(msg, Keys.Tab):
			m.selectTab(m.active + 1)
			return m, nil

		case key.Matches(msg, Keys.Up):
			if m.currentTab().About {
				m.aboutHL = false
			} else if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, Keys.Down):
			if m.currentTab().About {
				m.aboutHL = true
			} else if m.cursor < len(m.currentTab().Entries)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, Keys.Enter):
			tab := m.currentTab()
			if tab.About {
				if m.aboutHL {
					return m, m.openLinkCmd()
				}
				return m, nil
			}
			if m.cursor < len(tab.Entries) {
				return m, m.launchCmd(tab.Entries[m.cursor])
			}
			return m, nil
		}
		return m, nil

	case tea.MouseMsg:
		click, ok := msg.(tea.MouseClickMsg)
		if !ok || click.Button != tea.MouseLeft {
			return m, nil
		}
		return m.handleClick(click)
	}

	return m, nil
}

// handleClick resolves a left click against the marked zones.
func (m Model) handleClick(click tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		if z := zone.Get(zoneDialogOK); z != nil && z.InBounds(click) {
			m.dialog = nil
		}
		return m, nil
	}

	for i := range m.tabs {
		if z := zone.Get(zoneTab(i)); z != nil && z.InBounds(click) {
			m.selectTab(i)
			return m, nil
		}
	}

	tab := m.currentTab()
	if tab.About {
		if z := zone.Get(zoneAboutLink); z != nil && z.InBounds(click) {
			m.aboutHL = true
			return m, m.openLinkCmd()
		}
		return m, nil
	}

	for j, entry := range tab.Entries {
		if z := zone.Get(zoneEntry(j)); z != nil && z.InBounds(click) {
			m.cursor = j
			return m, m.launchCmd(entry)
		}
	}

	return m, nil
}

func zoneTab(i int) string {
	return fmt.Sprintf("tab/%d", i)
}

func zoneEntry(j int) string {
	return fmt.Sprintf("entry/%d", j)
}

// View implements tea.Model
func (m Model) View() tea.View {
	if !m.ready {
		return tea.NewView("")
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.cfg.Title))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	content := m.renderContent()
	helpline := m.styles.HelpLine.Render(m.help.View(Keys))

	// Reserve space so the helpline stays pinned to the bottom
	used := lipgloss.Height(b.String()) + lipgloss.Height(helpline) + 1
	contentHeight := m.height - used - m.styles.Screen.GetVerticalPadding()
	if contentHeight < lipgloss.Height(content) {
		contentHeight = lipgloss.Height(content)
	}

	if m.dialog != nil {
		innerWidth := m.width - m.styles.Screen.GetHorizontalPadding()
		content = lipgloss.Place(
			innerWidth, contentHeight,
			lipgloss.Center, lipgloss.Center,
			m.dialog.render(m.styles, m.width),
		)
	} else {
		content = lipgloss.NewStyle().Height(contentHeight).Render(content)
	}

	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(helpline)

	v := tea.NewView(zone.Scan(m.styles.Screen.Render(b.String())))
	v.WindowTitle = m.cfg.Title
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// renderTabBar renders every tab label, active one highlighted.
func (m Model) renderTabBar() string {
	maxLabel := 24
	rendered := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		label := strutil.Limit(tab.Name, maxLabel)
		style := m.styles.TabInactive
		if i == m.active {
			style = m.styles.TabActive
		}
		rendered = append(rendered, zone.Mark(zoneTab(i), style.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

// renderContent renders the active tab: the button column for a category,
// or the About view.
func (m Model) renderContent() string {
	tab := m.currentTab()
	if tab.About {
		return renderAbout(m.styles, m.cfg.About, m.width, m.aboutHL)
	}

	if len(tab.Entries) == 0 {
		return m.styles.TabGap.Render("No applications in this category.")
	}

	// Uniform button width keeps the column aligned
	buttonWidth := 0
	for _, entry := range tab.Entries {
		if w := lipgloss.Width(entry.Name); w > buttonWidth {
			buttonWidth = w
		}
	}
	if buttonWidth > m.width-12 {
		buttonWidth = m.width - 12
	}

	rows := make([]string, 0, len(tab.Entries))
	for j, entry := range tab.Entries {
		style := m.styles.ButtonInactive
		if j == m.cursor {
			style = m.styles.ButtonActive
		}
		label := strutil.Limit(entry.Name, buttonWidth)
		label += strutil.Repeat(" ", buttonWidth-lipgloss.Width(label))
		rows = append(rows, zone.Mark(zoneEntry(j), style.Render(label)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
