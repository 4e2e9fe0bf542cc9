package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybersky/showcase/counter"
	"github.com/cybersky/showcase/reveal"
	"github.com/cybersky/showcase/types"
)

// ViewState represents the current view mode
type ViewState int

const (
	ListView ViewState = iota
	DetailView
	ContactView
)

const headerHeight = 3

// Model is the main TUI model
type Model struct {
	source       types.CatalogSource
	catalog      types.Catalog
	loaded       bool
	list         list.Model
	viewport     viewport.Model
	spinner      spinner.Model
	help         help.Model
	keys         keyMap
	state        ViewState
	counterCfg   counter.Config
	counters     []counter.Model
	revealed     *reveal.Tracker[string]
	linkIndex    int
	contactIndex int
	width        int
	height       int
	loading      bool
	requestID    int
	err          error
	statusMsg    string
	clipboard    func(string) error
}

// NewModel creates a new Model reading from source
func NewModel(source types.CatalogSource, cfg counter.Config) Model {
	tracker := reveal.NewTracker[string]()

	l := list.New([]list.Item{}, ProductDelegate{revealed: tracker}, 0, 0)
	l.Title = "Portfolio"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = TitleStyle

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		source:     source,
		list:       l,
		viewport:   viewport.New(0, 0),
		spinner:    s,
		help:       help.New(),
		keys:       keys,
		state:      ListView,
		counterCfg: cfg,
		revealed:   tracker,
		loading:    true,
		requestID:  1,
		statusMsg:  "Loading catalog",
		clipboard:  clipboard.WriteAll,
	}
}

// Init starts the first catalog load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalog(m.source, m.requestID))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		m.revealVisible()
		if m.state == DetailView {
			m.refreshDetail()
		}
		return m, nil

	case catalogMsg:
		if msg.requestID != m.requestID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.statusMsg = "Failed to load catalog"
			return m, nil
		}
		return m.applyCatalog(msg.catalog)

	case counter.TickMsg:
		for i := range m.counters {
			if m.counters[i].ID() == msg.ID {
				var cmd tea.Cmd
				m.counters[i], cmd = m.counters[i].Update(msg)
				return m, cmd
			}
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.statusMsg = "Copy failed: " + msg.err.Error()
		} else {
			m.statusMsg = "Copied " + msg.text
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.requestID++
		m.statusMsg = "Reloading catalog"
		return m, tea.Batch(m.spinner.Tick, reloadCatalog(m.source, m.requestID))
	}

	switch m.state {
	case ListView:
		switch {
		case key.Matches(msg, m.keys.Enter):
			if _, ok := m.selectedProduct(); ok {
				m.state = DetailView
				m.linkIndex = 0
				m.refreshDetail()
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = ContactView
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			cmd := m.copySelectedLink()
			return m, cmd
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		m.revealVisible()
		return m, cmd

	case DetailView:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.state = ListView
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = ContactView
			return m, nil
		case key.Matches(msg, m.keys.PrevLink):
			m.moveLink(-1)
			return m, nil
		case key.Matches(msg, m.keys.NextLink):
			m.moveLink(1)
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			cmd := m.copySelectedLink()
			return m, cmd
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case ContactView:
		contacts := m.catalog.Contacts()
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Tab):
			m.state = ListView
		case key.Matches(msg, m.keys.Up):
			if m.contactIndex > 0 {
				m.contactIndex--
			}
		case key.Matches(msg, m.keys.Down):
			if m.contactIndex < len(contacts)-1 {
				m.contactIndex++
			}
		case key.Matches(msg, m.keys.Copy):
			if m.contactIndex >= len(contacts) {
				return m, nil
			}
			c := contacts[m.contactIndex]
			if c.Placeholder() {
				m.statusMsg = c.Label() + " has no link yet"
				return m, nil
			}
			return m, copyToClipboard(m.clipboard, c.URL())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) applyCatalog(c types.Catalog) (tea.Model, tea.Cmd) {
	next := make(map[string]struct{})
	products := c.Products()
	items := make([]list.Item, 0, len(products))
	for _, p := range products {
		items = append(items, p)
		next[p.Slug()] = struct{}{}
		m.revealed.Register(p.Slug(), nil)
	}
	for _, p := range m.catalog.Products() {
		if _, ok := next[p.Slug()]; !ok {
			m.revealed.Unregister(p.Slug())
		}
	}

	m.catalog = c
	m.loaded = true
	m.err = nil

	cmds := []tea.Cmd{m.list.SetItems(items)}
	m.list.Title = c.Site().PortfolioTitle
	if m.list.Title == "" {
		m.list.Title = "Portfolio"
	}

	stats := c.Stats()
	m.counters = make([]counter.Model, 0, len(stats))
	for _, s := range stats {
		cm, cmd := counter.NewModel(s.Value(), s.Suffix(), s.Label(), m.counterCfg).Start()
		m.counters = append(m.counters, cm)
		cmds = append(cmds, cmd)
	}

	if m.contactIndex >= len(c.Contacts()) {
		m.contactIndex = 0
	}
	if m.state == DetailView {
		if _, ok := m.selectedProduct(); ok {
			m.refreshDetail()
		} else {
			m.state = ListView
		}
	}

	m.revealVisible()
	m.statusMsg = fmt.Sprintf("%d products", len(products))
	return m, tea.Batch(cmds...)
}

// revealVisible marks every product on the current list page as revealed.
func (m *Model) revealVisible() {
	items := m.list.Items()
	if len(items) == 0 {
		return
	}
	start, end := m.list.Paginator.GetSliceBounds(len(items))
	visible := make([]string, 0, end-start)
	for _, it := range items[start:end] {
		if p, ok := it.(types.Product); ok {
			visible = append(visible, p.Slug())
		}
	}
	m.revealed.ObserveVisible(visible)
}

func (m Model) selectedProduct() (types.Product, bool) {
	p, ok := m.list.SelectedItem().(types.Product)
	return p, ok
}

func (m *Model) moveLink(delta int) {
	p, ok := m.selectedProduct()
	if !ok {
		return
	}
	n := len(p.Platforms())
	if n == 0 {
		return
	}
	m.linkIndex = (m.linkIndex + delta + n) % n
	m.refreshDetail()
}

func (m *Model) copySelectedLink() tea.Cmd {
	p, ok := m.selectedProduct()
	if !ok {
		return nil
	}
	links := types.ResolveLinks(p)
	if len(links) == 0 {
		m.statusMsg = p.Name() + " lists no platforms"
		return nil
	}
	idx := 0
	if m.state == DetailView && m.linkIndex < len(links) {
		idx = m.linkIndex
	}
	l := links[idx]
	if l.URL == types.PlaceholderLink {
		m.statusMsg = fmt.Sprintf("%s has no %s link", p.Name(), l.Platform.Label())
		return nil
	}
	return copyToClipboard(m.clipboard, l.URL)
}

func (m *Model) refreshDetail() {
	p, ok := m.selectedProduct()
	if !ok {
		return
	}
	m.viewport.SetContent(renderDetail(p, m.linkIndex, m.width))
}

// resizePanes adjusts the dimensions of list and viewport based on window size
func (m *Model) resizePanes() {
	statusHeight := 1
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	availableHeight := m.height - headerHeight - statusHeight - helpHeight
	if availableHeight < 0 {
		availableHeight = 0
	}

	m.list.SetSize(m.width, availableHeight)
	m.help.Width = m.width
	m.viewport.Width = m.width
	m.viewport.Height = availableHeight
}

// View renders the current view
func (m Model) View() string {
	var body string
	switch {
	case !m.loaded && m.err != nil:
		body = ErrorStyle.Render("Error: " + m.err.Error())
	case !m.loaded:
		body = m.spinner.View() + " Loading catalog..."
	default:
		switch m.state {
		case ListView:
			body = m.list.View()
		case DetailView:
			body = m.viewport.View()
		case ContactView:
			body = renderContacts(m.catalog, m.contactIndex)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.statusView(),
		m.help.View(m.keys),
	)
}
