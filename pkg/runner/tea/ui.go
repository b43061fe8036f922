package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/assets"
	"tableflip.dev/growth/pkg/content"
	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/printers"
	"tableflip.dev/growth/pkg/store"
	"tableflip.dev/growth/pkg/tui/help"
	"tableflip.dev/growth/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

type page int

const (
	pageHome page = iota
	pageJourney
	pageChallenges
	pageReflections
	pageAchievements
	pageCount
)

func (p page) title() string {
	switch p {
	case pageHome:
		return "🏠 Home"
	case pageJourney:
		return "📅 My Journey"
	case pageChallenges:
		return "🔄 Challenges"
	case pageReflections:
		return "💡 Reflections"
	case pageAchievements:
		return "🏆 Achievements"
	}
	return ""
}

func (p page) kind() (journal.Kind, bool) {
	switch p {
	case pageChallenges:
		return journal.Challenge, true
	case pageReflections:
		return journal.Reflection, true
	case pageAchievements:
		return journal.Achievement, true
	}
	return "", false
}

const (
	helpNormal = "c/r/a add · ←/→ pages · n new quote · ? help · q quit"
	helpInsert = "enter save · esc cancel"
	helpHelp   = "↑/↓ scroll · esc close"

	timelineLimit = 10
	sidebarWidth  = 34
)

// Options tune the dashboard.
type Options struct {
	Picker content.Picker
	// Fetcher loads the header animation; nil disables it.
	Fetcher *assets.Fetcher
}

// Model contains UI state.
type Model struct {
	svc     *app.Service
	ctx     context.Context
	theme   theme.Theme
	picker  content.Picker
	fetcher *assets.Fetcher

	page page
	mode mode
	kind journal.Kind

	input  textinput.Model
	help   help.Model
	prompt string
	quote  content.Quote
	banner string

	stats    app.Stats
	timeline []journal.Item
	lists    map[journal.Kind][]journal.Entry

	status    string
	statusErr bool

	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates a new UI model backed by the Service.
func New(ctx context.Context, svc *app.Service, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Prompt = "› "

	th := theme.Default()
	return Model{
		svc:     svc,
		ctx:     ctx,
		theme:   th,
		picker:  opts.Picker,
		fetcher: opts.Fetcher,
		input:   ti,
		help:    help.New(80, 20),
		prompt:  opts.Picker.Prompt(),
		quote:   opts.Picker.Quote(),
		lists:   map[journal.Kind][]journal.Entry{},
		status:  helpNormal,
	}
}

type loadedMsg struct {
	stats    app.Stats
	timeline []journal.Item
	lists    map[journal.Kind][]journal.Entry
	err      error
}

type addedMsg struct {
	kind  journal.Kind
	entry *journal.Entry
	err   error
}

type animationMsg struct {
	anim *assets.Animation
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Init loads initial data.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), startWatchCmd(m.ctx, m.svc), m.fetchAnimation())
}

func (m Model) load() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return loadedMsg{err: app.ErrNoStore}
		}
		var msg loadedMsg
		if msg.stats, msg.err = svc.Stats(ctx); msg.err != nil {
			return msg
		}
		if msg.timeline, msg.err = svc.Timeline(ctx, journal.TimelineOptions{Limit: timelineLimit}); msg.err != nil {
			return msg
		}
		msg.lists = make(map[journal.Kind][]journal.Entry, 3)
		for _, k := range journal.Kinds() {
			if msg.lists[k], msg.err = svc.Entries(ctx, k); msg.err != nil {
				return msg
			}
		}
		return msg
	}
}

func (m Model) reload() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	load := m.load()
	return func() tea.Msg {
		if svc == nil {
			return loadedMsg{err: app.ErrNoStore}
		}
		if _, err := svc.Reload(ctx); err != nil {
			return loadedMsg{err: err}
		}
		return load()
	}
}

func (m Model) add(k journal.Kind, text, prompt string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return addedMsg{kind: k, err: app.ErrNoStore}
		}
		e, err := svc.Add(ctx, app.AddOptions{Kind: k, Text: text, Prompt: prompt})
		return addedMsg{kind: k, entry: e, err: err}
	}
}

func (m Model) fetchAnimation() tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	f, ctx := m.fetcher, m.ctx
	return func() tea.Msg {
		anim, ok := f.Fetch(ctx, assets.GrowthURL)
		if !ok {
			return nil
		}
		return animationMsg{anim: anim}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "ERR: " + err.Error()
	m.statusErr = true
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if w := m.bodyWidth() - 6; w > 10 {
			m.input.Width = w
		}
		m.help.SetSize(m.helpSize())
	case loadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		m.stats = msg.stats
		m.timeline = msg.timeline
		m.lists = msg.lists
	case addedMsg:
		switch {
		case msg.err != nil:
			m.setError(msg.err)
		case msg.entry == nil:
			m.setStatus(fmt.Sprintf("Nothing recorded, the %s was empty.", msg.kind))
		default:
			m.setStatus(addedStatus(msg.kind))
			if msg.kind == journal.Reflection {
				m.prompt = m.picker.Prompt()
			}
			cmds = append(cmds, m.load())
		}
	case animationMsg:
		if msg.anim != nil {
			m.banner = msg.anim.Banner()
		}
	case watchStartedMsg:
		if msg.err != nil {
			// No live reload.
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		cmds = append(cmds, m.reload())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyMsg:
		switch m.mode {
		case modeInsert:
			return m.updateInsert(msg)
		case modeHelp:
			return m.updateHelp(msg)
		}
		return m.updateNormal(msg)
	default:
		if m.mode == modeInsert {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.stopWatch()
		return m, tea.Quit
	case tea.KeyEsc:
		m.endInsert()
		m.setStatus(helpNormal)
		return m, nil
	case tea.KeyEnter:
		text := m.input.Value()
		k := m.kind
		prompt := ""
		if k == journal.Reflection {
			prompt = m.prompt
		}
		m.endInsert()
		return m, m.add(k, text, prompt)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stopWatch()
		return m, tea.Quit
	case "esc", "q", "?":
		m.mode = modeNormal
		m.setStatus(helpNormal)
		return m, nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return m, cmd
}

func (m *Model) endInsert() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.Reset()
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.stopWatch()
		return m, tea.Quit
	case "right", "l", "tab":
		m.page = (m.page + 1) % pageCount
	case "left", "h", "shift+tab":
		m.page = (m.page + pageCount - 1) % pageCount
	case "c":
		return m.beginInsert(journal.Challenge)
	case "r":
		return m.beginInsert(journal.Reflection)
	case "a":
		return m.beginInsert(journal.Achievement)
	case "n":
		m.quote = m.picker.Quote()
		m.prompt = m.picker.Prompt()
	case "?":
		m.mode = modeHelp
		m.help = help.New(m.helpSize())
		m.setStatus(helpHelp)
	}
	return m, nil
}

func (m Model) beginInsert(k journal.Kind) (tea.Model, tea.Cmd) {
	m.page = pageHome
	m.mode = modeInsert
	m.kind = k
	m.input.Placeholder = placeholder(k, m.prompt)
	m.setStatus(helpInsert)
	return m, m.input.Focus()
}

func placeholder(k journal.Kind, prompt string) string {
	switch k {
	case journal.Challenge:
		return "What's challenging you today?"
	case journal.Reflection:
		return prompt
	}
	return "Celebrate a win!"
}

func addedStatus(k journal.Kind) string {
	switch k {
	case journal.Challenge:
		return "Challenge recorded! 💪"
	case journal.Reflection:
		return "Reflection saved! ✨"
	}
	return "Achievement added! 🎉"
}

func (m Model) bodyWidth() int {
	if m.termWidth == 0 {
		return 80
	}
	if m.wide() {
		return m.termWidth - sidebarWidth - 2
	}
	return m.termWidth
}

func (m Model) helpSize() (int, int) {
	h := m.termHeight - 6
	if m.termHeight == 0 {
		h = 20
	}
	return m.bodyWidth(), h
}

func (m Model) wide() bool {
	return m.termWidth >= 90
}

// View renders the dashboard.
func (m Model) View() string {
	header := "🌱 " + m.theme.Title("Growth Mindset Journey")
	if m.banner != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", m.theme.Panel.Faint.Render(m.banner))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, m.tabsView(), "", m.pageView())
	if m.mode == modeHelp {
		body = m.help.View()
	}
	side := m.sidebarView()

	var main string
	if m.wide() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(m.bodyWidth()).Render(body), "  ", side)
	} else {
		main = lipgloss.JoinVertical(lipgloss.Left, side, body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", main, "", m.footerView())
}

func (m Model) tabsView() string {
	tabs := make([]string, 0, pageCount)
	for p := pageHome; p < pageCount; p++ {
		style := m.theme.Form.Tab
		if p == m.page {
			style = m.theme.Form.ActiveTab
		}
		tabs = append(tabs, style.Render(p.title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) pageView() string {
	if m.page == pageHome {
		return m.homeView()
	}

	var b strings.Builder
	pp := &printers.PrettyPrint{Out: &b, Width: m.bodyWidth() - 2}
	if k, ok := m.page.kind(); ok {
		pp.Entries(k, m.lists[k]...)
	} else {
		pp.Timeline(m.timeline...)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) homeView() string {
	forms := []struct {
		kind  journal.Kind
		key   string
		title string
	}{
		{journal.Challenge, "c", "🌱 Daily Challenge"},
		{journal.Reflection, "r", "📖 Daily Reflection"},
		{journal.Achievement, "a", "🏆 Achievements"},
	}

	sections := make([]string, 0, len(forms))
	for _, f := range forms {
		title := m.theme.Panel.Title.Render(f.title) + m.theme.Panel.Faint.Render(" ["+f.key+"]")
		line := m.theme.Form.Prompt.Render(placeholder(f.kind, m.prompt))
		if m.mode == modeInsert && m.kind == f.kind {
			line = m.input.View()
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, title, line))
	}
	return strings.Join(sections, "\n\n")
}

func (m Model) sidebarView() string {
	c := m.stats.Counts
	counters := m.theme.CountersRow(
		theme.Counter{Label: "Challenges", Value: c.Challenges},
		theme.Counter{Label: "Reflections", Value: c.Reflections},
		theme.Counter{Label: "Achievements", Value: c.Achievements},
	)
	quote := m.theme.QuoteCard(m.quote.Text, m.quote.Author, sidebarWidth-6)
	return lipgloss.JoinVertical(lipgloss.Center, m.theme.StreakCard(m.stats.Streak), counters, quote)
}

func (m Model) footerView() string {
	if m.statusErr {
		return m.theme.Footer.Error.Render(m.status)
	}
	if m.status == helpNormal || m.status == helpInsert || m.status == helpHelp {
		return m.theme.Footer.Help.Render(m.status)
	}
	keys := helpNormal
	if m.mode == modeInsert {
		keys = helpInsert
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Footer.Status.Render(m.status), "  ", m.theme.Footer.Help.Render(keys))
}
