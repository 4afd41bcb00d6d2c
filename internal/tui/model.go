// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/dropdown"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/search"
	"github.com/MKhiriev/address-search/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerLines      = 2
	inputRow         = appPaddingTop + headerLines
	maxDropdownRows  = 6
	defaultWidth     = 64
	minWidth         = 24
	previousPreview  = 3
	indicatorWidth   = 10
	inputCharLimit   = 100
	inputPlaceholder = "Search address"
)

// searchModel renders the address search widget. It is a pointer model so
// the dropdown blur callback can reach the text input.
type searchModel struct {
	coordinator search.SearchCoordinator
	dropdown    *dropdown.Controller
	events      *eventBus
	notifier    *Notifier
	updates     chan struct{}
	unsubscribe func()

	input   textinput.Model
	spinner spinner.Model

	state    models.SearchState
	previous models.LastResults

	toast    toastMsg
	toastID  int
	toastTTL time.Duration

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	width     int
	region    dropdown.Region
	highlight int
	offset    int
	rows      int

	copyToClipboard func(string) error
	logger          *logger.Logger
}

func newSearchModel(
	coordinator search.SearchCoordinator,
	notifier *Notifier,
	cfg config.ClientSearch,
	buildInfo models.AppBuildInfo,
	previous models.LastResults,
	log *logger.Logger,
) *searchModel {
	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = "> "
	input.CharLimit = inputCharLimit
	input.Focus()

	toastTTL := cfg.NotificationTTL
	if toastTTL <= 0 {
		toastTTL = config.DefaultNotificationTTL
	}

	m := &searchModel{
		coordinator:     coordinator,
		events:          newEventBus(),
		notifier:        notifier,
		updates:         make(chan struct{}, 1),
		input:           input,
		spinner:         spinner.New(spinner.WithSpinner(spinner.Dot)),
		previous:        previous,
		toastTTL:        toastTTL,
		buildInfo:       buildInfo,
		highlight:       -1,
		copyToClipboard: clipboard.WriteAll,
		logger:          log,
	}
	m.input.Width = m.inputWidth()

	m.dropdown = dropdown.NewController(coordinator, dropdown.WithBlur(m.blur))
	m.dropdown.Attach(m.events)
	m.unsubscribe = coordinator.Subscribe(m.signal)
	m.refresh()

	return m
}

// signal is the coordinator subscriber. It runs on coordinator goroutines and
// only wakes up the event loop.
func (m *searchModel) signal(models.SearchState) {
	select {
	case m.updates <- struct{}{}:
	default:
	}
}

func (m *searchModel) waitForState() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		<-updates
		return stateChangedMsg{}
	}
}

func (m *searchModel) close() {
	m.dropdown.Detach()
	m.unsubscribe()
}

func (m *searchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.waitForState(), m.notifier.wait())
}

func (m *searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = m.inputWidth()
		m.layout()
		return m, nil

	case stateChangedMsg:
		m.refresh()
		return m, m.waitForState()

	case toastMsg:
		return m, tea.Batch(m.showToast(msg), m.notifier.wait())

	case clearToastMsg:
		if msg.id == m.toastID {
			m.toast = toastMsg{}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateInput(msg)
}

func (m *searchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, m.copySelection()
	case key.Matches(msg, keys.clear):
		m.coordinator.OnClear()
		m.refresh()
		return m, nil
	case key.Matches(msg, keys.restore):
		return m, m.restorePrevious()
	}

	if !m.input.Focused() {
		switch {
		case key.Matches(msg, keys.quitBlur):
			return m, tea.Quit
		case key.Matches(msg, keys.focus):
			return m, m.focus()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.events.emitKey(dropdown.KeyEvent{Key: dropdown.KeyEscape})
	case key.Matches(msg, keys.up):
		m.events.emitKey(dropdown.KeyEvent{Key: dropdown.KeyUp})
	case key.Matches(msg, keys.down):
		if m.dropdown.Visible() {
			m.events.emitKey(dropdown.KeyEvent{Key: dropdown.KeyDown})
		} else {
			m.coordinator.SetDropdownOpen(true)
		}
	case key.Matches(msg, keys.enter):
		m.events.emitKey(dropdown.KeyEvent{Key: dropdown.KeyEnter})
	default:
		return m, m.updateInput(msg)
	}

	m.refresh()
	return m, nil
}

func (m *searchModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showBuildInfo {
		return nil
	}

	if tea.MouseEvent(msg).IsWheel() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.dropdown.MoveUp()
		case tea.MouseButtonWheelDown:
			m.dropdown.MoveDown()
		}
		m.refresh()
		return nil
	}

	ev, ok := pointerEvent(msg)
	if !ok {
		return nil
	}
	m.events.emitPointer(ev)

	var cmd tea.Cmd
	if ev.Kind == dropdown.PointerPress && msg.Button == tea.MouseButtonLeft && m.region.Contains(ev.X, ev.Y) {
		row := ev.Y - inputRow
		switch {
		case row == 0:
			cmd = m.focus()
		case row <= m.rows:
			m.dropdown.Click(m.offset + row - 1)
		}
	}

	m.refresh()
	return cmd
}

// updateInput feeds msg to the text input and reports edits to the
// coordinator.
func (m *searchModel) updateInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		m.coordinator.OnInputChange(after)
		m.refresh()
	}
	return cmd
}

func (m *searchModel) focus() tea.Cmd {
	m.dropdown.SetFocused(true)
	return m.input.Focus()
}

func (m *searchModel) blur() {
	m.input.Blur()
}

func (m *searchModel) copySelection() tea.Cmd {
	text := m.input.Value()
	if items := m.dropdown.Items(); m.highlight >= 0 && m.highlight < len(items) {
		text = items[m.highlight].Label()
	}

	if strings.TrimSpace(text) == "" {
		return m.showToast(toastMsg{kind: toastInfo, text: "Nothing to copy"})
	}

	if err := m.copyToClipboard(text); err != nil {
		m.logger.Err(err).Str("func", "*searchModel.copySelection").Msg("error copying to clipboard")
		return m.showToast(toastMsg{kind: toastError, text: "Copy failed"})
	}
	return m.showToast(toastMsg{kind: toastSuccess, text: "Copied to clipboard"})
}

func (m *searchModel) restorePrevious() tea.Cmd {
	if m.previous.Term == "" {
		return m.showToast(toastMsg{kind: toastInfo, text: "No previous search"})
	}

	m.coordinator.OnInputChange(m.previous.Term)
	m.refresh()
	return m.focus()
}

func (m *searchModel) showToast(t toastMsg) tea.Cmd {
	m.toastID++
	m.toast = t

	id := m.toastID
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return clearToastMsg{id: id}
	})
}

// refresh pulls the coordinator state and mirrors the term into the input.
func (m *searchModel) refresh() {
	m.state = m.coordinator.State()

	if term := m.state.TermValue(); term != m.input.Value() {
		m.input.SetValue(term)
		m.input.CursorEnd()
	}

	if m.state.Phase == models.PhaseOpen && len(m.state.Results) > 0 {
		m.previous = models.LastResults{
			Term:      m.state.TermValue(),
			Addresses: m.state.Results,
			SavedAt:   time.Now(),
		}
	}

	m.layout()
}

// layout recomputes the dropdown window and the widget region handed to the
// dropdown controller.
func (m *searchModel) layout() {
	items := 0
	if m.state.DropdownOpen {
		items = len(m.state.Results)
	}

	m.highlight = m.dropdown.Highlighted()
	m.offset, m.rows = visibleWindow(m.highlight, items, maxDropdownRows)

	height := 1 + m.rows
	if items > m.rows {
		height++
	}

	m.region = dropdown.Region{X: appPaddingLeft, Y: inputRow, Width: m.widgetWidth(), Height: height}
	m.dropdown.SetRegion(m.region)
}

func (m *searchModel) widgetWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return max(m.width-2*appPaddingLeft, minWidth)
}

func (m *searchModel) inputWidth() int {
	return max(m.widgetWidth()-len(m.input.Prompt)-indicatorWidth, 1)
}

func (m *searchModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	width := m.widgetWidth()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Address search"))
	b.WriteString("\n")
	b.WriteString(fitText(uiDivider, width))
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString(" ")
	b.WriteString(m.indicator())
	b.WriteString("\n")

	if m.state.DropdownOpen && len(m.state.Results) > 0 {
		for i := m.offset; i < m.offset+m.rows; i++ {
			b.WriteString(m.renderItem(i, width))
			b.WriteString("\n")
		}
		if more := len(m.state.Results) - m.rows; more > 0 {
			b.WriteString(helpStyle.Render(fmt.Sprintf(" … %d more", more)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus(width))
	b.WriteString(m.renderToast())
	b.WriteString(helpStyle.Render(m.help()))

	return appStyle.Render(b.String())
}

func (m *searchModel) indicator() string {
	term := m.state.TermValue()
	switch {
	case m.state.IsLoading && term != "":
		return m.spinner.View()
	case term != "":
		return helpStyle.Render("✕ ctrl+l")
	}
	return ""
}

func (m *searchModel) renderItem(i, width int) string {
	addr := m.state.Results[i]

	label := fitText(" "+addr.Label(), width)
	detail := ""
	if addr.Municipality != "" && lipgloss.Width(label)+2+lipgloss.Width(addr.Municipality) <= width {
		detail = "  " + addr.Municipality
	}

	if i == m.highlight {
		return highlightStyle.Render(label + detail)
	}
	return itemStyle.Render(label) + itemDetailStyle.Render(detail)
}

func (m *searchModel) renderStatus(width int) string {
	switch {
	case m.state.Error != nil:
		return errorStyle.Render(fitText("! "+humanizeServerUnavailableError(m.state.ErrorValue()), width)) + "\n"

	case m.state.Phase == models.PhaseClosed && len(m.state.Results) == 0:
		return helpStyle.Render("No addresses found") + "\n"

	case m.state.TermValue() == "" && m.previous.Term != "":
		var b strings.Builder
		b.WriteString(previousHdrStyle.Render(fitText(
			fmt.Sprintf("Last search %q: %d addresses (ctrl+r to repeat)", m.previous.Term, len(m.previous.Addresses)),
			width,
		)))
		b.WriteString("\n")
		for i, addr := range m.previous.Addresses {
			if i == previousPreview {
				break
			}
			b.WriteString(itemDetailStyle.Render(fitText("  "+addr.Label(), width)))
			b.WriteString("\n")
		}
		return b.String()
	}
	return ""
}

func (m *searchModel) renderToast() string {
	if m.toast.text == "" {
		return ""
	}

	switch m.toast.kind {
	case toastError:
		return errorStyle.Render(m.toast.text) + "\n"
	case toastSuccess:
		return successStyle.Render(m.toast.text) + "\n"
	default:
		return m.toast.text + "\n"
	}
}

func (m *searchModel) help() string {
	if !m.input.Focused() {
		return "tab: focus • q: quit • f1: about"
	}
	return "↑/↓: move • enter: select • esc: close • ctrl+y: copy • f1: about • ctrl+c: quit"
}
