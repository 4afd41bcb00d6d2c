package tui

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fake coordinator
// ─────────────────────────────────────────────

type fakeCoordinator struct {
	mu       sync.Mutex
	state    models.SearchState
	inputs   []string
	selected []models.Address
	cleared  int
	subs     map[int]func(models.SearchState)
	nextSub  int
}

func newFakeCoordinator() *fakeCoordinator {
	return &fakeCoordinator{
		state: models.SearchState{Results: []models.Address{}},
		subs:  make(map[int]func(models.SearchState)),
	}
}

func (f *fakeCoordinator) OnInputChange(text string) {
	f.mu.Lock()
	f.inputs = append(f.inputs, text)
	f.state.Term = &text
	f.state.Results = []models.Address{}
	f.state.DropdownOpen = false
	f.state.Phase = models.PhaseTyping
	f.mu.Unlock()
	f.publish()
}

func (f *fakeCoordinator) OnItemSelect(address models.Address) {
	f.mu.Lock()
	f.selected = append(f.selected, address)
	label := address.Label()
	f.state.Term = &label
	f.state.DropdownOpen = false
	f.state.Phase = models.PhaseClosed
	f.mu.Unlock()
	f.publish()
}

func (f *fakeCoordinator) OnClear() {
	f.mu.Lock()
	f.cleared++
	f.state = models.SearchState{Results: []models.Address{}}
	f.mu.Unlock()
	f.publish()
}

func (f *fakeCoordinator) SetDropdownOpen(open bool) {
	f.mu.Lock()
	if open && (len(f.state.Results) == 0 || f.state.Error != nil) {
		f.mu.Unlock()
		return
	}
	f.state.DropdownOpen = open
	f.mu.Unlock()
	f.publish()
}

func (f *fakeCoordinator) State() models.SearchState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone()
}

func (f *fakeCoordinator) Subscribe(fn func(models.SearchState)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextSub
	f.nextSub++
	f.subs[id] = fn
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *fakeCoordinator) Close() {}

func (f *fakeCoordinator) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// set replaces the state as if a lookup had completed.
func (f *fakeCoordinator) set(s models.SearchState) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
	f.publish()
}

func (f *fakeCoordinator) publish() {
	f.mu.Lock()
	s := f.state.Clone()
	subs := make([]func(models.SearchState), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testResults = []models.Address{
	{TSID: "1", Street: "Karl Johans gate", PostNumber: 154, City: "OSLO", Municipality: "Oslo"},
	{TSID: "2", Street: "Karl Johans gate", PostNumber: 157, City: "OSLO", Municipality: "Oslo"},
	{TSID: "3", Street: "Karlsrudveien", PostNumber: 1178, City: "OSLO"},
}

func openState(term string, results []models.Address) models.SearchState {
	return models.SearchState{Term: &term, Results: results, DropdownOpen: true, Phase: models.PhaseOpen}
}

func newTestModel(t *testing.T) (*searchModel, *fakeCoordinator) {
	t.Helper()

	coord := newFakeCoordinator()
	m := newSearchModel(
		coord,
		NewNotifier(),
		config.ClientSearch{NotificationTTL: time.Second},
		models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"),
		models.LastResults{},
		logger.Nop(),
	)
	t.Cleanup(m.close)
	return m, coord
}

func typeText(m *searchModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *searchModel, kt tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: kt})
	return cmd
}

func click(m *searchModel, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// ─────────────────────────────────────────────
// Input
// ─────────────────────────────────────────────

func TestSearchModel_TypingReportsEveryEdit(t *testing.T) {
	m, coord := newTestModel(t)

	typeText(m, "Osl")

	assert.Equal(t, []string{"O", "Os", "Osl"}, coord.inputs)
	assert.Equal(t, "Osl", m.input.Value())

	press(m, tea.KeyBackspace)
	assert.Equal(t, "Os", coord.inputs[len(coord.inputs)-1])
}

func TestSearchModel_StateChangeMirrorsTerm(t *testing.T) {
	m, coord := newTestModel(t)

	coord.set(openState("Karl", testResults))
	m.Update(stateChangedMsg{})

	assert.Equal(t, "Karl", m.input.Value())
	assert.True(t, m.state.DropdownOpen)
	assert.Len(t, m.state.Results, 3)
}

func TestSearchModel_SubscriberWakesEventLoop(t *testing.T) {
	m, coord := newTestModel(t)

	coord.set(openState("Karl", testResults))
	coord.set(openState("Karl", testResults[:1]))

	msg := m.waitForState()()
	assert.IsType(t, stateChangedMsg{}, msg)

	select {
	case <-m.updates:
		t.Fatal("signals must coalesce into one pending wake-up")
	default:
	}
}

func TestSearchModel_ClearResetsInput(t *testing.T) {
	m, coord := newTestModel(t)
	typeText(m, "Oslo")

	press(m, tea.KeyCtrlL)

	assert.Equal(t, 1, coord.cleared)
	assert.Equal(t, "", m.input.Value())
}

// ─────────────────────────────────────────────
// Dropdown keys
// ─────────────────────────────────────────────

func TestSearchModel_KeyboardSelection(t *testing.T) {
	m, coord := newTestModel(t)
	coord.set(openState("Karl", testResults))
	m.Update(stateChangedMsg{})

	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	assert.Equal(t, 1, m.highlight)

	press(m, tea.KeyUp)
	assert.Equal(t, 0, m.highlight)

	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	require.Len(t, coord.selected, 1)
	assert.Equal(t, testResults[1], coord.selected[0])
	assert.Equal(t, "Karl Johans gate, 157, OSLO", m.input.Value())
	assert.False(t, m.state.DropdownOpen)
	assert.Equal(t, -1, m.highlight)
}

func TestSearchModel_DownReopensClosedDropdown(t *testing.T) {
	m, coord := newTestModel(t)
	s := openState("Karl", testResults)
	s.DropdownOpen = false
	coord.set(s)
	m.Update(stateChangedMsg{})

	press(m, tea.KeyDown)

	assert.True(t, m.state.DropdownOpen)
	assert.Equal(t, -1, m.highlight, "reopening does not highlight")
}

func TestSearchModel_EscapeClosesAndBlurs(t *testing.T) {
	m, coord := newTestModel(t)
	coord.set(openState("Karl", testResults))
	m.Update(stateChangedMsg{})

	press(m, tea.KeyEsc)

	assert.False(t, m.state.DropdownOpen)
	assert.False(t, m.input.Focused())
	assert.False(t, m.dropdown.Focused())

	// typing is ignored while blurred
	typeText(m, "x")
	assert.Empty(t, coord.inputs)

	press(m, tea.KeyTab)
	assert.True(t, m.input.Focused())
	assert.True(t, m.dropdown.Focused())
}

func TestSearchModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// "q" is text while focused
	typeText(m, "q")
	assert.Equal(t, "q", m.input.Value())

	press(m, tea.KeyEsc)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ─────────────────────────────────────────────
// Mouse
// ─────────────────────────────────────────────

func TestSearchModel_ClickOutsideClosesDropdown(t *testing.T) {
	m, coord := newTestModel(t)
	coord.set(openState("Karl", testResults))
	m.Update(stateChangedMsg{})

	click(m, appPaddingLeft+1, inputRow+10)

	assert.False(t, m.state.DropdownOpen)
	assert.Empty(t, coord.selected)
	assert.True(t, m.input.Focused(), "outside click only closes the dropdown")
}

func TestSearchModel_ClickInsideKeepsDropdownOpen(t *testing.T) {
	m, coord := newTestModel(t)
	coord.set(openState("Karl", testResults))
	m.Update(stateChangedMsg{})

	click(m, appPaddingLeft+1, inputRow)

	assert.True(t, m.state.DropdownOpen)
}

func TestSearchModel_ClickItemSelects(t *testing.T) {
	m, coord := newTestModel(t)
	coord.set(openState("Karl", testResults))
	m.Update(stateChangedMsg{})

	click(m, appPaddingLeft+3, inputRow+3)

	require.Len(t, coord.selected, 1)
	assert.Equal(t, testResults[2], coord.selected[0])
	assert.False(t, m.state.DropdownOpen)
	assert.Equal(t, "Karlsrudveien, 1178, OSLO", m.input.Value())
}

func TestSearchModel_WheelMovesHighlight(t *testing.T) {
	m, coord := newTestModel(t)
	coord.set(openState("Karl", testResults))
	m.Update(stateChangedMsg{})

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

	assert.Equal(t, 1, m.highlight)
	assert.True(t, m.state.DropdownOpen)
}

// ─────────────────────────────────────────────
// Clipboard, toasts, previous results
// ─────────────────────────────────────────────

func TestSearchModel_CopyHighlighted(t *testing.T) {
	m, coord := newTestModel(t)
	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	coord.set(openState("Karl", testResults))
	m.Update(stateChangedMsg{})
	press(m, tea.KeyDown)

	press(m, tea.KeyCtrlY)

	assert.Equal(t, "Karl Johans gate, 154, OSLO", copied)
	assert.Equal(t, toastSuccess, m.toast.kind)
}

func TestSearchModel_CopyNothing(t *testing.T) {
	m, _ := newTestModel(t)
	m.copyToClipboard = func(string) error {
		t.Fatal("clipboard must not be touched")
		return nil
	}

	press(m, tea.KeyCtrlY)

	assert.Equal(t, "Nothing to copy", m.toast.text)
}

func TestSearchModel_CopyFailure(t *testing.T) {
	m, _ := newTestModel(t)
	m.copyToClipboard = func(string) error { return errors.New("no clipboard utility") }
	typeText(m, "Oslo")

	press(m, tea.KeyCtrlY)

	assert.Equal(t, toastError, m.toast.kind)
}

func TestSearchModel_ToastExpires(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(toastMsg{kind: toastSuccess, text: "Found 3 addresses"})
	first := m.toastID
	m.Update(toastMsg{kind: toastError, text: "Failed to fetch addresses"})

	m.Update(clearToastMsg{id: first})
	assert.Equal(t, "Failed to fetch addresses", m.toast.text, "stale timer must not hide a newer toast")

	m.Update(clearToastMsg{id: m.toastID})
	assert.Empty(t, m.toast.text)
}

func TestSearchModel_RestorePrevious(t *testing.T) {
	m, coord := newTestModel(t)

	press(m, tea.KeyCtrlR)
	assert.Equal(t, "No previous search", m.toast.text)
	assert.Empty(t, coord.inputs)

	m.previous = models.LastResults{Term: "Karl", Addresses: testResults}
	press(m, tea.KeyCtrlR)

	assert.Equal(t, []string{"Karl"}, coord.inputs)
	assert.Equal(t, "Karl", m.input.Value())
}

func TestSearchModel_OpenResultsBecomePrevious(t *testing.T) {
	m, coord := newTestModel(t)

	coord.set(openState("Karl", testResults))
	m.Update(stateChangedMsg{})

	assert.Equal(t, "Karl", m.previous.Term)
	assert.Equal(t, testResults, m.previous.Addresses)
}

// ─────────────────────────────────────────────
// View
// ─────────────────────────────────────────────

func TestSearchModel_View(t *testing.T) {
	t.Run("open dropdown lists labels", func(t *testing.T) {
		m, coord := newTestModel(t)
		coord.set(openState("Karl", testResults))
		m.Update(stateChangedMsg{})

		out := m.View()
		assert.Contains(t, out, "Address search")
		for _, a := range testResults {
			assert.Contains(t, out, a.Label())
		}
	})

	t.Run("error is humanized", func(t *testing.T) {
		m, coord := newTestModel(t)
		term, msg := "Karl", `Get "http://localhost:8080": dial tcp 127.0.0.1:8080: connect: connection refused`
		coord.set(models.SearchState{Term: &term, Results: []models.Address{}, Error: &msg, Phase: models.PhaseFailed})
		m.Update(stateChangedMsg{})

		assert.Contains(t, m.View(), msgServerUnavailable)
	})

	t.Run("empty result", func(t *testing.T) {
		m, coord := newTestModel(t)
		term := "Zzz"
		coord.set(models.SearchState{Term: &term, Results: []models.Address{}, Phase: models.PhaseClosed})
		m.Update(stateChangedMsg{})

		assert.Contains(t, m.View(), "No addresses found")
	})

	t.Run("previous results while empty", func(t *testing.T) {
		m, _ := newTestModel(t)
		m.previous = models.LastResults{Term: "Karl", Addresses: testResults}

		out := m.View()
		assert.Contains(t, out, `Last search "Karl": 3 addresses`)
		assert.Contains(t, out, testResults[0].Label())
	})

	t.Run("build info", func(t *testing.T) {
		m, _ := newTestModel(t)

		press(m, tea.KeyF1)
		out := m.View()
		assert.Contains(t, out, "Version: 1.2.3")
		assert.Contains(t, out, "Commit: abc123")

		press(m, tea.KeyEsc)
		assert.Contains(t, m.View(), "Address search")
		assert.True(t, m.input.Focused(), "esc on the overlay must not blur the input")
	})
}

func TestSearchModel_CloseUnsubscribes(t *testing.T) {
	coord := newFakeCoordinator()
	m := newSearchModel(coord, NewNotifier(), config.ClientSearch{}, models.AppBuildInfo{}, models.LastResults{}, logger.Nop())
	require.Equal(t, 1, coord.subscribers())

	m.close()

	assert.Equal(t, 0, coord.subscribers())
	assert.Equal(t, config.DefaultNotificationTTL, m.toastTTL)
}
