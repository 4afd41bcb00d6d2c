package tui

// stateChangedMsg is delivered after the coordinator published a new state.
type stateChangedMsg struct{}

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
	toastInfo
)

type toastMsg struct {
	kind toastKind
	text string
}

// clearToastMsg hides the toast with the given id unless a newer one
// replaced it.
type clearToastMsg struct {
	id int
}
