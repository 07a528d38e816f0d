package model

// Bubble Tea message types

// TransitionMsg is delivered when a fade transition's delay elapses.
type TransitionMsg struct {
	Seq int
}

// Focus represents which part of the screen receives key input.
type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
	FocusSettings
	FocusFilters
)
