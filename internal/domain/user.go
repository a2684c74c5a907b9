package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StatePracticing      UserState = "practicing"
	StateWaitingPassword UserState = "waiting_password"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State     UserState
	WordsPage int // last shown page of the word list
}
