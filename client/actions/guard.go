package actions

import "devconnect/client/store"

// Decision is the advisory verdict for rendering a protected view.
type Decision int

const (
	// Render means the session is established.
	Render Decision = iota
	// Loading means session bootstrap has not settled yet.
	Loading
	// RedirectLogin means there is no session; the server still
	// enforces auth on every request regardless.
	RedirectLogin
)

// Guard maps auth state to a routing decision for protected views.
func Guard(state store.State) Decision {
	switch {
	case state.Auth.Loading:
		return Loading
	case state.Auth.Authenticated:
		return Render
	default:
		return RedirectLogin
	}
}
