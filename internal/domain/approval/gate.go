// Package approval implements the admin PIN gate: a small explicit state
// machine that defers a privileged action until a PIN from the authorized set
// is supplied, then runs it exactly once.
package approval

import (
	"context"
	"errors"

	"repairdeck/internal/domain/entities"
)

// State is the gate's position in its lifecycle.
type State string

const (
	StateIdle        State = "Idle"
	StateAwaitingPin State = "AwaitingPin"
	StateGranted     State = "Granted"
	StateDenied      State = "Denied"
)

var (
	// ErrPINRejected is returned on a wrong PIN. The gate stays in
	// AwaitingPin: unlimited retries, no lockout, no attempt counting.
	ErrPINRejected = errors.New("incorrect PIN")

	ErrNoPendingAction = errors.New("no pending action awaiting approval")
	ErrActionPending   = errors.New("an action is already awaiting approval")
)

// AuthorizationProvider supplies the approval secrets for a role. The gate
// only ever compares strings; where and how PINs are stored is not its
// concern.
type AuthorizationProvider interface {
	AuthorizedSecrets(ctx context.Context, role entities.EmployeeRole) ([]string, error)
}

// Gate challenges a non-authorized actor for an admin PIN before letting a
// deferred action proceed. Single editing session, single goroutine; the
// pending action is held in memory and invoked at most once.
//
// PIN comparison is plain string equality against the configured set; the PIN
// is a shop-floor sign-off, not security-grade authentication.
type Gate struct {
	state   State
	reason  string
	pins    []string
	pending func() error
}

func NewGate() *Gate {
	return &Gate{state: StateIdle}
}

func (g *Gate) State() State { return g.state }

// Reason returns the human-readable explanation shown with the PIN prompt.
func (g *Gate) Reason() string { return g.reason }

// Begin arms the gate with the authorized PIN set and the action to run once
// a correct PIN arrives. Only valid from Idle.
func (g *Gate) Begin(reason string, authorizedPins []string, action func() error) error {
	if g.state != StateIdle {
		return ErrActionPending
	}
	g.state = StateAwaitingPin
	g.reason = reason
	g.pins = authorizedPins
	g.pending = action
	return nil
}

// Submit checks the entered PIN against the authorized set.
//
// On a match it runs the pending action exactly once, resets to Idle and
// returns StateGranted (plus the action's error, if any). On a mismatch it
// returns StateDenied and ErrPINRejected while the gate itself remains in
// AwaitingPin so the caller can re-prompt with a cleared input. The submitted
// PIN is never retained.
func (g *Gate) Submit(pin string) (State, error) {
	if g.state != StateAwaitingPin {
		return g.state, ErrNoPendingAction
	}
	for _, authorized := range g.pins {
		if pin == authorized {
			action := g.pending
			g.reset()
			if action != nil {
				return StateGranted, action()
			}
			return StateGranted, nil
		}
	}
	return StateDenied, ErrPINRejected
}

// Close cancels the prompt, discarding the pending action without running it.
func (g *Gate) Close() {
	g.reset()
}

func (g *Gate) reset() {
	g.state = StateIdle
	g.reason = ""
	g.pins = nil
	g.pending = nil
}
