package checkout

import (
	"fmt"
	"log"
	"time"

	"swagshop/internal/models"
)

// dispatch is the single point through which every inbound event reaches a
// session. It validates the transition, mutates the session state, and logs
// outcomes that end a sheet attempt. Callers perform the side effects
// (recompute, capture, persistence) around it.
func dispatch(sess *models.CheckoutSession, ev Event) error {
	next, err := nextState(sess.State, ev)
	if err != nil {
		return err
	}

	switch ev := ev.(type) {
	case EventSheetClosed:
		// Cancel is silent for the user; a developer error is logged for the
		// operator. Either way the session returns to the button so the user
		// can retry.
		switch ev.StatusCode {
		case models.SheetStatusCanceled:
			sess.LastOutcome = models.SessionStateCancelled
		default:
			sess.LastOutcome = "developer_error"
			log.Printf("checkout session %s: sheet reported %s", sess.ID, ev.StatusCode)
		}
	case EventShippingChanged:
		sess.SelectedShippingOptionID = ev.OptionID
	case EventAuthorized:
		if ev.Data.SelectedShippingOptionID != "" {
			sess.SelectedShippingOptionID = ev.Data.SelectedShippingOptionID
		}
	}

	sess.State = next
	sess.UpdatedAt = time.Now()
	return nil
}

// nextState is the pure transition table of the session state machine:
//
//	Idle -> ReadinessChecked -> ButtonShown -> SheetOpen -> {Authorized, Failed}
//
// A closed sheet (cancel or developer error) returns to ButtonShown so the
// user may retry; a negative readiness result and a failed capture are
// terminal.
func nextState(current string, ev Event) (string, error) {
	switch ev := ev.(type) {
	case EventReadinessCheck:
		if current == models.SessionStateIdle {
			return models.SessionStateReadinessChecked, nil
		}
	case EventReadinessResult:
		if current == models.SessionStateReadinessChecked {
			if ev.Ready {
				return models.SessionStateButtonShown, nil
			}
			return models.SessionStateFailed, nil
		}
	case EventButtonClicked:
		if current == models.SessionStateButtonShown {
			return models.SessionStateSheetOpen, nil
		}
	case EventShippingChanged:
		if current == models.SessionStateSheetOpen {
			return models.SessionStateSheetOpen, nil
		}
	case EventSheetClosed:
		if current == models.SessionStateSheetOpen {
			return models.SessionStateButtonShown, nil
		}
	case EventAuthorized:
		if current == models.SessionStateSheetOpen {
			return models.SessionStateAuthorized, nil
		}
	case EventCaptureResult:
		if current == models.SessionStateAuthorized {
			if ev.Succeeded {
				return models.SessionStateAuthorized, nil
			}
			return models.SessionStateFailed, nil
		}
	}
	return "", fmt.Errorf("%w: %s in state %q", ErrInvalidTransition, ev.eventName(), current)
}
