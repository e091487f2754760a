package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardProgression(t *testing.T) {
	path := []TransactionStatus{
		StatusRequested, StatusDriverAccepted, StatusEnrouteToPickup,
		StatusCustomerPicked, StatusAtDestination, StatusReturning, StatusCompleted,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, path[i].CanTransitionTo(path[i+1]), "%s -> %s", path[i], path[i+1])
	}

	// No skipping ahead.
	assert.False(t, StatusRequested.CanTransitionTo(StatusCustomerPicked))
	assert.False(t, StatusDriverAccepted.CanTransitionTo(StatusCompleted))
	// No moving backwards.
	assert.False(t, StatusReturning.CanTransitionTo(StatusAtDestination))
}

func TestCancelReachableFromAnyNonTerminalState(t *testing.T) {
	for _, s := range []TransactionStatus{
		StatusRequested, StatusDriverAccepted, StatusEnrouteToPickup,
		StatusCustomerPicked, StatusAtDestination, StatusReturning,
	} {
		assert.True(t, s.CanTransitionTo(StatusCancelled), "cancel from %s", s)
	}
}

func TestTerminalStatesAbsorb(t *testing.T) {
	all := []TransactionStatus{
		StatusRequested, StatusDriverAccepted, StatusEnrouteToPickup,
		StatusCustomerPicked, StatusAtDestination, StatusReturning,
		StatusCompleted, StatusCancelled,
	}
	for _, terminal := range []TransactionStatus{StatusCompleted, StatusCancelled} {
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	assert.False(t, StatusRequested.CanTransitionTo("ON_GOING"))
	assert.False(t, TransactionStatus("MATCHING").CanTransitionTo(StatusDriverAccepted))
	assert.False(t, TransactionStatus("").Valid())
}
