package statemachine

import (
	"testing"

	"sabores-api/models"
)

func TestHappyPathTransitions(t *testing.T) {
	steps := []struct {
		from, to models.OrderStatus
		actor    string
	}{
		{models.StatusPending, models.StatusConfirmed, "admin"},
		{models.StatusConfirmed, models.StatusPreparing, "admin"},
		{models.StatusPreparing, models.StatusReady, "admin"},
		{models.StatusReady, models.StatusDelivered, "admin"},
	}
	for _, s := range steps {
		if err := CanTransition(s.from, s.to, s.actor); err != nil {
			t.Errorf("%s → %s by %s should be allowed: %v", s.from, s.to, s.actor, err)
		}
	}
}

func TestCustomerCancellationRights(t *testing.T) {
	if err := CanTransition(models.StatusPending, models.StatusCancelled, "customer"); err != nil {
		t.Errorf("customer should cancel PENDING: %v", err)
	}
	if err := CanTransition(models.StatusConfirmed, models.StatusCancelled, "customer"); err != nil {
		t.Errorf("customer should cancel CONFIRMED: %v", err)
	}
	if err := CanTransition(models.StatusPreparing, models.StatusCancelled, "customer"); err == nil {
		t.Error("customer must not cancel PREPARING")
	}
	if err := CanTransition(models.StatusReady, models.StatusDelivered, "customer"); err == nil {
		t.Error("customer must not mark orders delivered")
	}
}

func TestInvalidTransitionsRejected(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		actor    string
	}{
		{models.StatusPending, models.StatusReady, "admin"},
		{models.StatusPending, models.StatusDelivered, "admin"},
		{models.StatusDelivered, models.StatusPending, "admin"},
		{models.StatusCancelled, models.StatusConfirmed, "admin"},
		{models.StatusReady, models.StatusPreparing, "admin"},
	}
	for _, c := range cases {
		if err := CanTransition(c.from, c.to, c.actor); err == nil {
			t.Errorf("%s → %s by %s should be rejected", c.from, c.to, c.actor)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	if !IsTerminal(models.StatusDelivered) {
		t.Error("DELIVERED should be terminal")
	}
	if !IsTerminal(models.StatusCancelled) {
		t.Error("CANCELLED should be terminal")
	}
	if IsTerminal(models.StatusPending) {
		t.Error("PENDING should not be terminal")
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPending)
	want := map[models.OrderStatus]bool{
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
	}
	if len(nexts) != len(want) {
		t.Fatalf("expected %d next states from PENDING, got %v", len(want), nexts)
	}
	for _, s := range nexts {
		if !want[s] {
			t.Errorf("unexpected next state %s from PENDING", s)
		}
	}
}

func TestDeliveryActorHandsOff(t *testing.T) {
	if err := CanTransition(models.StatusReady, models.StatusDelivered, "delivery"); err != nil {
		t.Errorf("delivery should hand off READY orders: %v", err)
	}
	if err := CanTransition(models.StatusPending, models.StatusConfirmed, "delivery"); err == nil {
		t.Error("delivery must not confirm orders")
	}
}
