package statemachine

import (
	"errors"

	"sabores-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "customer", "admin", "delivery"
}

// validTransitions is the authoritative state machine definition.
// The natural flow is PENDING → CONFIRMED → PREPARING → READY → DELIVERED,
// with cancellation branches. DELIVERED and CANCELLED are terminal.
var validTransitions = []Transition{
	// Admin confirms the order
	{From: models.StatusPending, To: models.StatusConfirmed, Actor: "admin"},
	// Admin or customer can cancel a PENDING order
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "admin"},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "customer"},
	// Kitchen starts cooking
	{From: models.StatusConfirmed, To: models.StatusPreparing, Actor: "admin"},
	// Admin or customer can still cancel a CONFIRMED order
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: "admin"},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: "customer"},
	// Order is ready for pickup/delivery
	{From: models.StatusPreparing, To: models.StatusReady, Actor: "admin"},
	// Kitchen problems can still kill an in-flight order
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: "admin"},
	// Hand-off to the customer
	{From: models.StatusReady, To: models.StatusDelivered, Actor: "admin"},
	{From: models.StatusReady, To: models.StatusDelivered, Actor: "delivery"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given state
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
