// Package domain holds the maintenance-request enumerations and the status
// workflow rules.
package domain

import (
	apperrors "gearguard/pkg/errors"
)

// Status is the maintenance-request workflow state. It drives the Kanban
// board columns, in order.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusInProgress Status = "IN_PROGRESS"
	StatusRepaired   Status = "REPAIRED"
	StatusScrap      Status = "SCRAP"
)

// AllStatuses lists the workflow states in board-column order.
var AllStatuses = []Status{StatusNew, StatusInProgress, StatusRepaired, StatusScrap}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusRepaired, StatusScrap:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus validates a raw status value coming off the wire.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", apperrors.NewInvalidInputError("unknown status %q", raw)
	}
	return s, nil
}

// CanTransition is the single place the transition graph is defined. The
// workflow is deliberately total: any status may move to any other, including
// out of REPAIRED and SCRAP, which the board treats as logically terminal.
// Restricting the graph only requires changing this function.
func CanTransition(from, to Status) bool {
	return from.Valid() && to.Valid()
}

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

func ParsePriority(raw string) (Priority, error) {
	p := Priority(raw)
	if !p.Valid() {
		return "", apperrors.NewInvalidInputError("unknown priority %q", raw)
	}
	return p, nil
}

type RequestType string

const (
	TypeCorrective RequestType = "CORRECTIVE"
	TypePreventive RequestType = "PREVENTIVE"
)

func (t RequestType) Valid() bool {
	return t == TypeCorrective || t == TypePreventive
}

func ParseRequestType(raw string) (RequestType, error) {
	t := RequestType(raw)
	if !t.Valid() {
		return "", apperrors.NewInvalidInputError("unknown request type %q", raw)
	}
	return t, nil
}
