package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionIsTotal(t *testing.T) {
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			assert.True(t, CanTransition(from, to), "transition %s -> %s must be allowed", from, to)
		}
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(Status("ARCHIVED"), StatusNew))
	assert.False(t, CanTransition(StatusNew, Status("ARCHIVED")))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = ParseStatus("in_progress")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("URGENT")
	assert.Error(t, err)
}

func TestParseRequestType(t *testing.T) {
	rt, err := ParseRequestType("PREVENTIVE")
	require.NoError(t, err)
	assert.Equal(t, TypePreventive, rt)

	_, err = ParseRequestType("PREDICTIVE")
	assert.Error(t, err)
}

func TestAllStatusesBoardOrder(t *testing.T) {
	assert.Equal(t, []Status{StatusNew, StatusInProgress, StatusRepaired, StatusScrap}, AllStatuses)
}
