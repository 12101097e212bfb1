package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, Badge{Label: "Pending", Icon: "clock", Color: "yellow"}, StatusPending.Badge())
	assert.Equal(t, Badge{Label: "Approved", Icon: "check", Color: "green"}, StatusApproved.Badge())
	assert.Equal(t, Badge{Label: "Rejected", Icon: "cross", Color: "red"}, StatusRejected.Badge())
}

func TestStatusBadgeUnknown(t *testing.T) {
	badge := Status("archived").Badge()
	assert.Equal(t, "archived", badge.Label)
	assert.Equal(t, "gray", badge.Color)
}

func TestStatusPending(t *testing.T) {
	assert.True(t, StatusPending.Pending())
	assert.False(t, StatusApproved.Pending())
	assert.False(t, StatusRejected.Pending())
	assert.False(t, Status("archived").Pending())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, Status("archived").Terminal())
}

func TestHourlyRateValue(t *testing.T) {
	rate := 75.0
	assert.Equal(t, 75.0, Professional{HourlyRate: &rate}.HourlyRateValue())
	assert.Equal(t, 0.0, Professional{}.HourlyRateValue())
}
