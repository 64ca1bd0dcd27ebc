package service

import (
	"testing"

	"github.com/fleettrack/internal/constants"
)

func TestNormalizeDeliveryStatus(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"pending", constants.DeliveryStatusPending},
		{"  In-Progress  ", constants.DeliveryStatusInProgress},
		{"COMPLETED", constants.DeliveryStatusCompleted},
		{"unknown", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDeliveryStatus(tc.input); got != tc.want {
			t.Fatalf("normalize %q: got=%q want=%q", tc.input, got, tc.want)
		}
	}
}

func TestIsLegalTransition(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.DeliveryStatusPending, constants.DeliveryStatusInProgress, true},
		{constants.DeliveryStatusPending, constants.DeliveryStatusCompleted, false},
		{constants.DeliveryStatusInProgress, constants.DeliveryStatusCompleted, true},
		{constants.DeliveryStatusInProgress, constants.DeliveryStatusDelayed, true},
		{constants.DeliveryStatusDelayed, constants.DeliveryStatusInProgress, true},
		{constants.DeliveryStatusCompleted, constants.DeliveryStatusInProgress, false},
		{constants.DeliveryStatusFailed, constants.DeliveryStatusPending, false},
		{constants.DeliveryStatusCompleted, constants.DeliveryStatusCompleted, true},
		{"bogus", constants.DeliveryStatusPending, false},
	}
	for _, tc := range cases {
		if got := IsLegalTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("transition %s->%s: got=%v want=%v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	if !IsTerminalStatus(constants.DeliveryStatusCompleted) {
		t.Fatalf("completed should be terminal")
	}
	if !IsTerminalStatus(constants.DeliveryStatusFailed) {
		t.Fatalf("failed should be terminal")
	}
	if IsTerminalStatus(constants.DeliveryStatusDelayed) {
		t.Fatalf("delayed should not be terminal")
	}
}
