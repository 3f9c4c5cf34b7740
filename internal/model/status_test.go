package model

import "testing"

func TestStatusOf(t *testing.T) {
	tests := []struct {
		posts    int
		expected DayStatus
	}{
		{0, DayStatusEmpty},
		{1, DayStatusPartial},
		{4, DayStatusPartial},
		{5, DayStatusActive},
		{9, DayStatusActive},
		{10, DayStatusPerfect},
	}

	for _, test := range tests {
		result := StatusOf(test.posts)
		if result != test.expected {
			t.Errorf("StatusOf(%d) = %s, expected %s", test.posts, result, test.expected)
		}
	}
}

func TestDayStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   DayStatus
		expected bool
	}{
		{DayStatusEmpty, false},
		{DayStatusPartial, false},
		{DayStatusActive, true},
		{DayStatusPerfect, true},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("DayStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestDayStatus_IsComplete(t *testing.T) {
	tests := []struct {
		status   DayStatus
		expected bool
	}{
		{DayStatusEmpty, false},
		{DayStatusPartial, false},
		{DayStatusActive, false},
		{DayStatusPerfect, true},
	}

	for _, test := range tests {
		result := test.status.IsComplete()
		if result != test.expected {
			t.Errorf("DayStatus(%s).IsComplete() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestDayStatus_String(t *testing.T) {
	status := DayStatusPerfect
	expected := "Perfect"
	result := status.String()

	if result != expected {
		t.Errorf("DayStatus.String() = %s, expected %s", result, expected)
	}
}
