package models

import "testing"

func TestMoreLifePrice(t *testing.T) {
	tests := []struct {
		name        string
		sessionType string
		want        float64
	}{
		{name: "private two weeks", sessionType: SessionTypePrivate2Weeks, want: 85000},
		{name: "private one week", sessionType: SessionTypePrivate1Week, want: 45000},
		{name: "joint", sessionType: SessionTypeJoint, want: 30000},
		{name: "unknown session type", sessionType: "group_retreat", want: 0},
		{name: "empty session type", sessionType: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoreLifePrice(tt.sessionType); got != tt.want {
				t.Errorf("MoreLifePrice(%q) = %v; want %v", tt.sessionType, got, tt.want)
			}
		})
	}
}
