package mcclellan

import "testing"

func TestAlphaShiftFor(t *testing.T) {
	tests := []struct {
		implAlphaSize uint16
		want          uint8
	}{
		{implAlphaSize: 0, want: 1},
		{implAlphaSize: 1, want: 1},
		{implAlphaSize: 2, want: 1},
		{implAlphaSize: 3, want: 2},
		{implAlphaSize: 4, want: 2},
		{implAlphaSize: 5, want: 3},
		{implAlphaSize: 8, want: 3},
		{implAlphaSize: 9, want: 4},
		{implAlphaSize: 128, want: 7},
		{implAlphaSize: 129, want: 8},
		{implAlphaSize: 256, want: 8},
	}

	for _, tt := range tests {
		if got := alphaShiftFor(tt.implAlphaSize); got != tt.want {
			t.Errorf("alphaShiftFor(%d) = %d, want %d", tt.implAlphaSize, got, tt.want)
		}
		if tt.implAlphaSize >= 2 && uint16(1)<<alphaShiftFor(tt.implAlphaSize) < tt.implAlphaSize {
			t.Errorf("alphaShiftFor(%d): 1<<shift does not cover the alphabet", tt.implAlphaSize)
		}
	}
}
