package mcclellan

import (
	"reflect"
	"testing"
)

func TestCharReachBasics(t *testing.T) {
	var cr CharReach

	if !cr.None() {
		t.Error("zero CharReach should be empty")
	}
	if got := cr.FindFirst(); got != 256 {
		t.Errorf("FindFirst() on empty set = %d, want 256", got)
	}

	cr.Set('a')
	cr.Set('z')
	cr.Set(0)
	cr.Set(255)

	if cr.None() {
		t.Error("set with members reported None")
	}
	if got := cr.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	if !cr.Test('a') || !cr.Test(0) || !cr.Test(255) {
		t.Error("Test() missed a member")
	}
	if cr.Test('b') {
		t.Error("Test('b') = true for non-member")
	}
	if got := cr.FindFirst(); got != 0 {
		t.Errorf("FindFirst() = %d, want 0", got)
	}
	if got := cr.Bytes(); !reflect.DeepEqual(got, []byte{0, 'a', 'z', 255}) {
		t.Errorf("Bytes() = %v, want [0 97 122 255]", got)
	}
}

func TestCharReachIsCaselessChar(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  bool
	}{
		{name: "upper lower pair", bytes: []byte{'A', 'a'}, want: true},
		{name: "z pair", bytes: []byte{'Z', 'z'}, want: true},
		{name: "different letters", bytes: []byte{'a', 'b'}, want: false},
		{name: "case bit but not alpha", bytes: []byte{0x10, 0x30}, want: false},
		{name: "single byte", bytes: []byte{'a'}, want: false},
		{name: "three bytes", bytes: []byte{'A', 'a', 'b'}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cr CharReach
			for _, b := range tt.bytes {
				cr.Set(b)
			}
			if got := cr.IsCaselessChar(); got != tt.want {
				t.Errorf("IsCaselessChar(%v) = %v, want %v", tt.bytes, got, tt.want)
			}
		})
	}
}
