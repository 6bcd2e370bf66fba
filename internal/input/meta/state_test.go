package meta

import "testing"

var allModifiers = []Modifier{Ctrl, Alt, Shift, RightShift}

func TestPressThreeStageCycle(t *testing.T) {
	for _, m := range allModifiers {
		t.Run(m.String(), func(t *testing.T) {
			s := NewState()

			s.Press(m)
			if !s.On(m) || s.Locked(m) {
				t.Errorf("after 1st press: on=%v lock=%v, want on only", s.On(m), s.Locked(m))
			}

			s.Press(m)
			if s.On(m) || !s.Locked(m) {
				t.Errorf("after 2nd press: on=%v lock=%v, want lock only", s.On(m), s.Locked(m))
			}

			s.Press(m)
			if s.On(m) || s.Locked(m) {
				t.Errorf("after 3rd press: on=%v lock=%v, want both clear", s.On(m), s.Locked(m))
			}
		})
	}
}

func TestPressIsIndependentPerModifier(t *testing.T) {
	s := NewState()
	s.Press(Ctrl)
	s.Press(Shift)
	s.Press(Shift)

	if !s.On(Ctrl) || s.Locked(Ctrl) {
		t.Error("Ctrl should be momentary")
	}
	if s.On(Shift) || !s.Locked(Shift) {
		t.Error("Shift should be locked")
	}
	if s.Active(Alt) || s.Active(RightShift) {
		t.Error("untouched modifiers should be inactive")
	}
}

func TestActive(t *testing.T) {
	s := NewState()
	if s.Active(Ctrl) {
		t.Error("fresh state should be inactive")
	}

	s.Press(Ctrl)
	if !s.Active(Ctrl) {
		t.Error("momentary modifier should be active")
	}

	s.Press(Ctrl)
	if !s.Active(Ctrl) {
		t.Error("locked modifier should be active")
	}
}

func TestClearTransientKeepsLocks(t *testing.T) {
	s := NewState()
	s.Press(Ctrl)           // momentary
	s.Press(Alt)            //
	s.Press(Alt)            // locked
	s.Press(Shift)          // momentary
	s.ClearTransient()

	if s.Active(Ctrl) {
		t.Error("momentary Ctrl should be cleared")
	}
	if !s.Locked(Alt) || !s.Active(Alt) {
		t.Error("locked Alt should survive")
	}
	if s.Active(Shift) {
		t.Error("momentary Shift should be cleared")
	}
}

func TestClearLocksKeepsOnBits(t *testing.T) {
	s := NewState()
	s.Press(Ctrl)  // momentary
	s.Press(Shift) //
	s.Press(Shift) // locked
	s.ClearLocks()

	if !s.On(Ctrl) {
		t.Error("momentary Ctrl should survive ClearLocks")
	}
	if s.Locked(Shift) || s.Active(Shift) {
		t.Error("Shift lock should be cleared")
	}
}

func TestClearOn(t *testing.T) {
	s := NewState()
	s.Press(Shift)
	s.ClearOn(Shift)
	if s.Active(Shift) {
		t.Error("ClearOn should deactivate momentary modifier")
	}

	s.Press(Alt)
	s.Press(Alt)
	s.ClearOn(Alt)
	if !s.Active(Alt) {
		t.Error("ClearOn must not touch the lock bit")
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	for _, m := range allModifiers {
		s.Press(m)
		s.Press(m)
	}
	s.Reset()
	for _, m := range allModifiers {
		if s.Active(m) {
			t.Errorf("%s still active after Reset", m)
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*State)
		want  Mask
	}{
		{"empty", func(*State) {}, 0},
		{"ctrl momentary", func(s *State) { s.Press(Ctrl) }, MaskCtrl},
		{"shift locked", func(s *State) { s.Press(Shift); s.Press(Shift) }, MaskShift},
		{"ctrl and alt", func(s *State) { s.Press(Ctrl); s.Press(Alt) }, MaskCtrl | MaskAlt},
		{"right shift excluded", func(s *State) { s.Press(RightShift) }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			tt.setup(s)
			if got := s.Mask(); got != tt.want {
				t.Errorf("Mask() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaskString(t *testing.T) {
	tests := []struct {
		mask Mask
		want string
	}{
		{0, ""},
		{MaskCtrl, "Ctrl"},
		{MaskCtrl | MaskShift, "Ctrl+Shift"},
		{MaskCtrl | MaskAlt | MaskShift, "Ctrl+Alt+Shift"},
	}
	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("Mask(%d).String() = %q, want %q", tt.mask, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	s := NewState()
	if got := s.String(); got != "" {
		t.Errorf("empty state String() = %q, want empty", got)
	}

	s.Press(Ctrl)
	s.Press(Alt)
	s.Press(Alt)
	if got := s.String(); got != "Ctrl* Alt!" {
		t.Errorf("String() = %q, want %q", got, "Ctrl* Alt!")
	}
}
