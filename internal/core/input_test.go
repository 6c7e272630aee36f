package core

import "testing"

func TestInputFrameSequence(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMoveLeft)
	f.Set(ActionRotate)
	f.Set(ActionMoveLeft)

	if !f.Has(ActionMoveLeft) || !f.Has(ActionRotate) {
		t.Fatal("Has should report every set action")
	}
	if f.Has(ActionSoftDrop) {
		t.Error("Has should be false for actions that were not set")
	}

	seq := f.Sequence()
	expected := []Action{ActionMoveLeft, ActionRotate, ActionMoveLeft}
	if len(seq) != len(expected) {
		t.Fatalf("Sequence() length = %d, expected %d", len(seq), len(expected))
	}
	for i := range expected {
		if seq[i] != expected[i] {
			t.Errorf("Sequence()[%d] = %v, expected %v", i, seq[i], expected[i])
		}
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionMoveLeft) || len(f.Sequence()) != 0 {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionRotate) || len(clone.Sequence()) != 3 {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on a zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotate.String() != "Rotate" {
		t.Errorf("ActionRotate.String() = %q", ActionRotate.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}

func TestRuntimeConfigWithDefaults(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: -3, ScreenH: 10, Seed: 9}.WithDefaults()

	if cfg.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, want %d", cfg.TickRate, DefaultTickRate)
	}
	if cfg.ScreenW != 0 || cfg.ScreenH != 10 || cfg.Seed != 9 {
		t.Errorf("WithDefaults() = %+v", cfg)
	}
	if got := (RuntimeConfig{TickRate: 30}).WithDefaults().TickRate; got != 30 {
		t.Errorf("explicit TickRate overwritten: %d", got)
	}
}

func TestGameStateString(t *testing.T) {
	tests := []struct {
		state GameState
		want  string
	}{
		{GameState{}, "running"},
		{GameState{Paused: true}, "paused"},
		{GameState{GameOver: true, Paused: true}, "game over"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("%+v.String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}
