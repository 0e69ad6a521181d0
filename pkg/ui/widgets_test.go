package ui

import "testing"

func TestSlider_SetValue(t *testing.T) {
	tests := []struct {
		name  string
		step  float64
		value float64
		want  float64
	}{
		{"in range", 0, 0.25, 0.25},
		{"below min", 0, -3, 0},
		{"above max", 0, 12, 10},
		{"snapped down", 1, 4.4, 4},
		{"snapped up", 1, 4.6, 5},
		{"snapped half steps", 0.5, 2.7, 2.5},
		{"snapped then clamped", 4, 11.9, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(0, 0, 100, "x", 0, 10, 0)
			s.Step = tt.step
			s.SetValue(tt.value)
			if s.Value != tt.want {
				t.Errorf("SetValue(%v) = %v; want %v", tt.value, s.Value, tt.want)
			}
		})
	}
}

func TestSlider_Drag(t *testing.T) {
	s := NewSlider(20, 40, 200, "Birds", 0, 1000, 10)
	s.Step = 1
	s.dragTo(120) // half way along the track
	if s.Value != 500 {
		t.Errorf("Value = %v; want 500", s.Value)
	}
	if s.Ratio() != 0.5 {
		t.Errorf("Ratio = %v; want 0.5", s.Ratio())
	}
	if !s.Contains(20, 45) || s.Contains(19, 45) || s.Contains(100, 60) {
		t.Error("Contains does not match the track")
	}
	if got := s.format(); got != "500" {
		t.Errorf("format = %q; want 500", got)
	}
}

func TestButton_FiresOncePerPress(t *testing.T) {
	clicks := 0
	b := NewButton(0, 0, 50, 20, "Reset", func() { clicks++ })

	frames := []struct{ over, down bool }{
		{true, false},
		{true, true}, // press
		{true, true}, // held
		{true, true},
		{true, false}, // release
		{false, true}, // pressed elsewhere
		{true, true},  // dragged in while held: counts as a press
	}
	for _, f := range frames {
		b.press(f.over, f.down)
	}
	if clicks != 2 {
		t.Errorf("clicks = %d; want 2", clicks)
	}
}

func TestCheckbox_Toggle(t *testing.T) {
	c := NewCheckbox(0, 0, "Auto run", false)
	c.toggle(true, true)
	c.toggle(true, true)
	if !c.Value {
		t.Fatal("holding the mouse down toggled twice")
	}
	c.toggle(true, false)
	c.toggle(true, true)
	if c.Value {
		t.Error("second click did not toggle back")
	}
}

func TestUIPanel_Layout(t *testing.T) {
	p := NewUIPanel("Flock", 10, 10, 200, 190)
	p.AddSection("Population")
	s := p.AddSlider("Birds", 0, 2000, 1, 10.4)
	b := p.AddButton("Reset", nil)
	p.EndSection()
	p.AddSection("Simulation")
	c := p.AddCheckbox("Auto run", true)
	p.EndSection()

	if s.Value != 10 {
		t.Errorf("slider value = %v; want 10", s.Value)
	}
	if !(s.Y < b.Y && b.Y < c.Y) {
		t.Errorf("widgets not stacked: slider %v, button %v, checkbox %v", s.Y, b.Y, c.Y)
	}
	if len(p.Widgets) != 3 || len(p.Labels) != 3 {
		t.Fatalf("panel holds %d widgets and %d labels; want 3", len(p.Widgets), len(p.Labels))
	}
	if p.Labels[1] != "" {
		t.Errorf("button label %q drawn by the panel; want none", p.Labels[1])
	}
	want := 30 + 2*25 + p.Widgets[0].GetHeight() + p.Widgets[1].GetHeight() + p.Widgets[2].GetHeight()
	if got := p.calculateTotalHeight(); got != want {
		t.Errorf("total height = %v; want %v", got, want)
	}
}
