package controls

import "cmp"

// clamp bounds v to [lo, hi]; an empty range (hi <= lo) leaves v unbounded.
func clamp[T cmp.Ordered](v, lo, hi T) T {
	if hi <= lo {
		return v
	}
	return min(max(v, lo), hi)
}

// Slider selects a continuous value between Min and Max.
type Slider struct {
	Base
	Min, Max float32
	value    float32
}

// NewSlider returns a slider over [0, 1] with the given routing tag.
func NewSlider(tag int) *Slider {
	s := &Slider{Max: 1}
	s.SetTag(tag)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float32 { return s.value }

// SetValue moves the thumb without notifying, clamped to the range.
func (s *Slider) SetValue(v float32) { s.value = clamp(v, s.Min, s.Max) }

// Slide moves the thumb as a user drag and notifies.
func (s *Slider) Slide(v float32) {
	s.SetValue(v)
	s.Notify()
}

// Stepper changes a value by fixed increments between Min and Max.
type Stepper struct {
	Base
	Min, Max, Step float64
	value          float64
}

// NewStepper returns a stepper over [0, 100] with step 1 and the given routing tag.
func NewStepper(tag int) *Stepper {
	s := &Stepper{Max: 100, Step: 1}
	s.SetTag(tag)
	return s
}

// Value returns the current value.
func (s *Stepper) Value() float64 { return s.value }

// SetValue sets the value without notifying, clamped to the range.
func (s *Stepper) SetValue(v float64) { s.value = clamp(v, s.Min, s.Max) }

// Increment adds one step and notifies.
func (s *Stepper) Increment() {
	s.SetValue(s.value + s.step())
	s.Notify()
}

// Decrement subtracts one step and notifies.
func (s *Stepper) Decrement() {
	s.SetValue(s.value - s.step())
	s.Notify()
}

func (s *Stepper) step() float64 {
	if s.Step <= 0 {
		return 1
	}
	return s.Step
}
