package engine

import "github.com/vovakirdan/dropcatch/internal/core"

// Slider is the player-controlled catcher and the pointer tracking that moves it.
type Slider struct {
	X      float64 // Left edge relative to the container
	Width  float64
	Height float64

	containerLeft  float64
	containerWidth float64
	touchActive    bool
}

// NewSlider creates a slider centered in a container.
func NewSlider(containerLeft, containerWidth, width, height float64) *Slider {
	s := &Slider{
		Width:          width,
		Height:         height,
		containerLeft:  containerLeft,
		containerWidth: containerWidth,
	}
	s.X = s.clamp((containerWidth - width) / 2)
	return s
}

// Resize refreshes the container bounds and slider width, keeping the slider in bounds.
func (s *Slider) Resize(containerLeft, containerWidth, width float64) {
	s.containerLeft = containerLeft
	s.containerWidth = containerWidth
	if width > 0 {
		s.Width = width
	}
	s.X = s.clamp(s.X)
}

// MoveTo centers the slider under a pointer at clientX.
func (s *Slider) MoveTo(clientX float64) {
	s.X = s.clamp(clientX - s.containerLeft - s.Width/2)
}

// MouseMove follows the mouse unconditionally.
func (s *Slider) MouseMove(clientX float64) {
	s.MoveTo(clientX)
}

// TouchStart begins touch tracking and jumps to the touch point.
func (s *Slider) TouchStart(clientX float64) {
	s.touchActive = true
	s.MoveTo(clientX)
}

// TouchMove follows the touch point while a touch is in progress.
func (s *Slider) TouchMove(clientX float64) {
	if !s.touchActive {
		return
	}
	s.MoveTo(clientX)
}

// TouchEnd stops touch tracking.
func (s *Slider) TouchEnd() {
	s.touchActive = false
}

// Touching reports whether a touch is in progress.
func (s *Slider) Touching() bool {
	return s.touchActive
}

// Nudge moves the slider by dx, clamped to the container.
func (s *Slider) Nudge(dx float64) {
	s.X = s.clamp(s.X + dx)
}

// Box returns the slider's bounding box, resting on the bottom of a field.
func (s *Slider) Box(fieldHeight float64) core.Box {
	return core.Box{X: s.X, Y: fieldHeight - s.Height, W: s.Width, H: s.Height}
}

func (s *Slider) clamp(left float64) float64 {
	return core.ClampF(left, 0, s.containerWidth-s.Width)
}
