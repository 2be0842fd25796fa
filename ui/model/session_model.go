package model

import (
	"image"

	"github.com/soocke/imagecrop-go/domain/crop"
)

// SessionModel is the single active crop session: the source image, how it is fitted
// into the display area, and the selection drawn over it. It is decoupled from the UI
// and must only be used from the UI thread.
type SessionModel struct {
	source   image.Image
	name     string
	fit      *crop.DisplayFit
	displayW int
	displayH int
	tracker  *crop.Tracker
}

// NewSessionModel returns an empty session for a displayW x displayH display area.
func NewSessionModel(displayW, displayH int) *SessionModel {
	return &SessionModel{displayW: displayW, displayH: displayH, tracker: crop.NewTracker()}
}

// Load replaces the active image. The fit is computed before anything is replaced,
// so a failure leaves the previous image, fit and selection untouched.
func (m *SessionModel) Load(img image.Image, name string) error {
	if m == nil {
		return crop.ErrNoActiveImage
	}
	if img == nil {
		return crop.ErrInvalidImageDimensions
	}
	b := img.Bounds()
	fit, err := crop.Fit(b.Dx(), b.Dy(), m.displayW, m.displayH)
	if err != nil {
		return err
	}
	m.source, m.name, m.fit = img, name, &fit
	m.tracker.Handle(crop.Reset())
	return nil
}

// SetDisplaySize changes the display area and refits the active image. The selection
// is dropped because its display coordinates no longer match the preview.
func (m *SessionModel) SetDisplaySize(w, h int) error {
	if m == nil {
		return nil
	}
	if m.source != nil {
		b := m.source.Bounds()
		fit, err := crop.Fit(b.Dx(), b.Dy(), w, h)
		if err != nil {
			return err
		}
		m.fit = &fit
	} else if w <= 0 || h <= 0 {
		return crop.ErrInvalidDisplayDimensions
	}
	m.displayW, m.displayH = w, h
	m.tracker.Handle(crop.Reset())
	return nil
}

// DisplaySize returns the display area size.
func (m *SessionModel) DisplaySize() (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.displayW, m.displayH
}

// Image returns the active source image and its display name, or nil.
func (m *SessionModel) Image() (image.Image, string) {
	if m == nil {
		return nil, ""
	}
	return m.source, m.name
}

// HasImage reports whether an image is loaded.
func (m *SessionModel) HasImage() bool { return m != nil && m.source != nil }

// Fit returns the current display fit.
func (m *SessionModel) Fit() (crop.DisplayFit, bool) {
	if m == nil || m.fit == nil {
		return crop.DisplayFit{}, false
	}
	return *m.fit, true
}

// HandlePointer feeds a pointer event to the selection tracker and reports whether
// the selection changed. Events are ignored while no image is loaded.
func (m *SessionModel) HandlePointer(ev crop.SelectionEvent) bool {
	if m == nil || (m.source == nil && ev.Kind != crop.EventReset) {
		return false
	}
	return m.tracker.Handle(ev)
}

// Selection returns the current selection in display coordinates.
func (m *SessionModel) Selection() (*crop.SelectionRect, bool) {
	if m == nil {
		return nil, false
	}
	return m.tracker.Selection()
}

// SelectionState returns the tracker state.
func (m *SessionModel) SelectionState() crop.SelectionState {
	if m == nil {
		return crop.StateIdle
	}
	return m.tracker.Current()
}

// OnSelectionChange registers a tracker transition listener.
func (m *SessionModel) OnSelectionChange(l crop.SelectionListener) {
	if m != nil {
		m.tracker.OnChange(l)
	}
}

// CropBounds maps the selection to source-image pixels.
func (m *SessionModel) CropBounds() (crop.CropBounds, error) {
	if m == nil || m.source == nil || m.fit == nil {
		return crop.CropBounds{}, crop.ErrNoActiveImage
	}
	sel, ok := m.tracker.Selection()
	if !ok {
		return crop.CropBounds{}, crop.ErrNoActiveSelection
	}
	b := m.source.Bounds()
	return crop.MapToSource(sel, m.fit, b.Dx(), b.Dy())
}
