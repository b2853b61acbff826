package views

import "pokeio/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type SwitchToDetailMsg struct {
	Stub domain.Stub
}

type SwitchToRosterMsg struct{}

type SwitchToHelpMsg struct{}

// FavoriteToggledMsg reports a finished toggle so every view can refresh
// its marker
type FavoriteToggledMsg struct {
	Reference string
	Favorite  bool
	Err       error
}
