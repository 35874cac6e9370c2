package messages

// ErrorMsg reports a failure to show in the status line.
type ErrorMsg struct {
	Err error
}

// ThemeChangedMsg is sent when the theme preference changes outside the model,
// for example when the theme file is edited.
type ThemeChangedMsg struct {
	Dark bool
}

