package types

import "lassopick/internal/domain"

// Selection actions
type SetSelectionModeAction struct {
	Mode domain.Mode
}

func (a SetSelectionModeAction) Type() string { return "set_selection_mode" }

type ResetSelectionAction struct{}

func (a ResetSelectionAction) Type() string { return "reset_selection" }

type CancelGestureAction struct{}

func (a CancelGestureAction) Type() string { return "cancel_gesture" }

// Export actions
type BeginExportAction struct{}

func (a BeginExportAction) Type() string { return "begin_export" }

type ViewExportAction struct{}

func (a ViewExportAction) Type() string { return "view_export" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
