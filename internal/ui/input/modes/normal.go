package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lassopick/internal/domain"
	"lassopick/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		return []types.Action{types.SetSelectionModeAction{Mode: domain.ModeAdd}}, true

	case key.Matches(msg, m.keys.Remove):
		return []types.Action{types.SetSelectionModeAction{Mode: domain.ModeRemove}}, true

	case key.Matches(msg, m.keys.Export):
		return []types.Action{types.BeginExportAction{}}, true

	case key.Matches(msg, m.keys.Reset):
		return []types.Action{types.ResetSelectionAction{}}, true

	case key.Matches(msg, m.keys.View):
		return []types.Action{types.ViewExportAction{}}, true

	case key.Matches(msg, m.keys.Cancel):
		// Esc only means something while a lasso is being drawn
		if ctx.GestureActive() {
			return []types.Action{types.CancelGestureAction{}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	}

	// Any other key is ignored
	return nil, false
}
