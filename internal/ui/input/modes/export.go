package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lassopick/internal/ui/input/types"
)

// ExportPromptMode asks for the destination name of an export
type ExportPromptMode struct {
	textInputMode TextInputMode
}

func NewExportPromptMode(ti *textinput.Model) *ExportPromptMode {
	return &ExportPromptMode{
		textInputMode: NewTextInputMode(types.ModeExportPrompt, "export", "Save file name: ", ti),
	}
}

func (m *ExportPromptMode) Name() string {
	return m.textInputMode.Name()
}

func (m *ExportPromptMode) Prompt() string {
	return m.textInputMode.Prompt()
}

func (m *ExportPromptMode) Enter(ctx types.Context) []types.Action {
	return m.textInputMode.Enter(ctx)
}

func (m *ExportPromptMode) Exit(ctx types.Context) []types.Action {
	return m.textInputMode.Exit(ctx)
}

func (m *ExportPromptMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Enter submits, esc cancels, anything else edits the name
	return m.textInputMode.HandleKey(msg, ctx)
}
