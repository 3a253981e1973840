package ui

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"lassopick/internal/backdrop"
	"lassopick/internal/config"
	"lassopick/internal/domain"
	"lassopick/internal/pointfile"
	"lassopick/internal/selection"
	"lassopick/internal/ui/canvas"
	"lassopick/internal/ui/input"
	inputtypes "lassopick/internal/ui/input/types"
	"lassopick/internal/ui/views"
)

// Rows above and below the canvas besides the help footer
const (
	headerLines = 1
	statusLines = 1
)

// Model represents the UI state
type Model struct {
	config   *config.Config
	logger   *zap.Logger
	ctrl     *selection.Controller
	backdrop *backdrop.Backdrop
	extent   canvas.Extent

	width  int
	height int
	keys   inputtypes.KeyMap
	help   help.Model

	styles       *views.Styles
	renderer     *views.CanvasRenderer
	mouse        *canvas.MouseTranslator
	inputHandler *input.Handler
	pager        *PagerOps
	shades       *image.Gray

	status      string
	statusError bool
	lastExport  string
	inPagerMode bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bd may be nil, in which case the canvas
// is fitted to the points instead of the image.
func NewModel(cfg *config.Config, ctrl *selection.Controller, bd *backdrop.Backdrop, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	keys := inputtypes.DefaultKeyMap()
	styles := views.NewStyles(cfg.UI)

	m := &Model{
		config:       cfg,
		logger:       logger,
		ctrl:         ctrl,
		backdrop:     bd,
		keys:         keys,
		help:         help.New(),
		styles:       styles,
		renderer:     views.NewCanvasRenderer(styles, cfg.UI.Marker),
		mouse:        canvas.NewMouseTranslator(canvas.Viewport{}),
		inputHandler: input.New(keys),
		pager:        NewPagerOps(),
	}

	if bd != nil {
		m.extent = canvas.ImageExtent(bd.Width(), bd.Height())
	} else {
		m.extent = canvas.PointsExtent(ctrl.Registry().Coordinates())
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// GestureActive reports whether a lasso is being drawn
func (m *Model) GestureActive() bool {
	return m.ctrl.GestureActive()
}

// SelectedCount returns the number of selected points
func (m *Model) SelectedCount() int {
	return m.ctrl.Registry().SelectedCount()
}

// LastExport returns the path of the most recent successful export
func (m *Model) LastExport() string {
	return m.lastExport
}

// Viewport returns the current canvas placement
func (m *Model) Viewport() canvas.Viewport {
	return m.mouse.Viewport()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.MouseMsg:
		for _, cmd := range m.mouse.Translate(msg, m.ctrl) {
			m.dispatch(cmd)
		}
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		switch len(cmds) {
		case 0:
			return m, nil
		case 1:
			return m, cmds[0]
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		m.showEvent(msg.Event)
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.String("path", msg.path), zap.Error(msg.err))
			m.setError(fmt.Sprintf("Could not view %s: %v", msg.path, msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// processAction executes one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.SetSelectionModeAction:
		m.dispatch(selection.SetMode{Mode: a.Mode})

	case inputtypes.ResetSelectionAction:
		res := m.dispatch(selection.Reset{})
		m.setStatus(fmt.Sprintf("Cleared %d selected", res.Changed))

	case inputtypes.CancelGestureAction:
		m.dispatch(selection.CancelGesture{})
		m.mouse.Clear()

	case inputtypes.BeginExportAction:
		if !m.ctrl.Lock().TryAcquire(selection.OwnerPrompt) {
			m.setError("Finish the lasso before saving")
			return nil
		}
		_, cmd := m.inputHandler.EnterMode(inputtypes.ModeExportPrompt, m)
		m.status = ""
		return cmd

	case inputtypes.SubmitTextAction:
		m.ctrl.Lock().Release(selection.OwnerPrompt)
		m.export(a.Text)

	case inputtypes.CancelTextAction:
		m.ctrl.Lock().Release(selection.OwnerPrompt)
		m.setStatus("Save canceled")

	case inputtypes.ViewExportAction:
		if m.lastExport == "" {
			m.setError("Nothing saved yet")
			return nil
		}
		return m.viewInPager(m.lastExport)

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// dispatch forwards a selection command to the controller
func (m *Model) dispatch(cmd selection.Command) selection.Result {
	res, err := m.ctrl.Handle(cmd)
	if err != nil {
		m.logger.Error("command failed", zap.String("command", cmd.Type()), zap.Error(err))
		m.setError(err.Error())
		return res
	}
	if res.Ignored == selection.LockHeld && m.inputHandler.CurrentMode() == inputtypes.ModeExportPrompt {
		m.setError("Close the save prompt before drawing")
	}
	if _, ok := cmd.(selection.CompleteGesture); ok {
		m.setStatus(fmt.Sprintf("Lasso enclosed %d, changed %d", res.Enclosed, res.Changed))
	}
	return res
}

func (m *Model) export(name string) {
	res, err := m.ctrl.Handle(selection.Export{Name: name})
	if err != nil {
		m.logger.Warn("export failed", zap.String("name", name), zap.Error(err))
		return
	}
	m.lastExport = res.ExportPath
}

// showEvent reports export outcomes in the status line
func (m *Model) showEvent(e domain.DomainEvent) {
	switch e := e.(type) {
	case domain.ExportCompletedEvent:
		m.setStatus(fmt.Sprintf("Saved %d points to %s", e.Count, e.Path))
	case domain.ExportFailedEvent:
		var exportErr *pointfile.ExportError
		switch {
		case errors.Is(e.Error, pointfile.ErrInvalidName):
			m.setError(fmt.Sprintf("Invalid file name %q", e.Name))
		case errors.As(e.Error, &exportErr):
			m.setError(fmt.Sprintf("Could not save %s: %v", exportErr.Path, exportErr.Err))
		default:
			m.setError(e.Error.Error())
		}
	}
}

// viewInPager returns a command that shows the file using the ov pager
func (m *Model) viewInPager(path string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerDoneMsg{path: path, err: fmt.Errorf("program not set")}
		}
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowFile(path)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerDoneMsg{path: path, err: err}
	}
}

// Notify shows msg in the status line
func (m *Model) Notify(msg string) {
	m.setStatus(msg)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusError = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusError = true
}

// layout recomputes where the canvas sits after a resize or help toggle
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	rows := max(m.height-headerLines-statusLines-helpHeight, 1)

	m.mouse.SetViewport(canvas.Viewport{
		Extent: m.extent,
		Left:   0,
		Top:    headerLines,
		Cols:   m.width,
		Rows:   rows,
	})

	m.shades = nil
	if m.backdrop != nil && m.config.UI.ShowBackdrop {
		m.shades = m.backdrop.Sample(m.width, rows)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	v := m.mouse.Viewport()
	state := views.CanvasState{
		Cols:    v.Cols,
		Rows:    v.Rows,
		Shades:  m.shades,
		Markers: canvas.Markers(v, m.ctrl.Registry().All()),
	}
	if m.ctrl.GestureActive() {
		state.Lasso = m.mouse.LassoCells()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderer.Render(state))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) renderHeader() string {
	mode := m.ctrl.Mode()
	modeStyle := m.styles.ModeAdd
	if !mode.Target() {
		modeStyle = m.styles.ModeRemove
	}

	parts := []string{
		m.styles.Title.Render("lassopick"),
		modeStyle.Render("[" + mode.Indicator() + "]"),
		m.styles.Count.Render(fmt.Sprintf("%d/%d selected", m.SelectedCount(), m.ctrl.Registry().Len())),
	}
	if m.ctrl.GestureActive() {
		parts = append(parts, m.styles.Lasso.Render("drawing"))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderStatus() string {
	if ti := m.inputHandler.TextInput(); ti != nil {
		line := m.styles.Prompt.Render(m.inputHandler.Prompt()) + ti.View()
		if m.statusError && m.status != "" {
			line += "  " + m.styles.StatusError.Render(m.status)
		}
		return line
	}
	if m.status == "" {
		return ""
	}
	if m.statusError {
		return m.styles.StatusError.Render(m.status)
	}
	return m.styles.StatusSuccess.Render(m.status)
}
