package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"

	"tabgroup/internal/config"
	"tabgroup/internal/element"
	"tabgroup/internal/tabgroup"
)

// NextFormMsg switches to the next configured form (ctrl+n).
type NextFormMsg struct{}

// RescanMsg rebuilds the focus group from the current form (ctrl+r).
type RescanMsg struct{}

// StripOrderMsg removes all ordering attributes and rescans (ctrl+x).
type StripOrderMsg struct{}

// ToggleHelpMsg switches between short and full help (f1).
type ToggleHelpMsg struct{}

// headerLines is the number of rows View renders above the form.
const headerLines = 3

// AppModel is the root model. It mounts one form at a time into an element
// tree and hands the form root to the focus controller.
type AppModel struct {
	Tree       *element.Tree
	Form       *FormView
	Controller *tabgroup.Controller
	Queue      *tabgroup.Queue
	KeyHandler *KeyHandler

	forms    []config.Form
	formIdx  int
	help     help.Model
	keys     help.KeyMap
	fullHelp bool
	log      *slog.Logger
}

// AppOptions carry the ambient services the app passes to the controller.
type AppOptions struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model and mounts the first form.
func NewAppModel(cfg config.Config, opts AppOptions) (*AppModel, error) {
	if len(cfg.Forms) == 0 {
		return nil, fmt.Errorf("no forms configured")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	queue := tabgroup.NewQueue()
	ctrl, err := tabgroup.New(tabgroup.Options{
		AutoFocus:        cfg.Options.AutoFocus,
		UseArrows:        cfg.Options.UseArrows,
		Debug:            cfg.Options.Debug,
		PassiveAutoFocus: cfg.Options.PassiveAutoFocus,
		DisableShiftTab:  cfg.Options.DisableShiftTab,
		Scheduler:        queue,
		Logger:           logger,
		TracerProvider:   opts.TracerProvider,
	})
	if err != nil {
		return nil, fmt.Errorf("create focus controller: %w", err)
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+n", func() tea.Msg { return NextFormMsg{} }, "next form")
	reg.BindWithDesc("ctrl+r", func() tea.Msg { return RescanMsg{} }, "rescan")
	reg.BindWithDesc("ctrl+x", func() tea.Msg { return StripOrderMsg{} }, "strip order")
	reg.BindWithDesc("f1", func() tea.Msg { return ToggleHelpMsg{} }, "help")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")

	m := &AppModel{
		Tree:       element.NewTree(),
		Controller: ctrl,
		Queue:      queue,
		KeyHandler: NewKeyHandler(reg),
		forms:      cfg.Forms,
		help:       newHelpModel(),
		keys:       NewKeyMap(reg, ctrl.KeyMap()),
		log:        logger,
	}
	m.mount(0)
	return m, nil
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// mount builds form i, mounts it and hands its root to the controller.
func (m *AppModel) mount(i int) {
	m.formIdx = i
	m.Form = NewFormView(m.forms[i])
	m.Tree.Mount(m.Form.Root())
	m.Controller.Ref()(m.Form.Root())
	m.log.Info("form mounted",
		slog.String("form", m.Form.Title),
		slog.Int("members", len(m.Controller.Group())),
		slog.Uint64("generation", m.Controller.Generation()),
	)
}

// Close releases the controller's listeners.
func (m *AppModel) Close() {
	m.Controller.Close()
	m.Tree.Mount(nil)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Form.Init(), a.Queue.Cmd())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	// Pending deferred work runs on a later turn.
	return a, tea.Batch(cmd, a.Form.Sync(a.Tree.Focused()), a.Queue.Cmd())
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tabgroup.TurnMsg:
		msg.Run()
		return nil
	case NextFormMsg:
		a.mount((a.formIdx + 1) % len(a.forms))
		return a.Form.Init()
	case RescanMsg:
		a.Controller.Rescan()
		return nil
	case StripOrderMsg:
		a.Form.StripOrder()
		a.Controller.Rescan()
		return nil
	case ToggleHelpMsg:
		a.fullHelp = !a.fullHelp
		return nil
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		return nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if n := a.Form.FieldAt(msg.Y - headerLines); n != nil {
				n.Focus()
			} else if focused := a.Tree.Focused(); focused != nil {
				// Clicking outside every field leaves nothing focused.
				focused.Blur()
			}
		}
		return nil
	case tea.KeyMsg:
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return keyCmd
		}
		if a.Tree.HandleKey(msg) {
			return nil
		}
	}

	_, cmd := a.Form.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	a.Form.SetGroup(a.Controller.Group(), a.Controller.Active())

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("%s (%d/%d)", a.Form.Title, a.formIdx+1, len(a.forms))))
	b.WriteString("\n")
	b.WriteString(Styles.Status.Render(a.status()))
	b.WriteString("\n\n")
	b.WriteString(a.Form.View())
	b.WriteString(RenderKeybindHelp(a.help, a.keys, a.fullHelp))
	return b.String()
}

func (a *AppModel) status() string {
	active := "none"
	if p := a.Controller.Active(); p.Valid() {
		active = fmt.Sprintf("#%d", int(p))
	}
	return fmt.Sprintf("group %d  active %s  generation %d  listeners %d",
		len(a.Controller.Group()), active, a.Controller.Generation(), a.Controller.Listening())
}
