package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/notice"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// autosaveInterval is how often the user record is written while running.
const autosaveInterval = 10 * time.Second

type autosaveMsg struct{}

func autosaveCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return autosaveMsg{}
	})
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx      context.Context
	ctrl     *Controller
	router   *router.Router
	autosave time.Duration
	width    int
	height   int
}

// NewAppModel creates the root model on the screen for the controller's
// current state. Non-empty notices are shown first, over that screen.
func NewAppModel(ctx context.Context, ctrl *Controller, notices []string) AppModel {
	r := router.New(ctrl.ScreenFor(ctrl.Machine()))
	if len(notices) > 0 {
		r.Push(notice.New("Aviso", notices))
	}
	return AppModel{
		ctx:      ctx,
		ctrl:     ctrl,
		router:   r,
		autosave: autosaveInterval,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Base().Init(), autosaveCmd(m.autosave))
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.ctrl.SaveOnExit(m.ctx)
			return m, tea.Quit
		}

	case autosaveMsg:
		m.ctrl.Save(m.ctx)
		return m, autosaveCmd(m.autosave)

	case screen.EventMsg:
		prev := m.ctrl.Machine().State
		cmd := m.ctrl.Dispatch(m.ctx, msg.Event)
		next := m.ctrl.Machine()
		if next.State != prev {
			return m, tea.Batch(cmd, m.router.ReplaceBase(m.ctrl.ScreenFor(next)))
		}
		return m, tea.Batch(cmd, m.router.UpdateBase(screen.MachineMsg{Machine: next}))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(m.ctrl.Config().Title, title, m.ctrl.Machine().Username, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Fechar"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and saves the user record on exit.
// Canceling ctx stops the program; the exit save still runs.
func Run(ctx context.Context, ctrl *Controller, notices []string) error {
	p := tea.NewProgram(NewAppModel(ctx, ctrl, notices), tea.WithContext(ctx))
	_, err := p.Run()
	ctrl.SaveOnExit(ctx)
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
