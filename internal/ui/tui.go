// Package ui runs the todolist screen as a bubbletea program.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/logging"
	"github.com/nibzard/todolist-go/internal/picker"
	"github.com/nibzard/todolist-go/internal/platform"
	"github.com/nibzard/todolist-go/internal/presenter"
	"github.com/nibzard/todolist-go/internal/screen"
	"github.com/nibzard/todolist-go/internal/task"
)

// AppName identifies todolist to the notification service.
const AppName = "todolist"

// Toast lifetimes.
const (
	ToastShort = 2 * time.Second
	ToastLong  = 3500 * time.Millisecond
)

// RunTUI starts the screen with collaborators built from cfg and blocks until
// the user quits or ctx is done.
func RunTUI(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("todolist requires a TTY")
	}

	policy, ok := screen.ParseEditPolicy(cfg.EditDateTime)
	if !ok {
		logger.Warn("unknown edit policy, using staged", "edit_date_time", cfg.EditDateTime)
	}

	var program *tea.Program
	receiver := &platform.AlarmReceiver{
		NewPlayer: func() (platform.SoundPlayer, error) {
			return platform.NewSoundPlayer(cfg.Sound, platform.DefaultTone(platform.SoundAlarm)), nil
		},
		Alert: func(text string) {
			program.Send(AlarmMsg{Text: text})
		},
		Errors: func(err error) {
			logger.Warn("alarm playback failed", "err", err)
		},
	}
	scheduler := platform.NewTimerScheduler(platform.RealClock{}, cfg.ExactAlarms, receiver.Receive)
	defer scheduler.Close()

	var notifier platform.Notifier = platform.NoopNotifier{}
	if cfg.Notifications {
		notifier = platform.NewDesktopNotifier(AppName, true, cfg.NotificationIcon)
	}

	model := New(Deps{
		Store:     task.NewStore(),
		Policy:    policy,
		Notifier:  notifier,
		Player:    platform.NewSoundPlayer(cfg.Sound, platform.Tone{Frequency: cfg.SoundFrequency, DurationMS: cfg.SoundDurationMS}),
		Scheduler: scheduler,
		Logger:    logger,
	})
	defer model.Close()

	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	logger.Info("screen started", "policy", policy, "notifications", cfg.Notifications, "exact_alarms", cfg.ExactAlarms)
	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Deps are the collaborators of a Model. Nil fields get inert defaults.
type Deps struct {
	Store     *task.Store
	Policy    screen.EditPolicy
	Notifier  platform.Notifier
	Player    platform.SoundPlayer
	Scheduler platform.AlarmScheduler
	Clock     platform.Clock
	Logger    *log.Logger
}

// AlarmMsg reports a fired alarm.
type AlarmMsg struct {
	Text string
}

type toastExpiredMsg struct {
	id int
}

type toast struct {
	id    int
	text  string
	alert bool
}

type field int

const (
	fieldTitle field = iota
	fieldDescription
)

// Model is the bubbletea model of the screen. It is the presenter's
// listener, so row interactions come back through OnOpen, OnEdit and
// OnDelete.
type Model struct {
	ctrl      *screen.Controller
	presenter *presenter.ListPresenter
	notifier  platform.Notifier
	player    platform.SoundPlayer
	scheduler platform.AlarmScheduler
	clock     platform.Clock
	logger    *log.Logger

	keys   keyMap
	help   help.Model
	width  int
	height int
	cursor int

	menuOpen   bool
	menuCursor int

	title       textinput.Model
	description textinput.Model
	focus       field
	datePicker  *picker.DatePicker
	timePicker  *picker.TimePicker

	toast    *toast
	toastSeq int
	tick     func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	queued   []tea.Cmd
	released bool
}

// New builds the screen around deps.Store.
func New(deps Deps) *Model {
	store := deps.Store
	if store == nil {
		store = task.NewStore()
	}
	m := &Model{
		notifier:  deps.Notifier,
		player:    deps.Player,
		scheduler: deps.Scheduler,
		clock:     deps.Clock,
		logger:    deps.Logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		tick:      tea.Tick,
	}
	if m.notifier == nil {
		m.notifier = platform.NoopNotifier{}
	}
	if m.player == nil {
		m.player = platform.NoopPlayer{}
	}
	if m.scheduler == nil {
		m.scheduler = platform.NewTimerScheduler(nil, false, nil)
	}
	if m.clock == nil {
		m.clock = platform.RealClock{}
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}

	m.presenter = presenter.New(store)
	m.presenter.SetListener(m)
	var opts []screen.Option
	if deps.Policy != "" {
		opts = append(opts, screen.WithEditPolicy(deps.Policy))
	}
	m.ctrl = screen.New(store, m.presenter, opts...)

	m.title = newInput("What needs doing?", 120)
	m.description = newInput("Details", 500)
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	return in
}

// Controller returns the screen's state machine.
func (m *Model) Controller() *screen.Controller { return m.ctrl }

// Cursor returns the selected row position.
func (m *Model) Cursor() int { return m.cursor }

// Toast returns the visible transient message, or "".
func (m *Model) Toast() string {
	if m.toast == nil {
		return ""
	}
	return m.toast.text
}

// Close releases the screen-scoped sound player. Later calls do nothing.
func (m *Model) Close() {
	if m.released {
		return
	}
	m.released = true
	if err := m.player.Release(); err != nil {
		m.logger.Warn("release sound player", "err", err)
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, tea.Batch(cmd, m.flush())
	case picker.DatePickedMsg:
		m.datePicker = nil
		m.dispatch(screen.PickDate{
			Day:   msg.Result.Day,
			Date:  msg.Result.Date,
			Month: msg.Result.Month,
			Year:  msg.Result.Year,
		})
		return m, tea.Batch(m.focusInput(), m.flush())
	case picker.TimePickedMsg:
		m.timePicker = nil
		m.dispatch(screen.PickTime{Time: msg.Time})
		return m, tea.Batch(m.focusInput(), m.flush())
	case picker.PickCanceledMsg:
		m.datePicker, m.timePicker = nil, nil
		return m, m.focusInput()
	case AlarmMsg:
		m.logger.Info("alarm fired")
		cmd := m.showToast(msg.Text, false)
		m.toast.alert = true
		return m, cmd
	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil
	}
	return m, m.forward(msg)
}

// forward hands other messages, such as cursor blinks, to the active input.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.datePicker != nil:
		var p picker.DatePicker
		p, cmd = m.datePicker.Update(msg)
		m.datePicker = &p
	case m.timePicker != nil:
		var p picker.TimePicker
		p, cmd = m.timePicker.Update(msg)
		m.timePicker = &p
	case m.composing():
		if m.focus == fieldTitle {
			m.title, cmd = m.title.Update(msg)
		} else {
			m.description, cmd = m.description.Update(msg)
		}
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.datePicker != nil || m.timePicker != nil {
		if key.Matches(msg, m.keys.compose.Quit) {
			return tea.Quit
		}
		return m.forward(msg)
	}

	switch m.ctrl.Mode() {
	case screen.Idle:
		if m.menuOpen {
			return m.handleMenuKey(msg)
		}
		return m.handleListKey(msg)
	case screen.ComposingNew, screen.ComposingEdit:
		return m.handleComposeKey(msg)
	case screen.ConfirmingDelete:
		return m.handleConfirmKey(msg)
	}
	return nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.list
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.cursor < m.presenter.RowCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Add):
		m.dispatch(screen.TapAdd{})
	case key.Matches(msg, k.Open):
		m.presenter.Open(m.cursor)
	case key.Matches(msg, k.Edit):
		m.presenter.Edit(m.cursor)
	case key.Matches(msg, k.Delete):
		m.presenter.Delete(m.cursor)
	case key.Matches(msg, k.Options):
		if m.presenter.RowCount() > 0 {
			m.menuOpen = true
			m.menuCursor = 0
		}
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.menu
	options := m.presenter.Options()
	switch {
	case key.Matches(msg, k.Close):
		m.menuOpen = false
	case key.Matches(msg, k.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, k.Down):
		if m.menuCursor < len(options)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, k.Choose):
		m.menuOpen = false
		m.presenter.Choose(m.cursor, options[m.menuCursor])
	}
	return nil
}

func (m *Model) handleComposeKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.compose
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Cancel):
		m.dispatch(screen.Cancel{})
	case key.Matches(msg, k.Confirm):
		m.dispatch(screen.Confirm{
			Title:       m.title.Value(),
			Description: m.description.Value(),
		})
	case key.Matches(msg, k.Next):
		if m.focus == fieldTitle {
			m.focus = fieldDescription
		} else {
			m.focus = fieldTitle
		}
		return m.focusInput()
	case key.Matches(msg, k.Date):
		return m.openDatePicker()
	case key.Matches(msg, k.Time):
		return m.openTimePicker()
	case key.Matches(msg, k.Alarm):
		m.dispatch(screen.RequestAlarm{})
	default:
		return m.forward(msg)
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.confirm
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Yes):
		m.dispatch(screen.Confirm{})
	case key.Matches(msg, k.No):
		m.dispatch(screen.Cancel{})
	}
	return nil
}

func (m *Model) openDatePicker() tea.Cmd {
	now := m.clock.Now()
	year, month, day := now.Date()
	d := m.ctrl.Draft()
	if t, err := time.Parse("2 Jan 2006", fmt.Sprintf("%s %s %s", d.Date, d.Month, d.Year)); err == nil {
		year, month, day = t.Date()
	}
	p := picker.NewDatePicker(year, month, day)
	m.datePicker = &p
	m.title.Blur()
	m.description.Blur()
	return p.Init()
}

func (m *Model) openTimePicker() tea.Cmd {
	now := m.clock.Now()
	hour, minute := now.Hour(), now.Minute()
	if h, mm, err := platform.ParseClock(m.ctrl.Draft().Time); err == nil {
		hour, minute = h, mm
	}
	p := picker.NewTimePicker(hour, minute)
	m.timePicker = &p
	m.title.Blur()
	m.description.Blur()
	return p.Init()
}

// focusInput focuses the current compose field, or blurs both fields outside
// the compose dialog.
func (m *Model) focusInput() tea.Cmd {
	if !m.composing() || m.datePicker != nil || m.timePicker != nil {
		m.title.Blur()
		m.description.Blur()
		return nil
	}
	if m.focus == fieldTitle {
		m.description.Blur()
		return m.title.Focus()
	}
	m.title.Blur()
	return m.description.Focus()
}

func (m *Model) composing() bool {
	mode := m.ctrl.Mode()
	return mode == screen.ComposingNew || mode == screen.ComposingEdit
}

// OnOpen implements presenter.Listener.
func (m *Model) OnOpen(index int) { m.dispatch(screen.OpenRow{Index: index}) }

// OnEdit implements presenter.Listener.
func (m *Model) OnEdit(index int) { m.dispatch(screen.EditRow{Index: index}) }

// OnDelete implements presenter.Listener.
func (m *Model) OnDelete(index int) { m.dispatch(screen.DeleteRow{Index: index}) }

// dispatch feeds ev to the controller and queues the resulting effects.
func (m *Model) dispatch(ev screen.Event) {
	before := m.ctrl.Mode()
	rows := m.presenter.RowCount()

	effects, err := m.ctrl.Dispatch(ev)
	if err != nil {
		m.logger.Error("event failed", "event", fmt.Sprintf("%T", ev), "mode", before, "err", err)
		m.queue(m.showToast("Something went wrong.", true))
	}

	if after := m.ctrl.Mode(); after != before {
		m.logger.Debug("mode changed", "from", before, "to", after)
		m.enter(after)
	}
	switch count := m.presenter.RowCount(); {
	case count > rows:
		m.cursor = count - 1
		m.logger.Info("task added", "index", count-1)
	case count < rows:
		m.logger.Info("task deleted", "remaining", count)
	}
	if m.cursor >= m.presenter.RowCount() {
		m.cursor = max(m.presenter.RowCount()-1, 0)
	}

	for _, eff := range effects {
		m.queue(m.run(eff))
	}
}

// enter prepares the inputs for a newly entered mode.
func (m *Model) enter(mode screen.Mode) {
	switch mode {
	case screen.ComposingNew, screen.ComposingEdit:
		d := m.ctrl.Draft()
		m.title.SetValue(d.Title)
		m.title.CursorEnd()
		m.description.SetValue(d.Description)
		m.description.CursorEnd()
		m.focus = fieldTitle
		m.queue(m.focusInput())
	default:
		m.title.Reset()
		m.description.Reset()
		m.datePicker, m.timePicker = nil, nil
		m.queue(m.focusInput())
	}
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

func (m *Model) flush() tea.Cmd {
	cmds := m.queued
	m.queued = nil
	return tea.Batch(cmds...)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
