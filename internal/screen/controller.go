package screen

import (
	"fmt"
	"strings"

	"github.com/nibzard/todolist-go/internal/presenter"
	"github.com/nibzard/todolist-go/internal/task"
)

// Mode is the dialog state of the screen.
type Mode int

const (
	Idle Mode = iota
	ComposingNew
	ComposingEdit
	ConfirmingDelete
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case ComposingNew:
		return "composing-new"
	case ComposingEdit:
		return "composing-edit"
	case ConfirmingDelete:
		return "confirming-delete"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Presentation selects between the list and the empty-state view.
type Presentation int

const (
	PresentEmpty Presentation = iota
	PresentList
)

// EditPolicy controls date and time picks made while editing a task.
type EditPolicy string

const (
	// EditStaged keeps picks in the draft until confirm. Cancel discards them.
	EditStaged EditPolicy = "staged"
	// EditImmediate writes picks to the task at once. Cancel keeps them.
	EditImmediate EditPolicy = "immediate"
)

// ParseEditPolicy normalizes a policy name. Unknown names are reported as
// not ok.
func ParseEditPolicy(s string) (EditPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "staged", "stage":
		return EditStaged, true
	case "immediate", "live":
		return EditImmediate, true
	default:
		return EditStaged, false
	}
}

// Messages shown by the state machine.
const (
	MsgMissingFields = "Title and description are required."
	MsgMissingTime   = "Set a time before setting an alarm."
)

// Option configures a Controller.
type Option func(*Controller)

// WithEditPolicy sets the edit policy.
func WithEditPolicy(p EditPolicy) Option {
	return func(c *Controller) {
		c.policy = p
	}
}

// Controller drives the screen. It is not safe for concurrent use.
type Controller struct {
	store        *task.Store
	presenter    *presenter.ListPresenter
	policy       EditPolicy
	mode         Mode
	target       string
	draft        Draft
	presentation Presentation
}

// New returns an idle controller owning store and p.
func New(store *task.Store, p *presenter.ListPresenter, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		presenter: p,
		policy:    EditStaged,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.refreshPresentation()
	return c
}

// Mode returns the current dialog state.
func (c *Controller) Mode() Mode { return c.mode }

// Draft returns the draft of the open compose session.
func (c *Controller) Draft() Draft { return c.draft }

// Presentation returns the current list/empty presentation.
func (c *Controller) Presentation() Presentation { return c.presentation }

// Policy returns the edit policy.
func (c *Controller) Policy() EditPolicy { return c.policy }

// Store returns the owned store.
func (c *Controller) Store() *task.Store { return c.store }

// Presenter returns the owned presenter.
func (c *Controller) Presenter() *presenter.ListPresenter { return c.presenter }

// Target returns the store index of the task being edited or deleted, or -1.
func (c *Controller) Target() int {
	if c.mode != ComposingEdit && c.mode != ConfirmingDelete {
		return -1
	}
	return c.store.IndexOf(c.target)
}

// Dispatch applies ev to the state machine and returns the effects to run.
// Events that do not apply to the current mode are ignored. Errors are only
// returned for index mismatches between the caller and the store.
func (c *Controller) Dispatch(ev Event) ([]Effect, error) {
	switch c.mode {
	case Idle:
		return c.idle(ev)
	case ComposingNew:
		return c.composingNew(ev)
	case ComposingEdit:
		return c.composingEdit(ev)
	case ConfirmingDelete:
		return c.confirmingDelete(ev)
	}
	return nil, nil
}

func (c *Controller) idle(ev Event) ([]Effect, error) {
	switch ev := ev.(type) {
	case TapAdd:
		c.mode = ComposingNew
		c.draft = Draft{}
	case OpenRow:
		return nil, c.beginEdit(ev.Index)
	case EditRow:
		return nil, c.beginEdit(ev.Index)
	case DeleteRow:
		t, err := c.store.At(ev.Index)
		if err != nil {
			return nil, fmt.Errorf("delete row: %w", err)
		}
		c.mode = ConfirmingDelete
		c.target = t.ID
	}
	return nil, nil
}

func (c *Controller) beginEdit(index int) error {
	t, err := c.store.At(index)
	if err != nil {
		return fmt.Errorf("edit row: %w", err)
	}
	c.mode = ComposingEdit
	c.target = t.ID
	c.draft = DraftFrom(t)
	return nil
}

func (c *Controller) composingNew(ev Event) ([]Effect, error) {
	switch ev := ev.(type) {
	case PickDate:
		c.draft.applyDate(ev)
	case PickTime:
		c.draft.Time = ev.Time
	case RequestAlarm:
		return c.alarm(), nil
	case Cancel:
		c.toIdle()
	case Confirm:
		c.draft.Title = ev.Title
		c.draft.Description = ev.Description
		if !c.draft.complete() {
			return []Effect{ShowMessage{Text: MsgMissingFields}}, nil
		}
		t := c.draft.Task()
		index := c.store.Append(t)
		if err := c.presenter.NotifyInserted(index); err != nil {
			return nil, err
		}
		c.toIdle()
		return []Effect{
			Notify{Title: t.Title, Body: t.Description},
			PlaySound{},
		}, nil
	}
	return nil, nil
}

func (c *Controller) composingEdit(ev Event) ([]Effect, error) {
	switch ev := ev.(type) {
	case PickDate:
		c.draft.applyDate(ev)
		if c.policy == EditImmediate {
			year := c.draft.YearValue()
			return nil, c.replaceTarget(func(t *task.Task) {
				t.Day = ev.Day
				t.Date = ev.Date
				t.Month = ev.Month
				t.Year = year
			})
		}
	case PickTime:
		c.draft.Time = ev.Time
		if c.policy == EditImmediate {
			return nil, c.replaceTarget(func(t *task.Task) {
				t.Time = ev.Time
			})
		}
	case RequestAlarm:
		return c.alarm(), nil
	case Cancel:
		c.toIdle()
	case Confirm:
		c.draft.Title = ev.Title
		c.draft.Description = ev.Description
		if !c.draft.complete() {
			return []Effect{ShowMessage{Text: MsgMissingFields}}, nil
		}
		d := c.draft
		staged := c.policy == EditStaged
		err := c.replaceTarget(func(t *task.Task) {
			t.Title = d.Title
			t.Description = d.Description
			if staged {
				t.Day = d.Day
				t.Date = d.Date
				t.Month = d.Month
				t.Year = d.YearValue()
				t.Time = d.Time
			}
		})
		c.toIdle()
		return nil, err
	}
	return nil, nil
}

func (c *Controller) confirmingDelete(ev Event) ([]Effect, error) {
	switch ev.(type) {
	case Cancel:
		c.toIdle()
	case Confirm:
		index := c.store.IndexOf(c.target)
		c.toIdle()
		if index < 0 {
			return nil, fmt.Errorf("delete: %w", task.ErrIndexOutOfRange)
		}
		if _, err := c.store.RemoveAt(index); err != nil {
			return nil, err
		}
		if err := c.presenter.NotifyRemoved(index); err != nil {
			return nil, err
		}
		c.refreshPresentation()
	}
	return nil, nil
}

func (c *Controller) alarm() []Effect {
	if strings.TrimSpace(c.draft.Time) == "" {
		return []Effect{ShowMessage{Text: MsgMissingTime}}
	}
	return []Effect{ScheduleAlarm{Time: c.draft.Time}}
}

// replaceTarget updates the task under edit and refreshes its row.
func (c *Controller) replaceTarget(fn func(*task.Task)) error {
	index := c.store.IndexOf(c.target)
	if index < 0 {
		return fmt.Errorf("replace: %w", task.ErrIndexOutOfRange)
	}
	if err := c.store.ReplaceFieldsAt(index, fn); err != nil {
		return err
	}
	return c.presenter.NotifyChanged(index)
}

func (c *Controller) toIdle() {
	c.mode = Idle
	c.target = ""
	c.draft = Draft{}
	c.refreshPresentation()
}

func (c *Controller) refreshPresentation() {
	if c.store.IsEmpty() {
		c.presentation = PresentEmpty
		return
	}
	c.presentation = PresentList
}
