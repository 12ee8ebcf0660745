// Package presenter projects the task store into renderable rows and routes
// row interactions back to the screen that owns the store.
package presenter

import (
	"fmt"
	"strconv"

	"github.com/nibzard/todolist-go/internal/task"
)

// RowViewModel is the display form of one task.
type RowViewModel struct {
	ID          string
	Day         string
	Date        string
	Month       string
	Year        string
	Time        string
	Title       string
	Description string
}

// Listener receives row interactions. Indices are store indices resolved at
// interaction time.
type Listener interface {
	OnOpen(index int)
	OnEdit(index int)
	OnDelete(index int)
}

// Option is an entry of a row's options menu.
type Option string

const (
	OptionEdit   Option = "Edit"
	OptionDelete Option = "Delete"
)

// ListPresenter reflects a task.Store into a cached list of rows. It never
// mutates the store. After every store mutation the owner must call exactly
// one of NotifyInserted, NotifyChanged or NotifyRemoved with the same index.
type ListPresenter struct {
	store    *task.Store
	rows     []RowViewModel
	listener Listener
}

// New returns a presenter reading from store. Rows already in the store are
// bound immediately.
func New(store *task.Store) *ListPresenter {
	p := &ListPresenter{store: store}
	for i := 0; i < store.Size(); i++ {
		row, _ := p.BindRow(i)
		p.rows = append(p.rows, row)
	}
	return p
}

// SetListener registers the receiver of row interactions.
func (p *ListPresenter) SetListener(l Listener) {
	p.listener = l
}

// RowCount returns the number of tasks in the store.
func (p *ListPresenter) RowCount() int {
	return p.store.Size()
}

// BindRow projects the task at index into display strings.
func (p *ListPresenter) BindRow(index int) (RowViewModel, error) {
	t, err := p.store.At(index)
	if err != nil {
		return RowViewModel{}, fmt.Errorf("bind row: %w", err)
	}
	return RowViewModel{
		ID:          t.ID,
		Day:         t.Day,
		Date:        t.Date,
		Month:       t.Month,
		Year:        strconv.Itoa(t.Year),
		Time:        t.Time,
		Title:       t.Title,
		Description: t.Description,
	}, nil
}

// Rows returns the rows as last refreshed.
func (p *ListPresenter) Rows() []RowViewModel {
	out := make([]RowViewModel, len(p.rows))
	copy(out, p.rows)
	return out
}

// NotifyInserted binds the task newly stored at index into the row cache.
func (p *ListPresenter) NotifyInserted(index int) error {
	if index < 0 || index > len(p.rows) {
		return &task.IndexError{Op: "notify inserted", Index: index, Size: len(p.rows)}
	}
	row, err := p.BindRow(index)
	if err != nil {
		return err
	}
	p.rows = append(p.rows, RowViewModel{})
	copy(p.rows[index+1:], p.rows[index:])
	p.rows[index] = row
	return nil
}

// NotifyChanged rebinds the row at index.
func (p *ListPresenter) NotifyChanged(index int) error {
	if index < 0 || index >= len(p.rows) {
		return &task.IndexError{Op: "notify changed", Index: index, Size: len(p.rows)}
	}
	row, err := p.BindRow(index)
	if err != nil {
		return err
	}
	p.rows[index] = row
	return nil
}

// NotifyRemoved drops the row at index.
func (p *ListPresenter) NotifyRemoved(index int) error {
	if index < 0 || index >= len(p.rows) {
		return &task.IndexError{Op: "notify removed", Index: index, Size: len(p.rows)}
	}
	p.rows = append(p.rows[:index], p.rows[index+1:]...)
	return nil
}

// Open reports a primary tap on the row at position.
func (p *ListPresenter) Open(position int) bool {
	return p.dispatch(position, func(l Listener, i int) { l.OnOpen(i) })
}

// Edit reports the Edit option on the row at position.
func (p *ListPresenter) Edit(position int) bool {
	return p.dispatch(position, func(l Listener, i int) { l.OnEdit(i) })
}

// Delete reports the Delete option on the row at position.
func (p *ListPresenter) Delete(position int) bool {
	return p.dispatch(position, func(l Listener, i int) { l.OnDelete(i) })
}

// Options returns the entries of a row's options menu.
func (p *ListPresenter) Options() []Option {
	return []Option{OptionEdit, OptionDelete}
}

// Choose reports the selection of opt in the options menu of the row at
// position.
func (p *ListPresenter) Choose(position int, opt Option) bool {
	switch opt {
	case OptionEdit:
		return p.Edit(position)
	case OptionDelete:
		return p.Delete(position)
	default:
		return false
	}
}

// dispatch resolves a row position to the current store index of the row's
// task. Rows whose task is gone are dropped silently.
func (p *ListPresenter) dispatch(position int, fn func(Listener, int)) bool {
	if p.listener == nil || position < 0 || position >= len(p.rows) {
		return false
	}
	index := p.store.IndexOf(p.rows[position].ID)
	if index < 0 {
		return false
	}
	fn(p.listener, index)
	return true
}
