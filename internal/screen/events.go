package screen

// Event is an input to the state machine.
type Event interface {
	event()
}

// TapAdd opens the add dialog.
type TapAdd struct{}

// OpenRow is a primary tap on a row.
type OpenRow struct{ Index int }

// EditRow is the Edit entry of a row's options menu.
type EditRow struct{ Index int }

// DeleteRow is the Delete entry of a row's options menu.
type DeleteRow struct{ Index int }

// PickDate delivers a date picker result.
type PickDate struct {
	Day   string
	Date  string
	Month string
	Year  string
}

// PickTime delivers a time picker result in "H:MM" form.
type PickTime struct{ Time string }

// Confirm is the positive button of the open dialog. Title and Description
// carry the dialog's text fields and are ignored when confirming a delete.
type Confirm struct {
	Title       string
	Description string
}

// Cancel is the negative button of the open dialog.
type Cancel struct{}

// RequestAlarm asks for an alarm at the draft time.
type RequestAlarm struct{}

func (TapAdd) event()       {}
func (OpenRow) event()      {}
func (EditRow) event()      {}
func (DeleteRow) event()    {}
func (PickDate) event()     {}
func (PickTime) event()     {}
func (Confirm) event()      {}
func (Cancel) event()       {}
func (RequestAlarm) event() {}

// Effect is a side effect to run after a transition has been committed.
type Effect interface {
	effect()
}

// Notify posts a notification for a newly created task.
type Notify struct {
	Title string
	Body  string
}

// PlaySound plays the screen's notification sound once.
type PlaySound struct{}

// ScheduleAlarm asks for a one-shot alarm at the next occurrence of Time.
type ScheduleAlarm struct{ Time string }

// ShowMessage shows a transient message. Long selects the longer duration.
type ShowMessage struct {
	Text string
	Long bool
}

func (Notify) effect()        {}
func (PlaySound) effect()     {}
func (ScheduleAlarm) effect() {}
func (ShowMessage) effect()   {}
