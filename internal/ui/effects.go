package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todolist-go/internal/platform"
	"github.com/nibzard/todolist-go/internal/screen"
)

// Alarm messages.
const (
	MsgAlarmDenied = "Please enable exact alarms (exact_alarms = true) to set alarms."
	MsgAlarmFailed = "Unable to set the alarm."
	MsgAlarmSet    = "Alarm set for "
	MsgInvalidTime = "Pick a valid time before setting an alarm."
)

// run turns an effect into a command. Notification and sound run off the
// update loop; their failures are only logged.
func (m *Model) run(eff screen.Effect) tea.Cmd {
	logger := m.logger
	switch eff := eff.(type) {
	case screen.Notify:
		notifier := m.notifier
		return func() tea.Msg {
			if err := notifier.Post(eff.Title, eff.Body, platform.SoundNotification); err != nil {
				logger.Warn("notification failed", "title", eff.Title, "err", err)
			}
			return nil
		}
	case screen.PlaySound:
		player := m.player
		return func() tea.Msg {
			if err := player.PlayOnce(); err != nil {
				logger.Warn("sound failed", "err", err)
			}
			return nil
		}
	case screen.ScheduleAlarm:
		return m.scheduleAlarm(eff.Time)
	case screen.ShowMessage:
		return m.showToast(eff.Text, eff.Long)
	}
	return nil
}

func (m *Model) scheduleAlarm(clock string) tea.Cmd {
	at, err := platform.NextOccurrence(m.clock.Now(), clock)
	if err != nil {
		m.logger.Warn("alarm time rejected", "time", clock, "err", err)
		return m.showToast(MsgInvalidTime, true)
	}
	if err := m.scheduler.ScheduleExactAt(at); err != nil {
		if errors.Is(err, platform.ErrPermissionDenied) {
			m.logger.Warn("exact alarm permission denied", "at", at)
			return m.showToast(MsgAlarmDenied, true)
		}
		m.logger.Error("schedule alarm", "at", at, "err", err)
		return m.showToast(MsgAlarmFailed, true)
	}
	m.logger.Info("alarm scheduled", "at", at.Format(time.RFC3339))
	return m.showToast(MsgAlarmSet+clock, false)
}

// showToast replaces the visible toast and schedules its expiry.
func (m *Model) showToast(text string, long bool) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toast = &toast{id: id, text: text}
	d := ToastShort
	if long {
		d = ToastLong
	}
	return m.tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
