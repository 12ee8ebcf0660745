package platform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrPermissionDenied reports that the host has not authorized the request.
var ErrPermissionDenied = errors.New("permission denied")

// AlarmScheduler schedules one-shot wall-clock alarms.
type AlarmScheduler interface {
	ScheduleExactAt(at time.Time) error
}

// ParseClock parses "H:MM" or "HH:MM" in 24-hour form.
func ParseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("parse time %q: missing ':'", s)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("parse time %q: invalid hour", s)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("parse time %q: invalid minute", s)
	}
	return hour, minute, nil
}

// NextOccurrence returns the next moment after now at which the local wall
// clock reads clock, with seconds zeroed.
func NextOccurrence(now time.Time, clock string) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, nil
}

// AlarmEvent is delivered when an alarm fires.
type AlarmEvent struct {
	ScheduledFor time.Time
	FiredAt      time.Time
}

// TimerScheduler runs alarms on in-process timers. It keeps at most one
// pending alarm; scheduling again replaces it.
type TimerScheduler struct {
	// Authorized is the exact-alarm permission. When false every request
	// fails with ErrPermissionDenied.
	Authorized bool

	clock     Clock
	onFire    func(AlarmEvent)
	afterFunc func(time.Duration, func()) stopper

	mu      sync.Mutex
	pending stopper
	closed  bool
}

type stopper interface {
	Stop() bool
}

// NewTimerScheduler returns a scheduler that calls onFire from the timer
// goroutine.
func NewTimerScheduler(clock Clock, authorized bool, onFire func(AlarmEvent)) *TimerScheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &TimerScheduler{
		Authorized: authorized,
		clock:      clock,
		onFire:     onFire,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// ScheduleExactAt arms the alarm for at, replacing any pending one.
func (s *TimerScheduler) ScheduleExactAt(at time.Time) error {
	if !s.Authorized {
		return fmt.Errorf("schedule alarm: %w", ErrPermissionDenied)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("schedule alarm: scheduler closed")
	}
	if s.pending != nil {
		s.pending.Stop()
	}

	delay := at.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}
	var t stopper
	t = s.afterFunc(delay, func() {
		s.mu.Lock()
		closed := s.closed
		if s.pending == t {
			s.pending = nil
		}
		s.mu.Unlock()
		if !closed && s.onFire != nil {
			s.onFire(AlarmEvent{ScheduledFor: at, FiredAt: s.clock.Now()})
		}
	})
	s.pending = t
	return nil
}

// Pending reports whether an alarm is armed.
func (s *TimerScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Close cancels the pending alarm and rejects further requests. A timer
// already firing when Close runs does not reach onFire.
func (s *TimerScheduler) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.closed = true
	return nil
}

// AlertText is shown when an alarm fires.
const AlertText = "Alarm ringing!"

// AlarmReceiver handles fired alarms outside the screen's lifecycle. Each
// firing plays on its own player, released after the single play.
type AlarmReceiver struct {
	NewPlayer func() (SoundPlayer, error)
	Alert     func(text string)
	// Errors receives playback failures; nil drops them.
	Errors func(error)
}

// Receive handles one alarm firing.
func (r *AlarmReceiver) Receive(AlarmEvent) {
	if r.Alert != nil {
		r.Alert(AlertText)
	}
	if r.NewPlayer == nil {
		return
	}
	player, err := r.NewPlayer()
	if err != nil {
		r.report(fmt.Errorf("alarm sound: %w", err))
		return
	}
	defer player.Release()
	if err := player.PlayOnce(); err != nil {
		r.report(fmt.Errorf("alarm sound: %w", err))
	}
}

func (r *AlarmReceiver) report(err error) {
	if r.Errors != nil {
		r.Errors(err)
	}
}
