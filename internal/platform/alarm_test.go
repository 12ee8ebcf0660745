package platform

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"9:00", 9, 0, false},
		{"09:05", 9, 5, false},
		{"23:59", 23, 59, false},
		{" 0:7 ", 0, 7, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"noon", 0, 0, true},
		{"", 0, 0, true},
		{"a:10", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q): err %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && (h != tt.hour || m != tt.minute) {
				t.Errorf("ParseClock(%q): got %d:%d, want %d:%d", tt.in, h, m, tt.hour, tt.minute)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2024, time.January, 3, 10, 15, 30, 0, time.UTC)
	tests := []struct {
		name  string
		clock string
		want  time.Time
	}{
		{"later today", "18:00", time.Date(2024, time.January, 3, 18, 0, 0, 0, time.UTC)},
		{"earlier rolls over", "9:00", time.Date(2024, time.January, 4, 9, 0, 0, 0, time.UTC)},
		{"same minute rolls over", "10:15", time.Date(2024, time.January, 4, 10, 15, 0, 0, time.UTC)},
		{"next minute", "10:16", time.Date(2024, time.January, 3, 10, 16, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(now, tt.clock)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence: got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := NextOccurrence(now, "bogus"); err == nil {
		t.Error("NextOccurrence(bogus): want error")
	}
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	f.stopped = true
	return true
}

func newTestScheduler(authorized bool, clock Clock, onFire func(AlarmEvent)) (*TimerScheduler, *[]*fakeTimer) {
	s := NewTimerScheduler(clock, authorized, onFire)
	timers := &[]*fakeTimer{}
	s.afterFunc = func(d time.Duration, fn func()) stopper {
		ft := &fakeTimer{delay: d, fn: fn}
		*timers = append(*timers, ft)
		return ft
	}
	return s, timers
}

func TestScheduleRequiresAuthorization(t *testing.T) {
	s, timers := newTestScheduler(false, NewFakeClock(time.Now()), nil)
	err := s.ScheduleExactAt(time.Now().Add(time.Hour))
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("got %v, want ErrPermissionDenied", err)
	}
	if len(*timers) != 0 || s.Pending() {
		t.Error("unauthorized request armed a timer")
	}
}

func TestScheduleReplacesPendingAlarm(t *testing.T) {
	start := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	var fired []AlarmEvent
	s, timers := newTestScheduler(true, clock, func(ev AlarmEvent) { fired = append(fired, ev) })

	first := start.Add(30 * time.Minute)
	second := start.Add(2 * time.Hour)
	if err := s.ScheduleExactAt(first); err != nil {
		t.Fatal(err)
	}
	if err := s.ScheduleExactAt(second); err != nil {
		t.Fatal(err)
	}

	if len(*timers) != 2 {
		t.Fatalf("timers: got %d, want 2", len(*timers))
	}
	if !(*timers)[0].stopped {
		t.Error("first alarm not replaced")
	}
	if got := (*timers)[1].delay; got != 2*time.Hour {
		t.Errorf("delay: got %v, want 2h", got)
	}

	clock.Set(second)
	(*timers)[1].fn()
	if len(fired) != 1 || !fired[0].ScheduledFor.Equal(second) || !fired[0].FiredAt.Equal(second) {
		t.Errorf("fired: got %+v", fired)
	}
	if s.Pending() {
		t.Error("alarm still pending after firing")
	}
}

func TestSchedulePastTimeFiresImmediately(t *testing.T) {
	now := time.Now()
	s, timers := newTestScheduler(true, NewFakeClock(now), nil)
	if err := s.ScheduleExactAt(now.Add(-time.Minute)); err != nil {
		t.Fatal(err)
	}
	if got := (*timers)[0].delay; got != 0 {
		t.Errorf("delay: got %v, want 0", got)
	}
}

func TestCloseCancelsAlarm(t *testing.T) {
	s, timers := newTestScheduler(true, NewFakeClock(time.Now()), nil)
	if err := s.ScheduleExactAt(time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !(*timers)[0].stopped || s.Pending() {
		t.Error("Close left alarm armed")
	}
	if err := s.ScheduleExactAt(time.Now().Add(time.Hour)); err == nil {
		t.Error("schedule after Close: want error")
	}
}

func TestCloseSuppressesInFlightFiring(t *testing.T) {
	fired := 0
	s, timers := newTestScheduler(true, NewFakeClock(time.Now()), func(AlarmEvent) { fired++ })
	if err := s.ScheduleExactAt(time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// The timer callback may already be running when Stop is called.
	(*timers)[0].fn()
	if fired != 0 {
		t.Errorf("fired after Close: got %d, want 0", fired)
	}
}

func TestTimerSchedulerFiresWithRealTimer(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	s := NewTimerScheduler(nil, true, func(AlarmEvent) { wg.Done() })
	if err := s.ScheduleExactAt(time.Now()); err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("alarm did not fire")
	}
}

type countingPlayer struct {
	plays    int
	releases int
	err      error
}

func (p *countingPlayer) PlayOnce() error {
	p.plays++
	return p.err
}

func (p *countingPlayer) Release() error {
	p.releases++
	return nil
}

func TestAlarmReceiverUsesOwnPlayerPerFiring(t *testing.T) {
	var players []*countingPlayer
	var alerts []string
	r := &AlarmReceiver{
		NewPlayer: func() (SoundPlayer, error) {
			p := &countingPlayer{}
			players = append(players, p)
			return p, nil
		},
		Alert: func(text string) { alerts = append(alerts, text) },
	}

	r.Receive(AlarmEvent{})
	r.Receive(AlarmEvent{})

	if len(players) != 2 {
		t.Fatalf("players: got %d, want 2", len(players))
	}
	for i, p := range players {
		if p.plays != 1 || p.releases != 1 {
			t.Errorf("player %d: plays %d releases %d, want 1/1", i, p.plays, p.releases)
		}
	}
	if len(alerts) != 2 || alerts[0] != AlertText {
		t.Errorf("alerts: got %v", alerts)
	}
}

func TestAlarmReceiverReportsErrors(t *testing.T) {
	var errs []error
	p := &countingPlayer{err: errors.New("no speaker")}
	r := &AlarmReceiver{
		NewPlayer: func() (SoundPlayer, error) { return p, nil },
		Errors:    func(err error) { errs = append(errs, err) },
	}
	r.Receive(AlarmEvent{})
	if len(errs) != 1 {
		t.Fatalf("errors: got %d, want 1", len(errs))
	}
	if p.releases != 1 {
		t.Errorf("player not released after failed play")
	}

	r = &AlarmReceiver{
		NewPlayer: func() (SoundPlayer, error) { return nil, errors.New("busy") },
		Errors:    func(err error) { errs = append(errs, err) },
	}
	r.Receive(AlarmEvent{})
	if len(errs) != 2 {
		t.Errorf("errors: got %d, want 2", len(errs))
	}
}

func parseTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}
