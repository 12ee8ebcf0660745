package task

import (
	"errors"
	"fmt"
	"testing"
)

func sampleTask(n int) Task {
	return Task{
		Day:         "Mon",
		Date:        fmt.Sprintf("%d", n),
		Month:       "Jan",
		Year:        2024,
		Time:        "9:00",
		Title:       fmt.Sprintf("Task %d", n),
		Description: fmt.Sprintf("details %d", n),
	}
}

func TestAppendAssignsIndexAndID(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		idx := s.Append(sampleTask(i))
		if idx != i {
			t.Fatalf("Append index: got %d, want %d", idx, i)
		}
	}
	if s.Size() != 5 {
		t.Fatalf("Size: got %d, want 5", s.Size())
	}

	seen := make(map[string]bool)
	for i, task := range s.Tasks() {
		if task.ID == "" {
			t.Errorf("task %d has empty ID", i)
		}
		if seen[task.ID] {
			t.Errorf("task %d has duplicate ID %s", i, task.ID)
		}
		seen[task.ID] = true
		if !task.SameFields(sampleTask(i)) {
			t.Errorf("task %d: got %+v, want fields of %+v", i, task, sampleTask(i))
		}
	}
}

func TestAppendKeepsExistingID(t *testing.T) {
	s := NewStore()
	task := sampleTask(1)
	task.ID = "fixed"
	s.Append(task)
	if got := s.IndexOf("fixed"); got != 0 {
		t.Errorf("IndexOf: got %d, want 0", got)
	}
}

func TestIdenticalTasksAreDistinct(t *testing.T) {
	s := NewStore()
	s.Append(sampleTask(1))
	s.Append(sampleTask(1))
	if s.Size() != 2 {
		t.Fatalf("Size: got %d, want 2", s.Size())
	}
	a, _ := s.At(0)
	b, _ := s.At(1)
	if a.ID == b.ID {
		t.Errorf("identical tasks share ID %s", a.ID)
	}
}

func TestScenarioAppendOne(t *testing.T) {
	s := NewStore()
	s.Append(Task{Day: "Mon", Date: "3", Month: "Jan", Year: 2024, Time: "9:00", Title: "Buy milk", Description: "2%"})
	if s.Size() != 1 {
		t.Fatalf("Size: got %d, want 1", s.Size())
	}
	got, err := s.At(0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if got.Title != "Buy milk" {
		t.Errorf("Title: got %q, want %q", got.Title, "Buy milk")
	}
}

func TestRemoveAtShiftsLaterTasks(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		remove int
	}{
		{"first", 4, 0},
		{"middle", 4, 2},
		{"last", 4, 3},
		{"only", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			for i := 0; i < tt.size; i++ {
				s.Append(sampleTask(i))
			}
			before := s.Tasks()

			removed, err := s.RemoveAt(tt.remove)
			if err != nil {
				t.Fatalf("RemoveAt: %v", err)
			}
			if removed.ID != before[tt.remove].ID {
				t.Errorf("removed: got %s, want %s", removed.ID, before[tt.remove].ID)
			}
			if s.Size() != tt.size-1 {
				t.Fatalf("Size: got %d, want %d", s.Size(), tt.size-1)
			}
			for j := 0; j < s.Size(); j++ {
				got, _ := s.At(j)
				want := before[j]
				if j >= tt.remove {
					want = before[j+1]
				}
				if got != want {
					t.Errorf("At(%d): got %+v, want %+v", j, got, want)
				}
			}
		})
	}
}

func TestScenarioRemoveFirstOfTwo(t *testing.T) {
	s := NewStore()
	s.Append(sampleTask(0))
	s.Append(sampleTask(1))
	second, _ := s.At(1)

	if _, err := s.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if s.Size() != 1 {
		t.Fatalf("Size: got %d, want 1", s.Size())
	}
	got, _ := s.At(0)
	if got != second {
		t.Errorf("At(0): got %+v, want %+v", got, second)
	}
}

func TestReplaceFieldsAtTouchesOnlyTarget(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		s.Append(sampleTask(i))
	}
	before := s.Tasks()

	err := s.ReplaceFieldsAt(1, func(t *Task) {
		t.Title = "Renamed"
		t.Description = "new"
		t.ID = "hijack"
	})
	if err != nil {
		t.Fatalf("ReplaceFieldsAt: %v", err)
	}

	after := s.Tasks()
	for i := range after {
		if i == 1 {
			continue
		}
		if after[i] != before[i] {
			t.Errorf("task %d changed: got %+v, want %+v", i, after[i], before[i])
		}
	}
	got := after[1]
	if got.ID != before[1].ID {
		t.Errorf("ID: got %s, want %s", got.ID, before[1].ID)
	}
	if got.Title != "Renamed" || got.Description != "new" {
		t.Errorf("fields: got %q/%q", got.Title, got.Description)
	}
	if got.Day != before[1].Day || got.Date != before[1].Date || got.Month != before[1].Month ||
		got.Year != before[1].Year || got.Time != before[1].Time {
		t.Errorf("schedule fields changed: got %+v, want %+v", got, before[1])
	}
}

func TestOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		index int
	}{
		{"empty store", 0, 0},
		{"index equals size", 2, 2},
		{"index past size", 2, 7},
		{"negative", 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			for i := 0; i < tt.size; i++ {
				s.Append(sampleTask(i))
			}
			before := s.Tasks()

			if _, err := s.RemoveAt(tt.index); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("RemoveAt: got %v, want ErrIndexOutOfRange", err)
			}
			called := false
			if err := s.ReplaceFieldsAt(tt.index, func(*Task) { called = true }); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("ReplaceFieldsAt: got %v, want ErrIndexOutOfRange", err)
			}
			if called {
				t.Error("updater ran for out-of-range index")
			}
			if _, err := s.At(tt.index); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("At: got %v, want ErrIndexOutOfRange", err)
			}

			after := s.Tasks()
			if len(after) != len(before) {
				t.Fatalf("Size changed: got %d, want %d", len(after), len(before))
			}
			for i := range after {
				if after[i] != before[i] {
					t.Errorf("task %d changed", i)
				}
			}
		})
	}
}

func TestIndexErrorMessage(t *testing.T) {
	s := NewStore()
	_, err := s.RemoveAt(3)
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("got %T, want *IndexError", err)
	}
	if ie.Op != "remove" || ie.Index != 3 || ie.Size != 0 {
		t.Errorf("IndexError: got %+v", ie)
	}
	want := "remove: index 3 with size 0: index out of range"
	if err.Error() != want {
		t.Errorf("Error: got %q, want %q", err.Error(), want)
	}
}

func TestIndexOf(t *testing.T) {
	s := NewStore()
	s.Append(sampleTask(0))
	s.Append(sampleTask(1))
	second, _ := s.At(1)

	if got := s.IndexOf(second.ID); got != 1 {
		t.Errorf("IndexOf: got %d, want 1", got)
	}
	if _, err := s.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if got := s.IndexOf(second.ID); got != 0 {
		t.Errorf("IndexOf after removal: got %d, want 0", got)
	}
	if got := s.IndexOf("missing"); got != -1 {
		t.Errorf("IndexOf missing: got %d, want -1", got)
	}
	if got := s.IndexOf(""); got != -1 {
		t.Errorf("IndexOf empty: got %d, want -1", got)
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append(sampleTask(0))
	snap := s.Tasks()
	snap[0].Title = "mutated"
	got, _ := s.At(0)
	if got.Title == "mutated" {
		t.Error("Tasks snapshot aliases store")
	}
	if s.IsEmpty() {
		t.Error("IsEmpty: got true")
	}
}
