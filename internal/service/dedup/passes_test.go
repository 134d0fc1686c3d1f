package dedup

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

func task(id string, day, hour int, topic string) *domain.Task {
	start := time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
	t := &domain.Task{
		ID:        id,
		PlanID:    "plan-1",
		Title:     "Task " + id,
		Type:      domain.TaskTypeVideo,
		Status:    domain.TaskStatusPending,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Duration:  60,
		Metadata:  map[string]any{},
	}
	if topic != "" {
		t.TopicID = &topic
	}
	return t
}

func runPasses(tasks []*domain.Task) (*marker, [3]int) {
	cands := newCandidates(tasks, nil, time.UTC)
	m := newMarker()
	counts := [3]int{
		m.passSameSlot(cands),
		m.passCrossDate(cands),
		m.passExcessive(cands),
	}
	return m, counts
}

func markedIDs(m *marker) []string {
	ids := make([]string, 0, len(m.marks))
	for _, mk := range m.marks {
		ids = append(ids, mk.task.ID)
	}
	return ids
}

func TestPasses(t *testing.T) {
	tests := []struct {
		name       string
		tasks      []*domain.Task
		wantCounts [3]int
		wantIDs    []string
	}{
		{
			name: "no duplicates",
			tasks: []*domain.Task{
				task("a", 11, 9, "t1"),
				task("b", 11, 10, "t1"),
				task("c", 12, 9, "t2"),
			},
			wantCounts: [3]int{0, 0, 0},
			wantIDs:    []string{},
		},
		{
			name: "same slot keeps first in snapshot order",
			tasks: []*domain.Task{
				task("first", 11, 9, "t1"),
				task("second", 11, 9, "t1"),
				task("third", 11, 9, "t1"),
			},
			wantCounts: [3]int{2, 0, 0},
			wantIDs:    []string{"second", "third"},
		},
		{
			name: "missing topic groups under empty key",
			tasks: []*domain.Task{
				task("a", 11, 9, ""),
				task("b", 11, 9, ""),
			},
			wantCounts: [3]int{1, 0, 0},
			wantIDs:    []string{"b"},
		},
		{
			name: "same time and topic on later dates",
			tasks: []*domain.Task{
				task("mon", 11, 14, "t1"),
				task("tue", 12, 14, "t1"),
				task("wed", 13, 14, "t1"),
			},
			wantCounts: [3]int{0, 2, 0},
			wantIDs:    []string{"tue", "wed"},
		},
		{
			name: "excessive time of day sorted by date then topic",
			tasks: []*domain.Task{
				task("d", 14, 18, "t4"),
				task("b", 12, 18, "t2"),
				task("a2", 11, 18, "t9"),
				task("a1", 11, 18, "t1"),
				task("c", 13, 18, "t3"),
			},
			wantCounts: [3]int{0, 0, 2},
			wantIDs:    []string{"c", "d"},
		},
		{
			// Pass C reads the original snapshot, so a task already marked by
			// Pass A still occupies one of the kept places.
			name: "later passes see tasks marked earlier",
			tasks: []*domain.Task{
				task("x1", 11, 18, "t1"),
				task("x2", 11, 18, "t1"),
				task("y", 12, 18, "t2"),
				task("z", 13, 18, "t3"),
			},
			wantCounts: [3]int{1, 0, 1},
			wantIDs:    []string{"x2", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, counts := runPasses(tt.tasks)
			if counts != tt.wantCounts {
				t.Errorf("pass counts = %v, want %v", counts, tt.wantCounts)
			}
			got := markedIDs(m)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("marked = %v, want %v", got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Errorf("marked[%d] = %s, want %s", i, got[i], tt.wantIDs[i])
				}
			}
		})
	}
}

func TestNewCandidates_UsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-03-11 20:00 UTC is 2024-03-12 05:00 in Tokyo.
	tk := task("a", 11, 20, "t1")

	c := newCandidates([]*domain.Task{tk}, map[string]*domain.Topic{"t1": {ID: "t1", Name: "Algebra"}}, tokyo)[0]
	if c.date != "2024-03-12" {
		t.Errorf("date = %s, want 2024-03-12", c.date)
	}
	if c.timeOfDay != "05:00" {
		t.Errorf("timeOfDay = %s, want 05:00", c.timeOfDay)
	}
	if c.topicName != "Algebra" {
		t.Errorf("topicName = %s, want Algebra", c.topicName)
	}
}

func TestTimesSummary(t *testing.T) {
	at := func(h, m int) DeletedTask {
		return DeletedTask{StartTime: time.Date(2024, 3, 11, h, m, 0, 0, time.UTC)}
	}
	got := timesSummary([]DeletedTask{at(18, 0), at(9, 30), at(9, 0), at(18, 0), at(10, 0)}, time.UTC)
	want := []TimeCount{{"09:00", 1}, {"09:30", 1}, {"10:00", 1}, {"18:00", 2}}

	if len(got) != len(want) {
		t.Fatalf("timesSummary() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("timesSummary()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
