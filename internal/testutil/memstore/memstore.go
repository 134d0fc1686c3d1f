// Package memstore holds in-memory repositories for service tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

var (
	_ domain.TaskRepository  = (*TaskStore)(nil)
	_ domain.AlertRepository = (*AlertStore)(nil)
	_ domain.UserReader      = (*Directory)(nil)
	_ domain.StudyPlanReader = (*Directory)(nil)
)

// TaskStore keeps tasks in insertion order and hands out clones.
type TaskStore struct {
	mu      sync.Mutex
	tasks   []*domain.Task
	Updates int
	Deletes []string
}

func NewTaskStore(tasks ...*domain.Task) *TaskStore {
	s := &TaskStore{}
	for _, t := range tasks {
		s.tasks = append(s.tasks, t.Clone())
	}
	return s
}

func (s *TaskStore) FindMissed(_ context.Context, planID string, now time.Time) ([]*domain.Task, error) {
	out := s.filter(func(t *domain.Task) bool {
		return t.PlanID == planID && t.Status.IsPending() && t.EndTime.Before(now)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndTime.Before(out[j].EndTime) })
	return out, nil
}

func (s *TaskStore) FindFrom(_ context.Context, planID string, from time.Time) ([]*domain.Task, error) {
	out := s.filter(func(t *domain.Task) bool {
		return t.PlanID == planID && !t.StartTime.Before(from)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (s *TaskStore) FindInRange(_ context.Context, planID string, start, end time.Time) ([]*domain.Task, error) {
	out := s.filter(func(t *domain.Task) bool {
		return t.PlanID == planID && t.StartTime.Before(end) && t.EndTime.After(start)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (s *TaskStore) FindPending(_ context.Context, planID string) ([]*domain.Task, error) {
	return s.filter(func(t *domain.Task) bool {
		return t.PlanID == planID && t.Status.IsPending()
	}), nil
}

func (s *TaskStore) UpdateSchedule(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == task.ID {
			s.tasks[i] = task.Clone()
			s.Updates++
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

func (s *TaskStore) Create(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task.Clone())
	return nil
}

func (s *TaskStore) Delete(_ context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.Deletes = append(s.Deletes, taskID)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// All returns clones of every stored task in insertion order.
func (s *TaskStore) All() []*domain.Task {
	return s.filter(func(*domain.Task) bool { return true })
}

func (s *TaskStore) Get(id string) *domain.Task {
	for _, t := range s.All() {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *TaskStore) filter(keep func(*domain.Task) bool) []*domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

type AlertStore struct {
	mu     sync.Mutex
	alerts []*domain.Alert
}

func NewAlertStore(alerts ...*domain.Alert) *AlertStore {
	s := &AlertStore{}
	for _, a := range alerts {
		c := *a
		s.alerts = append(s.alerts, &c)
	}
	return s
}

func (s *AlertStore) Create(_ context.Context, alert *domain.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *alert
	s.alerts = append(s.alerts, &c)
	return nil
}

func (s *AlertStore) FindByScheduledTask(_ context.Context, taskID string) ([]*domain.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Alert
	for _, a := range s.alerts {
		if a.ScheduledTaskID() == taskID {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *AlertStore) Save(_ context.Context, alert *domain.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.alerts {
		if a.ID == alert.ID {
			c := *alert
			s.alerts[i] = &c
			return nil
		}
	}
	return domain.ErrAlertNotFound
}

func (s *AlertStore) All() []*domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		c := *a
		out = append(out, &c)
	}
	return out
}

// Directory serves users, plans and topics.
type Directory struct {
	Users  map[string]*domain.User
	Plans  map[string]*domain.StudyPlan
	Topics map[string]*domain.Topic
}

func NewDirectory() *Directory {
	return &Directory{
		Users:  make(map[string]*domain.User),
		Plans:  make(map[string]*domain.StudyPlan),
		Topics: make(map[string]*domain.Topic),
	}
}

func (d *Directory) AddUser(u *domain.User, plan *domain.StudyPlan) {
	d.Users[u.ID] = u
	if plan != nil {
		d.Plans[u.ID] = plan
	}
}

func (d *Directory) AddTopic(id, name string) {
	d.Topics[id] = &domain.Topic{ID: id, Name: name}
}

func (d *Directory) FindByID(_ context.Context, userID string) (*domain.User, error) {
	u, ok := d.Users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (d *Directory) FindByUser(_ context.Context, userID string) (*domain.StudyPlan, error) {
	p, ok := d.Plans[userID]
	if !ok {
		return nil, domain.ErrPlanNotFound
	}
	return p, nil
}

// TopicReader exposes the topic lookups under their interface method names.
func (d *Directory) TopicReader() domain.TopicReader {
	return topicReader{d}
}

type topicReader struct{ d *Directory }

func (r topicReader) FindByID(_ context.Context, topicID string) (*domain.Topic, error) {
	t, ok := r.d.Topics[topicID]
	if !ok {
		return nil, domain.ErrTopicNotFound
	}
	return t, nil
}

func (r topicReader) FindByIDs(_ context.Context, topicIDs []string) (map[string]*domain.Topic, error) {
	out := make(map[string]*domain.Topic, len(topicIDs))
	for _, id := range topicIDs {
		if t, ok := r.d.Topics[id]; ok {
			out[id] = t
		}
	}
	return out, nil
}
