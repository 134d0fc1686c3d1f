package dedup

import (
	"sort"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// candidate is a snapshot task with its grouping keys resolved.
type candidate struct {
	task      *domain.Task
	date      string
	timeOfDay string
	topicID   string
	topicName string
}

type mark struct {
	candidate
	pass Pass
}

func newCandidates(tasks []*domain.Task, topics map[string]*domain.Topic, loc *time.Location) []candidate {
	out := make([]candidate, 0, len(tasks))
	for _, t := range tasks {
		start := t.StartTime.In(loc)
		c := candidate{
			task:      t,
			date:      start.Format(dateLayout),
			timeOfDay: start.Format(timeLayout),
			topicID:   t.TopicKey(),
		}
		if topic, ok := topics[c.topicID]; ok {
			c.topicName = topic.Name
		}
		out = append(out, c)
	}
	return out
}

// orderedGroups groups candidates by key, preserving first-seen key order and
// snapshot order within each group.
type orderedGroups struct {
	keys   []string
	groups map[string][]candidate
}

func groupBy(cands []candidate, key func(candidate) string) orderedGroups {
	g := orderedGroups{groups: make(map[string][]candidate)}
	for _, c := range cands {
		k := key(c)
		if _, ok := g.groups[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.groups[k] = append(g.groups[k], c)
	}
	return g
}

func compositeKey(parts ...string) string {
	return strings.Join(parts, "|")
}

// marker accumulates duplicates across passes. A task is marked at most once.
type marker struct {
	processed map[string]struct{}
	marks     []mark
}

func newMarker() *marker {
	return &marker{processed: make(map[string]struct{})}
}

func (m *marker) mark(c candidate, pass Pass) bool {
	if _, done := m.processed[c.task.ID]; done {
		return false
	}
	m.processed[c.task.ID] = struct{}{}
	m.marks = append(m.marks, mark{candidate: c, pass: pass})
	return true
}

// passSameSlot keeps the first task of every (date, time, topic) group.
func (m *marker) passSameSlot(cands []candidate) int {
	n := 0
	g := groupBy(cands, func(c candidate) string { return compositeKey(c.date, c.timeOfDay, c.topicID) })
	for _, k := range g.keys {
		group := g.groups[k]
		for _, c := range group[1:] {
			if m.mark(c, PassSameSlot) {
				n++
			}
		}
	}
	return n
}

// passCrossDate groups by (time, topic) regardless of date. Within a group the
// first date seen is authoritative: its first task survives, its other tasks
// are duplicates and every task on a later date is a drifted copy.
func (m *marker) passCrossDate(cands []candidate) int {
	n := 0
	g := groupBy(cands, func(c candidate) string { return compositeKey(c.timeOfDay, c.topicID) })
	for _, k := range g.keys {
		group := g.groups[k]
		if len(group) < 2 {
			continue
		}
		byDate := groupBy(group, func(c candidate) string { return c.date })
		for i, date := range byDate.keys {
			sub := byDate.groups[date]
			if i == 0 {
				sub = sub[1:]
			}
			for _, c := range sub {
				if m.mark(c, PassCrossDate) {
					n++
				}
			}
		}
	}
	return n
}

// passExcessive caps each time of day at maxPerTimeOfDay tasks, keeping the
// earliest dates and breaking ties by topic id.
func (m *marker) passExcessive(cands []candidate) int {
	n := 0
	g := groupBy(cands, func(c candidate) string { return c.timeOfDay })
	for _, k := range g.keys {
		group := g.groups[k]
		if len(group) <= maxPerTimeOfDay {
			continue
		}
		sorted := make([]candidate, len(group))
		copy(sorted, group)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].date != sorted[j].date {
				return sorted[i].date < sorted[j].date
			}
			return sorted[i].topicID < sorted[j].topicID
		})
		for _, c := range sorted[maxPerTimeOfDay:] {
			if m.mark(c, PassExcessive) {
				n++
			}
		}
	}
	return n
}

func timesSummary(deleted []DeletedTask, loc *time.Location) []TimeCount {
	counts := make(map[string]int)
	for _, d := range deleted {
		counts[d.StartTime.In(loc).Format(timeLayout)]++
	}
	out := make([]TimeCount, 0, len(counts))
	for t, c := range counts {
		out = append(out, TimeCount{Time: t, Count: c})
	}
	// Zero-padded HH:MM sorts by hour then minute.
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}
