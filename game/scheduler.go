package game

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs fn once after delay. The controller uses it to let the UI
// repaint before the computer starts searching.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// TimerScheduler runs tasks on their own goroutine via time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

type tickTask struct {
	due time.Duration
	seq int
	fn  func()
}

// TickScheduler runs tasks from the caller's loop. Tick advances its clock
// and runs whatever became due on the calling goroutine, so a frame-driven UI
// never touches the game from another goroutine.
type TickScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []tickTask
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

func (s *TickScheduler) Schedule(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.tasks = append(s.tasks, tickTask{due: s.now + delay, seq: s.seq, fn: fn})
}

// Tick advances the clock by dt and runs due tasks in due order. While a
// task runs the clock reads its due time, so tasks it schedules are timed
// from that point and may also run within this Tick.
func (s *TickScheduler) Tick(dt time.Duration) {
	s.mu.Lock()
	target := s.now + dt
	s.mu.Unlock()

	for {
		task, ok := s.popDue(target)
		if !ok {
			break
		}
		task.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

func (s *TickScheduler) popDue(target time.Duration) (tickTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tasks) == 0 {
		return tickTask{}, false
	}
	sort.Slice(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
	task := s.tasks[0]
	if task.due > target {
		return tickTask{}, false
	}
	s.tasks = s.tasks[1:]
	if task.due > s.now {
		s.now = task.due
	}
	return task, true
}

// Pending returns the number of tasks not yet run.
func (s *TickScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
