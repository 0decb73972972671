// Package clock содержит коллаборатор таймеров: одноразовые отложенные вызовы
// и периодические вызовы, которые исполняются на границе кадра.
package clock

import (
	"container/heap"
	"time"
)

// Scheduler хранит игровое время сессии и очередь отложенных вызовов.
// Все колбэки вызываются синхронно внутри Advance, в порядке срока,
// при равных сроках — в порядке регистрации.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

type task struct {
	due    time.Duration
	period time.Duration // 0 — одноразовый вызов
	seq    uint64
	fn     func()
}

// NewScheduler создаёт планировщик с нулевым временем.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now возвращает накопленное игровое время.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending возвращает число ожидающих вызовов.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After вызывает fn один раз через d.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.push(&task{due: s.now + d, fn: fn})
}

// Every вызывает fn каждые p, начиная отсчёт с текущего момента.
// Первый вызов происходит через p. Отмена не поддерживается.
func (s *Scheduler) Every(p time.Duration, fn func()) {
	if p <= 0 {
		panic("clock: non-positive period")
	}
	s.push(&task{due: s.now + p, period: p, fn: fn})
}

// Advance сдвигает время на dt и исполняет все созревшие вызовы.
// Возвращает количество исполненных колбэков.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now + dt
	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*task)
		s.now = t.due
		if t.period > 0 {
			t.due += t.period
			heap.Push(&s.queue, t)
		}
		t.fn()
		fired++
	}
	s.now = target
	return fired
}

func (s *Scheduler) push(t *task) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
