package action

import (
	"errors"
	"fmt"
)

var (
	// ErrPipeNotFound is returned when no live pipe has the requested name.
	ErrPipeNotFound = errors.New("action: pipe not found")
	// ErrDuplicatePipe is returned when a live pipe already uses the name.
	ErrDuplicatePipe = errors.New("action: pipe name already in use")
)

// Scheduler owns the live pipes and ticks each of them once per frame in
// registration order.
type Scheduler struct {
	pipes   []*Pipe
	byName  map[string]*Pipe
	ticking bool
	holes   int
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{byName: make(map[string]*Pipe)}
}

// NewPipe registers a new pipe under a unique name.
func (s *Scheduler) NewPipe(name string, owner any) (*Pipe, error) {
	if _, exists := s.byName[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePipe, name)
	}
	p := &Pipe{name: name, owner: owner, sched: s}
	s.pipes = append(s.pipes, p)
	s.byName[name] = p
	return p, nil
}

// Pipe looks up a live pipe by name.
func (s *Scheduler) Pipe(name string) (*Pipe, error) {
	p, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPipeNotFound, name)
	}
	return p, nil
}

// Len returns the number of live pipes.
func (s *Scheduler) Len() int {
	return len(s.byName)
}

// Pipes returns the live pipes in registration order.
func (s *Scheduler) Pipes() []*Pipe {
	out := make([]*Pipe, 0, len(s.byName))
	for _, p := range s.pipes {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Tick advances every pipe registered at the start of the pass by dt.
//
// Pipes deleted during the pass leave a nil slot that is skipped and
// compacted afterwards, so deletion never shifts a pipe past the cursor.
// Pipes created during the pass run from the next frame.
func (s *Scheduler) Tick(dt float64) {
	s.ticking = true
	n := len(s.pipes)
	for i := 0; i < n && i < len(s.pipes); i++ {
		if p := s.pipes[i]; p != nil {
			p.Tick(dt)
		}
	}
	s.ticking = false
	s.compact()
}

// Clear deletes every live pipe.
func (s *Scheduler) Clear() {
	for _, p := range s.Pipes() {
		p.Delete()
	}
}

func (s *Scheduler) deregister(p *Pipe) {
	if s.byName[p.name] == p {
		delete(s.byName, p.name)
	}
	for i, cur := range s.pipes {
		if cur == p {
			s.pipes[i] = nil
			s.holes++
			break
		}
	}
	if !s.ticking {
		s.compact()
	}
}

func (s *Scheduler) compact() {
	if s.holes == 0 {
		return
	}
	live := s.pipes[:0]
	for _, p := range s.pipes {
		if p != nil {
			live = append(live, p)
		}
	}
	clear(s.pipes[len(live):])
	s.pipes = live
	s.holes = 0
}
