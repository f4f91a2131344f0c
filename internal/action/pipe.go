package action

import "fmt"

// Pipe is an ordered queue of actions belonging to one owner.
// Insertion order is execution priority.
type Pipe struct {
	name    string
	owner   any
	actions []*Action
	sched   *Scheduler
	deleted bool

	// scratch holds the per-tick snapshot so ticks do not allocate.
	scratch []*Action
}

// Name returns the pipe's registered name.
func (p *Pipe) Name() string { return p.name }

// Owner returns the value the pipe sequences behaviour for.
func (p *Pipe) Owner() any { return p.owner }

// Deleted reports whether the pipe has been deleted.
func (p *Pipe) Deleted() bool { return p.deleted }

// Len returns the number of queued actions.
func (p *Pipe) Len() int { return len(p.actions) }

// Actions returns a copy of the queued actions in order.
func (p *Pipe) Actions() []*Action {
	out := make([]*Action, len(p.actions))
	copy(out, p.actions)
	return out
}

// Add appends a to the queue and binds it to this pipe. It returns a for chaining.
func (p *Pipe) Add(a *Action) *Action {
	if p.deleted {
		panic(fmt.Sprintf("action: add to deleted pipe %q", p.name))
	}
	if a.pipe != nil {
		panic(fmt.Sprintf("action: action already queued on pipe %q", a.pipe.name))
	}
	if a.state != Pending {
		panic(fmt.Sprintf("action: add of %s action", a.state))
	}
	a.pipe = p
	p.actions = append(p.actions, a)
	return a
}

// Tick runs one frame of the queue.
//
// Entries are walked in order over a snapshot taken at the start of the
// tick. A non-blockable entry always starts (if pending) and updates. A
// blockable entry is skipped, keeping its remaining time, once any earlier
// entry this tick has signalled blocking. Entries removed mid-tick are
// skipped; entries added mid-tick run from the next tick.
func (p *Pipe) Tick(dt float64) {
	if p.deleted || len(p.actions) == 0 {
		return
	}

	snapshot := append(p.scratch[:0], p.actions...)
	blocked := false
	for _, a := range snapshot {
		if p.deleted {
			break
		}
		if a.pipe != p || a.state == Finished {
			continue
		}
		if a.blockable && blocked {
			continue
		}
		if a.state == Pending {
			a.Start()
			if a.pipe != p || a.state != Active {
				continue
			}
		}
		a.Update(dt)
		blocked = blocked || a.blocking
	}

	clear(snapshot)
	p.scratch = snapshot[:0]
}

// Clear drains the queue. With finish set, each head entry is finished in
// order, running its terminal side effects. Otherwise entries are dropped
// silently.
func (p *Pipe) Clear(finish bool) {
	for len(p.actions) > 0 {
		a := p.actions[0]
		if finish && a.state != Finished {
			a.Finish()
			if len(p.actions) > 0 && p.actions[0] == a {
				p.remove(a)
			}
			continue
		}
		p.remove(a)
	}
}

// Draw delegates to the first queued action only.
func (p *Pipe) Draw(c Canvas) {
	if len(p.actions) == 0 {
		return
	}
	p.actions[0].Draw(c)
}

// Delete deregisters the pipe and drops its actions without finishing them.
// Deleting twice is a no-op.
func (p *Pipe) Delete() {
	if p.deleted {
		return
	}
	p.deleted = true
	for _, a := range p.actions {
		a.pipe = nil
	}
	p.actions = nil
	if p.sched != nil {
		p.sched.deregister(p)
	}
}

// remove detaches a from the queue.
func (p *Pipe) remove(a *Action) {
	for i, cur := range p.actions {
		if cur == a {
			copy(p.actions[i:], p.actions[i+1:])
			p.actions[len(p.actions)-1] = nil
			p.actions = p.actions[:len(p.actions)-1]
			break
		}
	}
	if a.pipe == p {
		a.pipe = nil
	}
}
