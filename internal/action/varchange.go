package action

import "github.com/vovakirdan/bacon-invasion/internal/core"

// Var is a numeric property an action can read and write.
type Var interface {
	Get() float64
	Set(v float64)
}

type floatVar struct{ p *float64 }

func (v floatVar) Get() float64  { return *v.p }
func (v floatVar) Set(x float64) { *v.p = x }

// FloatVar adapts a float64 field into a Var.
func FloatVar(p *float64) Var {
	return floatVar{p: p}
}

type funcVar struct {
	get func() float64
	set func(float64)
}

func (v funcVar) Get() float64  { return v.get() }
func (v funcVar) Set(x float64) { v.set(x) }

// FuncVar builds a Var from accessor functions.
func FuncVar(get func() float64, set func(float64)) Var {
	return funcVar{get: get, set: set}
}

// Apply selects when a VarChange writes its target.
type Apply int

const (
	Continuous Apply = iota // every tick over the duration
	AtStart                 // once, when the action starts
	AtEnd                   // once, when the action finishes
)

// Limit returns a pointer to v for VarChange bounds.
func Limit(v float64) *float64 {
	return &v
}

// VarChange moves a Var towards Target.
//
// By default the value is interpolated from the start value to Target using
// the action's progress. With Accumulate set the change is applied as a delta
// of Target minus the start value, so concurrent writers are preserved.
// With Relative set Target is an offset from the start value.
type VarChange struct {
	Var        Var
	Target     float64
	Apply      Apply
	Accumulate bool
	Relative   bool
	Revert     bool
	Min        *float64
	Max        *float64

	start   float64
	target  float64
	rate    float64
	started bool
}

// StartValue returns the value captured when the action started.
func (vc *VarChange) StartValue() float64 { return vc.start }

func (vc *VarChange) OnStart(a *Action) {
	vc.capture()
	vc.started = true
	if a.Duration() > 0 {
		vc.rate = (vc.target - vc.start) / a.Duration()
	}
	if vc.Apply == AtStart {
		vc.set(vc.target)
	}
}

func (vc *VarChange) capture() {
	vc.start = vc.Var.Get()
	vc.target = vc.Target
	if vc.Relative {
		vc.target += vc.start
	}
}

func (vc *VarChange) OnUpdate(a *Action, dt float64) {
	if vc.Apply != Continuous {
		return
	}
	if vc.Accumulate {
		vc.set(vc.Var.Get() + vc.rate*dt)
		return
	}
	vc.set(core.Lerp(vc.start, vc.target, a.Progress()))
}

func (vc *VarChange) OnFinish(a *Action) {
	if !vc.started {
		vc.capture()
	}
	delta := vc.target - vc.start
	switch {
	case vc.Apply == AtEnd && vc.Accumulate:
		vc.set(vc.Var.Get() + delta)
	case vc.Apply == AtEnd:
		vc.set(vc.target)
	case vc.Apply == Continuous && vc.Accumulate && a.Duration() == 0:
		vc.set(vc.Var.Get() + delta)
	case vc.Apply == Continuous && !vc.Accumulate:
		vc.set(vc.target)
	}

	if vc.Revert {
		vc.set(vc.start)
	}
}

func (vc *VarChange) set(v float64) {
	if vc.Min != nil && v < *vc.Min {
		v = *vc.Min
	}
	if vc.Max != nil && v > *vc.Max {
		v = *vc.Max
	}
	vc.Var.Set(v)
}
