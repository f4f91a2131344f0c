package action

import (
	"math"
	"testing"

	"github.com/vovakirdan/bacon-invasion/internal/core"
)

// counter records lifecycle hook calls.
type counter struct {
	starts, updates, finishes int
}

func (c *counter) OnStart(*Action)           { c.starts++ }
func (c *counter) OnUpdate(*Action, float64) { c.updates++ }
func (c *counter) OnFinish(*Action)          { c.finishes++ }

func newTestPipe(t *testing.T) *Pipe {
	t.Helper()
	p, err := NewScheduler().NewPipe("test", nil)
	if err != nil {
		t.Fatalf("NewPipe() failed: %v", err)
	}
	return p
}

func TestProgressMonotonic(t *testing.T) {
	hooks := &counter{}
	p := newTestPipe(t)
	a := p.Add(New(1, hooks))

	last := -1.0
	for i := 0; i < 20 && a.State() != Finished; i++ {
		p.Tick(0.07)
		if a.Progress() < last {
			t.Fatalf("progress decreased: %v after %v", a.Progress(), last)
		}
		last = a.Progress()
	}

	if a.State() != Finished {
		t.Fatalf("State() = %v, expected finished", a.State())
	}
	if a.Progress() != 1 {
		t.Errorf("Progress() = %v, expected 1", a.Progress())
	}
	if hooks.starts != 1 || hooks.finishes != 1 {
		t.Errorf("starts=%d finishes=%d, expected 1 and 1", hooks.starts, hooks.finishes)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, expected finished action removed", p.Len())
	}
}

func TestProgressValues(t *testing.T) {
	p := newTestPipe(t)
	a := p.Add(New(2, nil))

	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"quarter", 0.5, 0.25},
		{"half", 0.5, 0.5},
		{"overshoot clamps to one", 5, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p.Tick(tc.dt)
			if math.Abs(a.Progress()-tc.expected) > 1e-12 {
				t.Errorf("Progress() = %v, expected %v", a.Progress(), tc.expected)
			}
		})
	}
}

func TestZeroDurationFinishesOnFirstUpdate(t *testing.T) {
	hooks := &counter{}
	p := newTestPipe(t)
	a := p.Add(New(0, hooks))

	p.Tick(0)

	if a.State() != Finished {
		t.Fatalf("State() = %v, expected finished", a.State())
	}
	if a.Progress() != 1 {
		t.Errorf("Progress() = %v, expected 1", a.Progress())
	}
	if hooks.starts != 1 || hooks.finishes != 1 {
		t.Errorf("starts=%d finishes=%d, expected one start/finish pair", hooks.starts, hooks.finishes)
	}
	if hooks.updates != 0 {
		t.Errorf("updates = %d, expected zero-duration action to skip update hook", hooks.updates)
	}
}

func TestFloatDriftStillFinishes(t *testing.T) {
	p := newTestPipe(t)
	a := p.Add(New(3.2, nil))

	for i := 0; i < 31; i++ {
		p.Tick(0.1)
	}
	if a.State() == Finished {
		t.Fatal("action finished early")
	}
	p.Tick(0.1)
	if a.State() != Finished {
		t.Errorf("State() = %v after 32 ticks of 0.1, expected finished", a.State())
	}
}

func TestNegativeDurationIsInstant(t *testing.T) {
	a := New(-3, nil)
	if a.Duration() != 0 {
		t.Errorf("Duration() = %v, expected 0", a.Duration())
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestContractViolations(t *testing.T) {
	t.Run("update before start", func(t *testing.T) {
		a := New(1, nil)
		expectPanic(t, "Update()", func() { a.Update(0.1) })
	})

	t.Run("double finish", func(t *testing.T) {
		a := New(1, nil)
		a.Start()
		a.Finish()
		expectPanic(t, "Finish()", func() { a.Finish() })
	})

	t.Run("double start", func(t *testing.T) {
		a := New(1, nil)
		a.Start()
		expectPanic(t, "Start()", func() { a.Start() })
	})

	t.Run("queue on two pipes", func(t *testing.T) {
		s := NewScheduler()
		p1, _ := s.NewPipe("one", nil)
		p2, _ := s.NewPipe("two", nil)
		a := p1.Add(New(1, nil))
		expectPanic(t, "Add()", func() { p2.Add(a) })
	})

	t.Run("add to deleted pipe", func(t *testing.T) {
		p := newTestPipe(t)
		p.Delete()
		expectPanic(t, "Add()", func() { p.Add(New(1, nil)) })
	})
}

func TestCallTiming(t *testing.T) {
	tests := []struct {
		name          string
		when          CallTime
		firstTick     int
		expectedAfter int
	}{
		{"at start fires on first tick", CallAtStart, 1, 1},
		{"at end fires after delay", CallAtEnd, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fired := 0
			p := newTestPipe(t)
			p.Add(New(0.5, &Call{Fn: func() { fired++ }, When: tc.when}))

			p.Tick(0.25)
			if fired != tc.firstTick {
				t.Errorf("after first tick fired = %d, expected %d", fired, tc.firstTick)
			}
			p.Tick(0.25)
			p.Tick(0.25)
			if fired != tc.expectedAfter {
				t.Errorf("after duration fired = %d, expected %d", fired, tc.expectedAfter)
			}
		})
	}
}

type recordingCanvas struct {
	overlays []float64
	texts    []string
	alphas   []float64
}

func (c *recordingCanvas) Overlay(_ core.Color, alpha float64) {
	c.overlays = append(c.overlays, alpha)
}

func (c *recordingCanvas) Text(text string, _ core.Vec, _ core.Color, alpha float64) {
	c.texts = append(c.texts, text)
	c.alphas = append(c.alphas, alpha)
}

func TestOverlayAndTextAlpha(t *testing.T) {
	p := newTestPipe(t)
	fadeIn := p.Add(New(1, &Overlay{Color: core.ColorBlack, Fade: FadeIn, MaxAlpha: 1}))
	canvas := &recordingCanvas{}

	p.Tick(0.5)
	p.Draw(canvas)
	if len(canvas.overlays) != 1 || math.Abs(canvas.overlays[0]-0.5) > 1e-12 {
		t.Fatalf("overlay alphas = %v, expected [0.5]", canvas.overlays)
	}
	if fadeIn.State() != Active {
		t.Errorf("State() = %v, expected active", fadeIn.State())
	}

	out := &Overlay{Fade: FadeOut, MaxAlpha: 0.8}
	pending := New(1, out)
	if got := out.Alpha(pending); got != 0.8 {
		t.Errorf("pending fade-out Alpha() = %v, expected 0.8", got)
	}

	q := newTestPipe(t)
	q.Add(New(2, &Text{Text: "Cryo Bay"}))
	q.Tick(1)
	canvas = &recordingCanvas{}
	q.Draw(canvas)
	if len(canvas.texts) != 1 || canvas.texts[0] != "Cryo Bay" {
		t.Fatalf("texts = %v, expected [Cryo Bay]", canvas.texts)
	}
	if math.Abs(canvas.alphas[0]-0.5) > 1e-12 {
		t.Errorf("text alpha = %v, expected 0.5", canvas.alphas[0])
	}
}
