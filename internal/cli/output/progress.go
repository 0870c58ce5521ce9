package output

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// Progress is an observational progress tracker for long-running steps.
// It renders only in text mode; in every other mode all methods are no-ops
// so machine-readable output stays clean.
type Progress struct {
	pw      progress.Writer
	tracker *progress.Tracker
}

// NewProgress starts a progress tracker. total <= 0 renders an
// indeterminate tracker. bytes switches the unit display to bytes.
func (r *Renderer) NewProgress(message string, total int64, bytes bool) *Progress {
	if r.EffectiveMode() != ModeText {
		return &Progress{}
	}

	units := progress.UnitsDefault
	if bytes {
		units = progress.UnitsBytes
	}
	if total < 0 {
		total = 0
	}

	pw := progress.NewWriter()
	pw.SetOutputWriter(r.errOut)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(25)
	pw.SetUpdateFrequency(100 * time.Millisecond)

	tracker := &progress.Tracker{Message: message, Total: total, Units: units}
	pw.AppendTracker(tracker)
	go pw.Render()

	return &Progress{pw: pw, tracker: tracker}
}

// Increment advances the tracker by n.
func (p *Progress) Increment(n int64) {
	if p.tracker != nil {
		p.tracker.Increment(n)
	}
}

// SetValue sets the tracker's absolute value.
func (p *Progress) SetValue(v int64) {
	if p.tracker != nil {
		p.tracker.SetValue(v)
	}
}

// Done marks the tracker finished and stops rendering.
func (p *Progress) Done() {
	if p.tracker == nil {
		return
	}
	p.tracker.MarkAsDone()
	p.pw.Stop()
	for p.pw.IsRenderInProgress() {
		time.Sleep(5 * time.Millisecond)
	}
}
