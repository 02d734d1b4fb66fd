package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	list := tm.Begin("list")
	time.Sleep(time.Millisecond)
	tm.End(list, "3 files")
	scan := tm.Begin("scan")
	tm.End(scan, "")
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %+v", report.Phases)
	}
	if report.Phases[0].Name != "list" || report.Phases[0].Note != "3 files" {
		t.Fatalf("first phase = %+v", report.Phases[0])
	}
	if report.Phases[0].DurationMS <= 0 || report.TotalMS < report.Phases[0].DurationMS {
		t.Fatalf("durations = %+v", report)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:\n", "  list ", "// 3 files", "  total "} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary lacks %q:\n%s", want, summary)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if r := tm.Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("report = %+v", r)
	}
}
