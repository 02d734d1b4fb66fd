package version

import (
	"strings"
	"testing"
)

func withBuild(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestInfo(t *testing.T) {
	tests := []struct {
		commit, date string
		want         string
	}{
		{"", "", "xdoc 1.2.3"},
		{"abc123", "", "xdoc 1.2.3 (abc123)"},
		{"abc123", "2026-01-15", "xdoc 1.2.3 (abc123, 2026-01-15)"},
		{"", "2026-01-15", "xdoc 1.2.3 (2026-01-15)"},
	}
	for _, tt := range tests {
		withBuild(t, "1.2.3", tt.commit, tt.date)
		if got := Info(false); got != tt.want {
			t.Errorf("Info() = %q, want %q", got, tt.want)
		}
	}
}

func TestColored(t *testing.T) {
	withBuild(t, "0.1.0-dev", "", "")
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Fatalf("Colored(true) = %q", got)
	}
	if Colored(false) != "0.1.0-dev" {
		t.Fatalf("Colored(false) = %q", Colored(false))
	}

	withBuild(t, "nightly", "", "")
	if Colored(true) != "nightly" {
		t.Fatal("non-semver versions are printed as is")
	}
}
