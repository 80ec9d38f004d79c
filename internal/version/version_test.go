package version

import "testing"

func TestString(t *testing.T) {
	if got := String(); got != "v"+Version {
		t.Errorf("String() = %q", got)
	}

	GitCommit, BuildTime = "abc123", "2026-01-02T03:04:05Z"
	defer func() { GitCommit, BuildTime = "unknown", "unknown" }()
	if got, want := String(), "v"+Version+" (abc123, built 2026-01-02T03:04:05Z)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
