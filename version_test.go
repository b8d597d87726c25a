package bracebidi

import "testing"

func TestVersion_EmbeddedIsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionTag(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{in: "0.1.0", want: true},
		{in: " 1.0.0\n", want: true},
		{in: "1.2.3-rc.1+build.5", want: true},
		{in: "v0.1.0", want: false},
		{in: "0.1", want: false},
		{in: "1.02.3", want: false},
	}
	for _, tc := range cases {
		if got := IsSemver(tc.in); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
