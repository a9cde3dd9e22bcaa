package version

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Semver
		ok   bool
	}{
		{"1.2.3", Semver{1, 2, 3}, true},
		{"v0.4.12", Semver{0, 4, 12}, true},
		{"1.2", Semver{}, false},
		{"a.b.c", Semver{}, false},
		{"", Semver{}, false},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("Parse(%q): unexpected error state %v", tc.in, err)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLessThan(t *testing.T) {
	if !(Semver{1, 2, 3}).LessThan(Semver{1, 2, 4}) {
		t.Fatal("expected patch comparison")
	}
	if !(Semver{1, 2, 3}).LessThan(Semver{1, 3, 0}) {
		t.Fatal("expected minor comparison")
	}
	if (Semver{2, 0, 0}).LessThan(Semver{1, 9, 9}) {
		t.Fatal("expected major comparison to dominate")
	}
}

func TestCompatible(t *testing.T) {
	if !Compatible("1.2.3", "1.9.0") {
		t.Fatal("expected same major to be compatible")
	}
	if Compatible("1.2.3", "2.0.0") {
		t.Fatal("expected major mismatch to be incompatible")
	}
	if !Compatible("dev", "9.9.9") {
		t.Fatal("expected dev builds always compatible")
	}
	if !Compatible("1.2.3", "") {
		t.Fatal("expected unknown daemon version tolerated")
	}
}
