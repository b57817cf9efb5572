package probe

import "testing"

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"pylint 3.1.0", "3.1.0"},
		{"black, 24.4.2 (compiled: yes)", "24.4.2"},
		{"v1.2.3", "1.2.3"},
		{"flake8 7.0.0 (mccabe: 0.7.0) CPython 3.12.1 on Linux", "7.0.0"},
		{"no version here", ""},
		{"banner line\ntool version 0.10.1", "0.10.1"},
		{"2.0.0-rc.1", "2.0.0-rc.1"},
	}
	for _, c := range cases {
		if got := ParseVersion(c.in); got != c.want {
			t.Fatalf("ParseVersion(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
