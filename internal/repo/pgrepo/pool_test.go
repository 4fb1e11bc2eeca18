package pgrepo

import "testing"

func TestMaskPassword(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{in: "", want: "<empty>"},
		{in: "postgres://user:secret@db:5432/app", want: "postgres://user:***@db:5432/app"},
		{in: "postgres://db:5432/app", want: "postgres://db:5432/app"},
	}
	for _, tc := range cases {
		if got := maskPassword(tc.in); got != tc.want {
			t.Fatalf("maskPassword(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}
