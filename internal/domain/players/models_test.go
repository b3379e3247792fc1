package players

import "testing"

func TestFullName(t *testing.T) {
	cases := []struct {
		p    Player
		want string
	}{
		{Player{FirstName: "Stephen", LastName: "Curry"}, "Stephen Curry"},
		{Player{FirstName: "Nene"}, "Nene"},
		{Player{}, ""},
	}
	for _, tc := range cases {
		if got := tc.p.FullName(); got != tc.want {
			t.Fatalf("FullName() = %q, want %q", got, tc.want)
		}
	}
}
