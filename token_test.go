package mython

import "testing"

func Test_Token_Equal_SameKindSameValue(t *testing.T) {
	cases := []struct {
		name string
		a, b Token
		want bool
	}{
		{"numbers equal", numberToken(5, 1, 1), numberToken(5, 2, 2), true},
		{"numbers differ", numberToken(5, 1, 1), numberToken(6, 1, 1), false},
		{"ids equal", idToken("x", 1, 1), idToken("x", 9, 9), true},
		{"ids differ", idToken("x", 1, 1), idToken("y", 1, 1), false},
		{"strings equal", strToken("hi", 1, 1), strToken("hi", 1, 1), true},
		{"chars equal", charToken('+', 1, 1), charToken('+', 5, 5), true},
		{"chars differ", charToken('+', 1, 1), charToken('-', 1, 1), false},
		{"nullary equal ignores position", kindToken(NEWLINE, 1, 1), kindToken(NEWLINE, 9, 9), true},
		{"different kinds never equal", numberToken(0, 1, 1), kindToken(NONE, 1, 1), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Equal(c.b); got != c.want {
				t.Fatalf("Equal() = %v, want %v", got, c.want)
			}
		})
	}
}

func Test_Token_String(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{numberToken(42, 1, 1), "Number{42}"},
		{idToken("foo", 1, 1), "Id{foo}"},
		{strToken("hi", 1, 1), "String{hi}"},
		{charToken('+', 1, 1), "Char{+}"},
		{kindToken(EOF, 1, 1), "Eof"},
		{kindToken(RETURN, 1, 1), "Return"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
