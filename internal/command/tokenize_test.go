package command

import "testing"

func TestTokenizeSplitsOnSpacesAndCommas(t *testing.T) {
	got := Tokenize("rx=45 x=0, z=2")
	want := []Token{{Key: "rx", Value: "45"}, {Key: "x", Value: "0"}, {Key: "z", Value: "2"}}
	if len(got) != len(want) {
		t.Fatalf("token count %d want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestTokenizeDropsFragmentsWithoutEquals(t *testing.T) {
	got := Tokenize("hello x=1 world,  ,y=2")
	if len(got) != 2 || got[0].Key != "x" || got[1].Key != "y" {
		t.Fatalf("unexpected tokens: %+v", got)
	}
}

func TestTokenizeSplitsOnFirstEqualsOnly(t *testing.T) {
	got := Tokenize("a=b=c")
	if len(got) != 1 || got[0].Key != "a" || got[0].Value != "b=c" {
		t.Fatalf("unexpected tokens: %+v", got)
	}
}

func TestTokenizeLowercasesKeysNotValues(t *testing.T) {
	got := Tokenize("SPACE=Global")
	if len(got) != 1 || got[0].Key != "space" || got[0].Value != "Global" {
		t.Fatalf("unexpected tokens: %+v", got)
	}
}
