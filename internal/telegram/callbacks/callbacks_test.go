package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParse(t *testing.T) {
	cases := []struct {
		data    string
		unique  string
		payload string
	}{
		{"\freg|course:english", "reg", "course:english"},
		{"\\freg|cancel", "reg", "cancel"},
		{"reg|begin", "reg", "begin"},
		{"\freg", "reg", ""},
		{"\freg|edit:name", "reg", "edit:name"},
		{"", "", ""},
	}
	for _, tc := range cases {
		unique, payload := Parse(&tele.Callback{Data: tc.data})
		if unique != tc.unique || payload != tc.payload {
			t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)", tc.data, unique, payload, tc.unique, tc.payload)
		}
	}
}

func TestParseNilCallback(t *testing.T) {
	if unique, payload := Parse(nil); unique != "" || payload != "" {
		t.Errorf("Parse(nil) = (%q, %q), want empty", unique, payload)
	}
}
