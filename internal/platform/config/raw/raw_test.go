package raw

import "testing"

func TestConf(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	t.Setenv("LOG_CALLER", "YES")
	t.Setenv("LOG_JSON", "off")
	t.Setenv("LOG_SAMPLE_EVERY", "4")
	t.Setenv("LOG_NEG", "-5")

	c := New().Prefix("LOG_")

	cases := []struct {
		name string
		got  any
		want any
	}{
		{"get trims", c.Get("LEVEL", "debug"), "info"},
		{"get default", c.Get("FORMAT", "console"), "console"},
		{"bool yes", c.GetBool("CALLER", false), true},
		{"bool other", c.GetBool("JSON", true), false},
		{"bool default", c.GetBool("MISSING", true), true},
		{"int", c.GetInt("SAMPLE_EVERY", 0), 4},
		{"int negative", c.GetInt("NEG", 3), 3},
		{"int default", c.GetInt("MISSING", 9), 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %v want %v", tc.got, tc.want)
			}
		})
	}
}
