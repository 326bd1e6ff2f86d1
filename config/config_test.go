package config

import "testing"

func TestGetBool(t *testing.T) {
	c := map[string]string{
		"ENABLED":  "true",
		"DISABLED": "false",
		"SHOUTING": "TRUE",
		"GARBAGE":  "not-a-bool",
	}
	cases := []struct {
		key          string
		defaultValue bool
		want         bool
	}{
		{"ENABLED", false, true},
		{"DISABLED", true, false},
		{"SHOUTING", false, true},
		{"GARBAGE", true, true},
		{"MISSING", false, false},
		{"MISSING", true, true},
	}
	for _, tc := range cases {
		if got := GetBool(c, tc.key, tc.defaultValue); got != tc.want {
			t.Errorf("GetBool(%q, %v) = %v, want %v", tc.key, tc.defaultValue, got, tc.want)
		}
	}
	if !GetBool(nil, "ANY", true) {
		t.Error("GetBool(nil, ...) should return the default")
	}
}
