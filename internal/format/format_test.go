package format

import "testing"

func TestRUT(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123456785", "12.345.678-5"},
		{"12.345.678-5", "12.345.678-5"},
		{"76123456k", "76.123.456-K"},
		{" 7.654.321-k ", "7.654.321-K"},
		{"11111", "1.111-1"},
		{"1", "1"},
		{"", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RUT(tt.in); got != tt.want {
				t.Errorf("RUT(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCLP(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1.000"},
		{297500, "$297.500"},
		{1250000, "$1.250.000"},
		{-5000, "-$5.000"},
	}
	for _, tt := range tests {
		if got := CLP(tt.in); got != tt.want {
			t.Errorf("CLP(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
