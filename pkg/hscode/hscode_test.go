package hscode

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pads short code", "90111", "090111"},
		{"pads very short code", "7", "000007"},
		{"leaves 6-digit code alone", "520811", "520811"},
		{"passes through long input unpadded", "0901110", "0901110"},
		{"pads empty string to zeros", "", "000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid 6 digits", "090111", true},
		{"valid with surrounding whitespace", "  090111 ", true},
		{"too short", "9011", false},
		{"too long", "0901112", false},
		{"letters", "09A111", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.in); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Every valid code, once formatted, must validate.
func TestFormatThenValidate(t *testing.T) {
	for _, code := range []string{"90111", "7", "090111", "180100", "520811"} {
		if !Validate(Format(code)) {
			t.Errorf("Validate(Format(%q)) = false, want true", code)
		}
	}
}

func TestIsPhyto(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"090111", true},
		{"180100", true},
		{"100510", false}, // cereals are agricultural for the rule engine, not for this predicate
		{"520811", false},
	}

	for _, tt := range tests {
		if got := IsPhyto(tt.code); got != tt.want {
			t.Errorf("IsPhyto(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestAbbr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"090111", "09.01.11"},
		{"520811", "52.08.11"},
		{"9011", "9011"},       // not 6 digits, unchanged
		{"09A111", "09A111"},   // not digits, unchanged
		{"0901110", "0901110"}, // too long, unchanged
	}

	for _, tt := range tests {
		if got := Abbr(tt.in); got != tt.want {
			t.Errorf("Abbr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
