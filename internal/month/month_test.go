package month

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "single digit is padded", token: "1", want: "01"},
		{name: "single digit nine", token: "9", want: "09"},
		{name: "two digits unchanged", token: "12", want: "12"},
		{name: "zero padded unchanged", token: "05", want: "05"},
		{name: "month name", token: "декабрь", want: "12"},
		{name: "short month name", token: "май", want: "05"},
		{name: "march by name", token: "март", want: "03"},
		{name: "out of range number passes through", token: "13", want: "13"},
		{name: "empty token stays empty", token: "", want: ""},
		// Unknown names are not rejected; they fall through and match nothing.
		{name: "unknown name passes through", token: "blah", want: "blah"},
		{name: "lookup is case sensitive", token: "Март", want: "Март"},
		{name: "single letter is padded", token: "x", want: "0x"},
		{name: "single cyrillic letter is padded", token: "я", want: "0я"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.token); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestNormalize_NumberAndNameAgree(t *testing.T) {
	for i, code := range Codes() {
		name, ok := Name(code)
		if !ok {
			t.Fatalf("Name(%q) not found", code)
		}
		if got := Normalize(name); got != code {
			t.Errorf("Normalize(%q) = %q, want %q", name, got, code)
		}
		if i < 9 {
			short := code[1:]
			if got := Normalize(short); got != code {
				t.Errorf("Normalize(%q) = %q, want %q", short, got, code)
			}
		}
	}
}

func TestName(t *testing.T) {
	if got, ok := Name("01"); !ok || got != "январь" {
		t.Errorf("Name(01) = %q, %v, want январь, true", got, ok)
	}
	if _, ok := Name("1"); ok {
		t.Error("Name(1) should require a two-digit code")
	}
	if _, ok := Name("13"); ok {
		t.Error("Name(13) should not be found")
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()
	if len(codes) != 12 {
		t.Fatalf("len(Codes()) = %d, want 12", len(codes))
	}
	if codes[0] != "01" || codes[11] != "12" {
		t.Errorf("Codes() = %v, want 01..12", codes)
	}
}
