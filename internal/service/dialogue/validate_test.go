package dialogue

import "testing"

func TestValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"15/03/2020", true},
		{"01/01/2000", true},
		{"29/02/2020", true},
		{"31/12/1999", true},
		{" 15/03/2020 ", true},
		{"31/02/2020", false},
		{"00/01/2020", false},
		{"29/02/2021", false},
		{"32/01/2020", false},
		{"15/13/2020", false},
		{"2020/03/15", false},
		{"15-03-2020", false},
		{"15/03", false},
		{"abc/de/fghi", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidDate(tc.input); got != tc.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseAge(t *testing.T) {
	if _, retry := parseAge("17"); retry != "" {
		t.Fatalf("expected 17 to pass, got retry %q", retry)
	}
	if _, retry := parseAge("16"); retry != "" {
		t.Fatalf("expected 16 to pass, got retry %q", retry)
	}
	if _, retry := parseAge("15"); retry == "" {
		t.Fatal("expected 15 to be rejected")
	}
	if _, retry := parseAge("seventeen"); retry == "" {
		t.Fatal("expected non-numeric age to be rejected")
	}
}

func TestNormalizeSex(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"male", "Male"},
		{"Boy", "Male"},
		{"M", "Male"},
		{"ወንድ", "Male"},
		{"female", "Female"},
		{"GIRL", "Female"},
		{"f", "Female"},
		{"ሴት", "Female"},
		{"other", "other"},
	}

	for _, tc := range cases {
		if got := normalizeSex(tc.input); got != tc.want {
			t.Errorf("normalizeSex(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
