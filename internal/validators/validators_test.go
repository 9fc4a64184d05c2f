package validators

import "testing"

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ann@X.com "); got != "ann@x.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	for _, email := range []string{"", "ann", "ann@"} {
		if IsEmailDomainValid(email) {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}

func TestIsDate(t *testing.T) {
	cases := map[string]bool{
		"2025-03-21": true,
		"2025-02-30": false,
		"21/03/2025": false,
		"":           false,
	}
	for in, want := range cases {
		if got := IsDate(in); got != want {
			t.Errorf("IsDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsClock(t *testing.T) {
	cases := map[string]bool{
		"09:30": true,
		"23:59": true,
		"9:30":  false,
		"24:00": false,
		"12:60": false,
	}
	for in, want := range cases {
		if got := IsClock(in); got != want {
			t.Errorf("IsClock(%q) = %v, want %v", in, got, want)
		}
	}
}
