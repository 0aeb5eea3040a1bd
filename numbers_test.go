package portfolio

import "testing"

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"100", "100"},
		{"$100.50", "100.5"},
		{`"$1,234.56"`, "1234.56"},
		{"(500.00)", "-500"},
		{`"($1,000.00)"`, "-1000"},
		{"--", "0"},
		{"-", "0"},
		{"", "0"},
		{"+10.00%", "10"},
		{"-0.5", "-0.5"},
	}
	for _, tc := range testCases {
		got, err := ParseNumber(tc.in)
		if err != nil {
			t.Errorf("ParseNumber(%q) failed: %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseNumber(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	for _, in := range []string{"abc", "12x", "1.2.3", "N/A"} {
		if got, err := ParseNumber(in); err == nil {
			t.Errorf("ParseNumber(%q) = %s, want error", in, got)
		}
	}
}

func TestParseOptional(t *testing.T) {
	if got := ParseOptional("garbage"); !got.IsZero() {
		t.Errorf("ParseOptional(garbage) = %s, want 0", got)
	}
	if got := ParseOptional("$4.95"); got.String() != "4.95" {
		t.Errorf("ParseOptional($4.95) = %s, want 4.95", got)
	}
}

func TestNormalizeTicker(t *testing.T) {
	testCases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"AAPL", "AAPL", true},
		{" aapl ", "AAPL", true},
		{`"MSFT"`, "MSFT", true},
		{"BRK / 084670702", "BRK", true},
		{"GOOGL", "GOOGL", true},
		{"TOOLONG", "TOOLONG", false},
		{"037833100", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		got, valid := NormalizeTicker(tc.in)
		if got != tc.want || valid != tc.valid {
			t.Errorf("NormalizeTicker(%q) = (%q, %v), want (%q, %v)", tc.in, got, valid, tc.want, tc.valid)
		}
	}
}

func TestIsMoneyMarket(t *testing.T) {
	for _, sym := range []string{"SPAXX", "FDRXX", "SWVXX", "VMFXX", "ABXX"} {
		if !IsMoneyMarket(sym) {
			t.Errorf("IsMoneyMarket(%s) = false, want true", sym)
		}
	}
	for _, sym := range []string{"AAPL", "XX", "NVDA", "EXXON"} {
		if IsMoneyMarket(sym) {
			t.Errorf("IsMoneyMarket(%s) = true, want false", sym)
		}
	}
}
