package vetting

import (
	"reflect"
	"testing"
)

func TestAnalyzePatterns(t *testing.T) {
	tests := []struct {
		domain   string
		risk     int
		messages []string
	}{
		{
			domain:   "example.com",
			risk:     0,
			messages: []string{},
		},
		{
			domain: "secure-login-update123.xyz",
			risk:   95,
			messages: []string{
				"⚠ Suspicious word in domain: login",
				"⚠ Suspicious word in domain: secure",
				"⚠ Suspicious word in domain: update",
				"⚠ Excessive numbers in domain.",
				"⚠ Suspicious TLD detected: .xyz",
			},
		},
		{
			domain:   "a.b.c.example.com",
			risk:     15,
			messages: []string{"⚠ Too many subdomains detected."},
		},
		{
			domain:   "b.example.com",
			risk:     0,
			messages: []string{},
		},
		{
			domain:   "shop12.com",
			risk:     0,
			messages: []string{},
		},
		{
			domain:   "PayPal-VERIFY-Account.TK",
			risk:     60,
			messages: []string{"⚠ Suspicious word in domain: verify", "⚠ Suspicious word in domain: account", "⚠ Suspicious TLD detected: .tk"},
		},
		{
			domain:   "free-prize.top",
			risk:     20,
			messages: []string{"⚠ Suspicious TLD detected: .top"},
		},
		{
			domain:   "xyz.example.com",
			risk:     0,
			messages: []string{},
		},
	}
	for _, tt := range tests {
		got := AnalyzePatterns(tt.domain)
		if got.Risk != tt.risk {
			t.Errorf("AnalyzePatterns(%q).Risk = %d, want %d", tt.domain, got.Risk, tt.risk)
		}
		if !reflect.DeepEqual(got.Messages, tt.messages) {
			t.Errorf("AnalyzePatterns(%q).Messages = %q, want %q", tt.domain, got.Messages, tt.messages)
		}
	}
}

func TestAnalyzePatterns_Deterministic(t *testing.T) {
	d := "login.verify.secure-update-account999.gq"
	a, b := AnalyzePatterns(d), AnalyzePatterns(d)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ: %+v vs %+v", a, b)
	}
	// 5 keywords, subdomains, digits, TLD
	want := 5*WeightSuspiciousKeyword + WeightTooManySubdomains + WeightExcessiveDigits + WeightSuspiciousTLD
	if a.Risk != want {
		t.Errorf("Risk = %d, want %d", a.Risk, want)
	}
}

func TestAnalyzePatterns_RiskIsSumOfRules(t *testing.T) {
	domains := []string{"", "example.com", "secure-login-update123.xyz", "1.2.3.4", "www.a.b.c.tk"}
	for _, d := range domains {
		f := AnalyzePatterns(d)
		if f.Risk < 0 {
			t.Errorf("%q: negative risk %d", d, f.Risk)
		}
		if (f.Risk == 0) != (len(f.Messages) == 0) {
			t.Errorf("%q: risk %d with %d messages", d, f.Risk, len(f.Messages))
		}
	}
}
