package validate

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		handle   string
		expected string
	}{
		{"lowercases", "Alice", "alice"},
		{"trims", "  alice ", "alice"},
		{"untouched", "a-l_ice42", "a-l_ice42"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Normalize(c.handle); got != c.expected {
				t.Errorf("expected %q, got %q", c.expected, got)
			}
		})
	}
}

func TestHandle(t *testing.T) {
	cases := []struct {
		name   string
		handle string
		valid  bool
	}{
		{"simple", "alice", true},
		{"digits and separators", "alice-01_x", true},
		{"minimum length", "ab", true},
		{"too short", "a", false},
		{"empty", "", false},
		{"max length", strings.Repeat("a", MaxHandleLen), true},
		{"over max length", strings.Repeat("a", MaxHandleLen+1), false},
		{"uppercase rejected before normalization", "Alice", false},
		{"space", "al ice", false},
		{"slash", "al/ice", false},
		{"unicode", "alícia", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Handle(c.handle)
			if c.valid && err != nil {
				t.Errorf("unexpected error: %s", err)
			} else if !c.valid && err == nil {
				t.Error("expected an error, got none")
			}
		})
	}
}

func TestDescription(t *testing.T) {
	if err := Description(strings.Repeat("x", MaxDescriptionLen)); err != nil {
		t.Errorf("description at the bound should pass: %s", err)
	}
	if err := Description(strings.Repeat("x", MaxDescriptionLen+1)); err == nil {
		t.Error("description over the bound should fail")
	}
}

func TestTitle(t *testing.T) {
	if err := Title(strings.Repeat("x", MaxTitleLen)); err != nil {
		t.Errorf("title at the bound should pass: %s", err)
	}
	if err := Title(strings.Repeat("x", MaxTitleLen+1)); err == nil {
		t.Error("title over the bound should fail")
	}
	if err := Title(""); err != nil {
		t.Errorf("empty title should pass: %s", err)
	}
	if err := Title("x"); err == nil {
		t.Error("single character title should fail")
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		valid bool
	}{
		{"empty is allowed", "", true},
		{"plain address", "alice@example.com", true},
		{"garbage", "not-an-email", false},
		{"too long", strings.Repeat("a", MaxEmailLen) + "@example.com", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Email(c.email)
			if c.valid && err != nil {
				t.Errorf("unexpected error: %s", err)
			} else if !c.valid && err == nil {
				t.Error("expected an error, got none")
			}
		})
	}
}

func TestLink(t *testing.T) {
	if err := Link("github", "https://github.com/alice"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if err := Link("", "https://github.com/alice"); err == nil {
		t.Error("expected an error for a link without a platform")
	}
	if err := Link("github", ""); err == nil {
		t.Error("expected an error for an empty link")
	}
	if err := Link("github", "x"); err == nil {
		t.Error("expected an error for a single character link")
	}
	if err := Link("github", "https://"+strings.Repeat("a", MaxLinkLen)); err == nil {
		t.Error("expected an error for an oversized link")
	}
}
