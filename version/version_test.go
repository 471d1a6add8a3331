package version

import (
	"fmt"
	"testing"
)

func mustParse(t *testing.T, s string) Version {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", s, err)
	}
	return v
}

func TestParseRenderRoundTrip(t *testing.T) {
	cases := []string{
		"1",
		"0:1",
		"1-0",
		"2.2~rc-4",
		"2:2.5",
		"1:3.8.1-1",
		"12345+that-really-is-some-ver-0",
		"1a",
		"0foo~1",
		"1.0000-1",
	}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			v := mustParse(t, s)
			if got := v.String(); got != s {
				t.Fatalf("String() = %q, want %q (rendering is not canonicalized)", got, s)
			}
			if _, err := Parse(v.String()); err != nil {
				t.Fatalf("Parse(String()) failed: %v", err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"missing upstream", "1:-2"},
		{"trailing dash", "1.0-"},
		{"non-digit epoch", "a:1.0"},
		{"epoch overflow", "99999999999:1.0"},
		{"upstream does not start with digit", "a1.0"},
		{"invalid char upstream", "1.0 beta"},
		{"invalid char revision", "1.0-be ta"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.in); err == nil {
				t.Fatalf("Parse(%q): expected error, got none", tc.in)
			}
		})
	}
}

func TestWhitespaceTrimmed(t *testing.T) {
	a := mustParse(t, "  1.0-1  ")
	b := mustParse(t, "1.0-1")
	if Compare(a, b) != 0 {
		t.Fatalf("surrounding whitespace should be ignored")
	}
}

func TestEquivalenceClasses(t *testing.T) {
	groups := [][]string{
		{"1", "0:1", "1-0"},
		{"1.0000-1", "1.0-1"},
		{"0", "0:0-0"},
	}
	for _, g := range groups {
		t.Run(g[0], func(t *testing.T) {
			base := mustParse(t, g[0])
			for _, s := range g[1:] {
				v := mustParse(t, s)
				if !Equal(base, v) {
					t.Fatalf("%q and %q should be equal, compare=%d", g[0], s, Compare(base, v))
				}
			}
		})
	}
}

func TestTildeLaw(t *testing.T) {
	suffixes := []string{"1", "rc1", "~"}
	bases := []string{"1.0", "2.2", "0foo"}
	for _, base := range bases {
		for _, suf := range suffixes {
			name := base + "~" + suf
			t.Run(name, func(t *testing.T) {
				withTilde := mustParse(t, base+"~"+suf)
				without := mustParse(t, base)
				if !Less(withTilde, without) {
					t.Fatalf("%q should sort before %q", base+"~"+suf, base)
				}
			})
		}
	}

	t.Run("double tilde", func(t *testing.T) {
		a := mustParse(t, "1.0~~")
		b := mustParse(t, "1.0~")
		if !Less(a, b) {
			t.Fatalf("1.0~~ should sort before 1.0~")
		}
	})
}

func TestNumericLaw(t *testing.T) {
	a := mustParse(t, "1.09")
	b := mustParse(t, "1.9")
	if !Equal(a, b) {
		t.Fatalf("leading zeros in digit runs must be insignificant")
	}
}

func TestCompareConcreteScenarios(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2.2~rc-4", "2.2-1", -1},
		{"2:2.5", "1:7.5", 1},
		{"0foo~1", "0foo", -1},
		{"1:3.8.1-1", "3.8.GA-1", 1},
		{"12345+that-really-is-some-ver-0", "12345+that-really-is-some-ver-10", -1},
		{"1a", "1000a", -1},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_vs_%s", tc.a, tc.b), func(t *testing.T) {
			a := mustParse(t, tc.a)
			b := mustParse(t, tc.b)
			if got := Compare(a, b); got != tc.want {
				t.Fatalf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if got := Compare(b, a); got != -tc.want {
				t.Fatalf("Compare(%q, %q) = %d, want %d (antisymmetric)", tc.b, tc.a, got, -tc.want)
			}
		})
	}
}

func TestCompareTotalOrder(t *testing.T) {
	versions := []string{"1.0~rc1", "1.0", "1.0-1", "1.0-2", "1.1", "2:1.0", "2:1.0-1"}
	parsed := make([]Version, len(versions))
	for i, s := range versions {
		parsed[i] = mustParse(t, s)
	}
	for i := range parsed {
		if !Equal(parsed[i], parsed[i]) {
			t.Fatalf("reflexivity failed for %s", versions[i])
		}
		for j := range parsed {
			if i == j {
				continue
			}
			cij := Compare(parsed[i], parsed[j])
			cji := Compare(parsed[j], parsed[i])
			if cij != -cji {
				t.Fatalf("antisymmetry failed for %s vs %s: %d vs %d", versions[i], versions[j], cij, cji)
			}
		}
	}
}

func TestEpochDominatesComparison(t *testing.T) {
	a := mustParse(t, "1:1.0")
	b := mustParse(t, "9999.0")
	if !Less(b, a) {
		t.Fatalf("any epoch-1 version must sort above an epoch-0 version regardless of upstream text")
	}
}
