package arch

import "testing"

func TestParseSentinels(t *testing.T) {
	for _, name := range []string{"source", "all", "any"} {
		a, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", name, err)
		}
		if a.String() != name {
			t.Fatalf("Parse(%q).String() = %q", name, a.String())
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("not-a-real-architecture"); err == nil {
		t.Fatalf("expected error for unknown architecture")
	}
}

func TestTableRoundTrip(t *testing.T) {
	for _, name := range Names() {
		a, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		tuple, ok := ToTuple(a)
		if !ok {
			t.Fatalf("ToTuple(%q): no tuple found", name)
		}
		back, ok := FromTuple(tuple)
		if !ok {
			t.Fatalf("FromTuple(%+v): no architecture found", tuple)
		}
		if back.Name() != name {
			t.Fatalf("label -> tuple -> label round trip: got %q, want %q", back.Name(), name)
		}
	}
}

func TestTableHasThirtyOrMoreEntries(t *testing.T) {
	if n := len(Names()); n < 30 {
		t.Fatalf("expected a substantial architecture table, got %d entries", n)
	}
}

func TestSentinelsHaveNoTuple(t *testing.T) {
	for _, a := range []Architecture{Source, All} {
		if _, ok := ToTuple(a); ok {
			t.Fatalf("%q sentinel should not have a multiarch tuple", a.Name())
		}
	}
}

func TestIsWildcardMatching(t *testing.T) {
	amd64, _ := Parse("amd64")
	any := Any

	if !Is(amd64, any) {
		t.Fatalf("any pattern should match every non-sentinel target")
	}
	if !Is(amd64, amd64) {
		t.Fatalf("an architecture should match itself")
	}
	i386, _ := Parse("i386")
	if Is(amd64, i386) {
		t.Fatalf("amd64 should not match i386")
	}
}

func TestIsSentinelsOnlyMatchThemselves(t *testing.T) {
	amd64, _ := Parse("amd64")
	if Is(Source, Any) {
		t.Fatalf("source should not match the any wildcard")
	}
	if Is(amd64, Source) {
		t.Fatalf("a real architecture should not match the source sentinel")
	}
	if !Is(Source, Source) {
		t.Fatalf("source should match itself")
	}
	if !Is(All, All) {
		t.Fatalf("all should match itself")
	}
	if Is(All, Source) {
		t.Fatalf("all should not match source")
	}
}

func TestIsFieldWildcard(t *testing.T) {
	armhf, _ := Parse("armhf")
	// armhf is (eabihf, gnu, linux, arm); a pattern with any in the cpu
	// field but a fixed abi should only match architectures sharing
	// that abi.
	pattern := Architecture{name: "pattern", abi: "eabihf", libc: "gnu", os: "linux", cpu: Wildcard}
	if !Is(armhf, pattern) {
		t.Fatalf("wildcard cpu field should match any cpu sharing the other three fields")
	}
	armel, _ := Parse("armel")
	if Is(armel, pattern) {
		t.Fatalf("armel has a different abi (eabi) and should not match the eabihf pattern")
	}
}

func TestParseWildcardTuples(t *testing.T) {
	amd64linux, err := Parse("amd64")
	if err != nil {
		t.Fatalf("Parse(amd64): %v", err)
	}

	linuxAny, err := Parse("linux-any")
	if err != nil {
		t.Fatalf("Parse(linux-any): %v", err)
	}
	if linuxAny.String() != "linux-any" {
		t.Fatalf("String() = %q, want %q", linuxAny.String(), "linux-any")
	}
	if !Is(amd64linux, linuxAny) {
		t.Fatalf("linux-any should match amd64 (a linux architecture)")
	}
	kfreebsdI386, _ := Parse("kfreebsd-i386")
	if Is(kfreebsdI386, linuxAny) {
		t.Fatalf("linux-any should not match a kfreebsd architecture")
	}

	anyAmd64, err := Parse("any-amd64")
	if err != nil {
		t.Fatalf("Parse(any-amd64): %v", err)
	}
	if !Is(amd64linux, anyAmd64) {
		t.Fatalf("any-amd64 should match the linux amd64 architecture")
	}
	hurdAmd64, _ := Parse("hurd-amd64")
	if !Is(hurdAmd64, anyAmd64) {
		t.Fatalf("any-amd64 should match any OS so long as the cpu is amd64")
	}
	i386, _ := Parse("i386")
	if Is(i386, anyAmd64) {
		t.Fatalf("any-amd64 should not match an i386 target")
	}

	kfreebsdAny, err := Parse("kfreebsd-any")
	if err != nil {
		t.Fatalf("Parse(kfreebsd-any): %v", err)
	}
	if !Is(kfreebsdI386, kfreebsdAny) {
		t.Fatalf("kfreebsd-any should match kfreebsd-i386")
	}
	if Is(amd64linux, kfreebsdAny) {
		t.Fatalf("kfreebsd-any should not match a linux architecture")
	}
}

func TestParseWildcardRejectsTooManyFields(t *testing.T) {
	if _, err := Parse("a-b-c-d-any"); err == nil {
		t.Fatalf("expected an error for a five-field wildcard tuple")
	}
}

func TestMarshalUnmarshalText(t *testing.T) {
	var a Architecture
	if err := a.UnmarshalText([]byte("arm64")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, err := a.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "arm64" {
		t.Fatalf("MarshalText() = %q, want %q", b, "arm64")
	}
}
