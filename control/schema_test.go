package control

import (
	"testing"

	"github.com/paultag/deb822go/types"
)

type testPackage struct {
	Name        string       `deb822:"Package"`
	Version     string       `deb822:"Version"`
	Priority    *string      `deb822:"Priority,optional"`
	Depends     []string     `deb822:"Depends,repeated"`
	InstallSize types.Number `deb822:"Installed-Size,optional"`
}

func TestDecodeBasic(t *testing.T) {
	raw := RawParagraph{Fields: []RawField{
		{Key: "Package", Value: "foo"},
		{Key: "Version", Value: "1.0"},
		{Key: "Depends", Value: "a\nb\nc"},
	}}

	var pkg testPackage
	if err := Decode(raw, &pkg); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if pkg.Name != "foo" || pkg.Version != "1.0" {
		t.Fatalf("got %+v", pkg)
	}
	if pkg.Priority != nil {
		t.Fatalf("optional absent field should stay nil, got %v", *pkg.Priority)
	}
	if len(pkg.Depends) != 3 || pkg.Depends[0] != "a" || pkg.Depends[2] != "c" {
		t.Fatalf("Depends = %v", pkg.Depends)
	}
}

func TestDecodeMissingRequiredField(t *testing.T) {
	raw := RawParagraph{Fields: []RawField{
		{Key: "Package", Value: "foo"},
	}}
	var pkg testPackage
	err := Decode(raw, &pkg)
	if err == nil {
		t.Fatalf("expected a missing-field error")
	}
	missing, ok := err.(*MissingFieldError)
	if !ok {
		t.Fatalf("expected *MissingFieldError, got %T: %v", err, err)
	}
	if missing.Key != "Version" {
		t.Fatalf("missing field key = %q, want %q", missing.Key, "Version")
	}
}

func TestDecodeRepeatedEmptyValueYieldsEmptySlice(t *testing.T) {
	raw := RawParagraph{Fields: []RawField{
		{Key: "Package", Value: "foo"},
		{Key: "Version", Value: "1.0"},
		{Key: "Depends", Value: ""},
	}}
	var pkg testPackage
	if err := Decode(raw, &pkg); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(pkg.Depends) != 0 {
		t.Fatalf("expected empty Depends, got %v", pkg.Depends)
	}
}

func TestDecodeUnknownKeysIgnored(t *testing.T) {
	raw := RawParagraph{Fields: []RawField{
		{Key: "Package", Value: "foo"},
		{Key: "Version", Value: "1.0"},
		{Key: "X-Totally-Unknown", Value: "whatever"},
	}}
	var pkg testPackage
	if err := Decode(raw, &pkg); err != nil {
		t.Fatalf("Decode should ignore unknown keys: %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	prio := "optional"
	pkg := testPackage{
		Name:        "foo",
		Version:     "1.0",
		Priority:    &prio,
		Depends:     []string{"a", "b"},
		InstallSize: 42,
	}
	raw, err := Encode(pkg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded testPackage
	if err := Decode(raw, &decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Name != pkg.Name || decoded.Version != pkg.Version {
		t.Fatalf("round trip mismatch: got %+v", decoded)
	}
	if decoded.Priority == nil || *decoded.Priority != prio {
		t.Fatalf("Priority round trip mismatch: got %v", decoded.Priority)
	}
	if len(decoded.Depends) != 2 || decoded.Depends[0] != "a" {
		t.Fatalf("Depends round trip mismatch: got %v", decoded.Depends)
	}
	if decoded.InstallSize != 42 {
		t.Fatalf("InstallSize round trip mismatch: got %v", decoded.InstallSize)
	}
}

func TestEncodeOmitsAbsentOptional(t *testing.T) {
	pkg := testPackage{Name: "foo", Version: "1.0"}
	raw, err := Encode(pkg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if raw.Has("Priority") {
		t.Fatalf("absent optional field should be omitted from encoding")
	}
}

func TestDecodeDuplicateScalarFirstWins(t *testing.T) {
	raw := RawParagraph{Fields: []RawField{
		{Key: "Package", Value: "foo"},
		{Key: "Version", Value: "1.0"},
		{Key: "Version", Value: "2.0"},
	}}
	var pkg testPackage
	if err := Decode(raw, &pkg); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if pkg.Version != "1.0" {
		t.Fatalf("Version = %q, want %q (first wins by default)", pkg.Version, "1.0")
	}
}

func TestDecodeStrictModeRejectsDuplicateScalar(t *testing.T) {
	raw := RawParagraph{Fields: []RawField{
		{Key: "Package", Value: "foo"},
		{Key: "Version", Value: "1.0"},
		{Key: "Version", Value: "2.0"},
	}}
	var pkg testPackage
	err := Decode(raw, &pkg, StrictMode())
	if err == nil {
		t.Fatalf("expected a duplicate-field error under StrictMode")
	}
	dup, ok := err.(*DuplicateFieldError)
	if !ok {
		t.Fatalf("expected *DuplicateFieldError, got %T: %v", err, err)
	}
	if dup.Key != "Version" {
		t.Fatalf("duplicate field key = %q, want %q", dup.Key, "Version")
	}
}

// flatChild and flatParent exercise the flatten/number-as-string
// hazard: a flattened record's codecs must all accept string input.
type flatChild struct {
	Size types.Number `deb822:"Installed-Size"`
}

type flatParent struct {
	Name  string    `deb822:"Package"`
	Child flatChild `deb822:",flatten"`
}

func TestFlattenMergesFieldsIntoEnclosingParagraph(t *testing.T) {
	raw := RawParagraph{Fields: []RawField{
		{Key: "Package", Value: "foo"},
		{Key: "Installed-Size", Value: "1024"},
	}}
	var parent flatParent
	if err := Decode(raw, &parent); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if parent.Name != "foo" {
		t.Fatalf("Name = %q", parent.Name)
	}
	if parent.Child.Size != 1024 {
		t.Fatalf("Child.Size = %v, want 1024", parent.Child.Size)
	}

	out, err := Encode(parent)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if v, ok := out.Get("Installed-Size"); !ok || v != "1024" {
		t.Fatalf("Installed-Size = %q, %v", v, ok)
	}
}
