// Package test contains the conformance tests shared by the UTF-8 and UCS-2
// implementations. Test cases are written as Go strings and only use code
// points from the Basic Multilingual Plane so that both representations can
// run them unchanged.
package test

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/charlievieth/utfcase/internal/tables"
)

type CaseFunc func(s string) string

type CaselessFunc func(s string) bool

type CompareFunc func(s, t string, ignoreCase bool) int

type EqualFoldFunc func(s, t string) bool

func ByteCaseFunc(fn func(p []byte) []byte) CaseFunc {
	return func(s string) string {
		return string(fn([]byte(s)))
	}
}

func ByteCaselessFunc(fn func(p []byte) bool) CaselessFunc {
	return func(s string) bool {
		return fn([]byte(s))
	}
}

func ByteCompareFunc(fn func(a, b []byte, ignoreCase bool) int) CompareFunc {
	return func(s, t string, ignoreCase bool) int {
		return fn([]byte(s), []byte(t), ignoreCase)
	}
}

func ByteEqualFoldFunc(fn func(a, b []byte) bool) EqualFoldFunc {
	return func(s, t string) bool {
		return fn([]byte(s), []byte(t))
	}
}

// Units returns the UCS-2 units of s. The code points of s must be in the
// Basic Multilingual Plane.
func Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// String is the inverse of Units.
func String(s []uint16) string {
	return string(utf16.Decode(s))
}

func UnitCaseFunc(fn func(s []uint16) []uint16) CaseFunc {
	return func(s string) string {
		return String(fn(Units(s)))
	}
}

func UnitCaselessFunc(fn func(s []uint16) bool) CaselessFunc {
	return func(s string) bool {
		return fn(Units(s))
	}
}

func UnitCompareFunc(fn func(a, b []uint16, ignoreCase bool) int) CompareFunc {
	return func(s, t string, ignoreCase bool) int {
		return fn(Units(s), Units(t), ignoreCase)
	}
}

func UnitEqualFoldFunc(fn func(a, b []uint16) bool) EqualFoldFunc {
	return func(s, t string) bool {
		return fn(Units(s), Units(t))
	}
}

type caseTest struct {
	in, out string
}

var upperTests = []caseTest{
	{"", ""},
	{"aB9", "AB9"},
	{"abc123!@#", "ABC123!@#"},
	{"ABC", "ABC"},
	{"héllo wörld", "HÉLLO WÖRLD"},
	{"αβγ", "ΑΒΓ"},
	{"ω", "Ω"},
	{"ｗ", "Ｗ"}, // fullwidth w
	{"ሴ", "ሴ"}, // caseless
	{"ι", "ͅ"}, // not 0x1FBE or 0x0399
	{"ǆemal", "ǄEMAL"},
	{"µ", "µ"},     // micro sign
	{"KaÅ", "KAÅ"}, // Kelvin and Angstrom signs
	{strings.Repeat("a", 64) + "é", strings.Repeat("A", 64) + "É"},
	{"é" + strings.Repeat("a", 64), "É" + strings.Repeat("A", 64)},
}

var lowerTests = []caseTest{
	{"", ""},
	{"aB9", "ab9"},
	{"ABC123!@#", "abc123!@#"},
	{"HÉLLO WÖRLD", "héllo wörld"},
	{"ΑΒΓ", "αβγ"},
	{"Ｗ", "ｗ"},
	{"ሴ", "ሴ"},
	{"ι", "ι"},
	{"K", "k"}, // Kelvin sign
	{"Ω", "ω"}, // Ohm sign
	{"ſ", "s"}, // long s
	{"µ", "μ"}, // micro sign
	{"ǅ", "ǆ"},
	{strings.Repeat("A", 64) + "É", strings.Repeat("a", 64) + "é"},
}

var capitalizeTests = []caseTest{
	{"", ""},
	{"aB c", "Ab C"},
	{"hello world", "Hello World"},
	{"HELLO\tWORLD\nfoo", "Hello\tWorld\nFoo"},
	{"  leading", "  Leading"},
	{"x_y", "X_y"},
	{"a1 2b", "A1 2b"},
	{"élan vital", "Élan Vital"},
	{"ΑΒΓ δΕΖ", "Αβγ Δεζ"},
	{"a b", "A B"},
	{"a　b", "A　B"},
	{"a​b", "A​b"}, // zero width space is not white space
	{"ሴa", "ሴa"},
}

var caselessTests = []struct {
	in  string
	out bool
}{
	{"", true},
	{"123", true},
	{"!@#$%^&*()_+-=[]{}", true},
	{" \t\n", true},
	{"ሴ世", true},
	{"ß", true}, // sharp s has no simple mapping
	{"İı", true},
	{"1a", false},
	{"Z", false},
	{"é", false},
	{"ｗ", false},
	{"Ω", false},
	{"ሴ世α", false},
	{strings.Repeat("1", 64) + "a", false},
}

type compareTest struct {
	s, t       string
	ignoreCase bool
	out        int
}

var compareTests = []compareTest{
	{"", "", true, 0},
	{"", "", false, 0},
	{"", "a", true, -1},
	{"a", "", true, 1},
	{"ab", "abc", false, -1},
	{"abc", "ab", false, 1},
	{"AB", "ab", true, 0},
	{"AB", "ab", false, -1},
	{"ab", "aB", false, 1},
	{"abc", "ABD", true, -1},
	{"abd", "ABC", true, 1},
	{"123abc", "123ABC", true, 0},
	{"αβδ", "ΑΒΔ", true, 0},
	{"αβδa", "ΑΒΔ", true, 1},
	{"αβδ", "ΑΒΔa", true, -1},
	{"αβa", "ΑΒΔ", true, -1},
	{"αβδ", "ΑΒΔ", false, 1},
	{"é", "É", true, 0},
	{"é", "éa", true, -1},
	{"ａ", "Ａ", true, 0},
	{"K", "k", true, 1},
	{"ͅ", "ι", true, 0},
	{"ι", "ι", true, 1},

	// Upper case is used to ignore case: '_' sorts after the letters.
	{"_", "a", true, 1},
	{"_", "a", false, -1},
	{"a_", "AB", true, 1},
}

func checkCase(t *testing.T, name string, fn CaseFunc, tests []caseTest) {
	t.Helper()
	for _, test := range tests {
		got := fn(test.in)
		if got != test.out {
			t.Errorf("%s(%q) = %q; want: %q", name, test.in, got, test.out)
		}
	}
}

func ToUpper(t *testing.T, fn CaseFunc) {
	checkCase(t, "ToUpper", fn, upperTests)
}

func ToLower(t *testing.T, fn CaseFunc) {
	checkCase(t, "ToLower", fn, lowerTests)
}

func Capitalize(t *testing.T, fn CaseFunc) {
	checkCase(t, "Capitalize", fn, capitalizeTests)
}

func IsCaseless(t *testing.T, fn CaselessFunc) {
	for _, test := range caselessTests {
		if got := fn(test.in); got != test.out {
			t.Errorf("IsCaseless(%q) = %t; want: %t", test.in, got, test.out)
		}
	}
}

// Make sure the Compare tests agree with the code point comparison.
func validateCompareTests(t *testing.T) {
	for i, test := range compareTests {
		if got := CompareRunes([]rune(test.s), []rune(test.t), test.ignoreCase); got != test.out {
			t.Errorf("%d: CompareRunes(%q, %q, %t) = %d; want: %d",
				i, test.s, test.t, test.ignoreCase, got, test.out)
		}
	}
	if t.Failed() {
		t.Fatal("invalid Compare tests")
	}
}

func Compare(t *testing.T, fn CompareFunc) {
	validateCompareTests(t)
	for i, test := range compareTests {
		got := fn(test.s, test.t, test.ignoreCase)
		if got != test.out {
			t.Errorf("%d: Compare(%q, %q, %t) = %d; want: %d",
				i, test.s, test.t, test.ignoreCase, got, test.out)
		}
	}
}

func EqualFold(t *testing.T, fn EqualFoldFunc) {
	validateCompareTests(t)
	for _, test := range compareTests {
		if !test.ignoreCase {
			continue
		}
		want := test.out == 0
		if got := fn(test.s, test.t); got != want {
			t.Errorf("EqualFold(%q, %q) = %t; want: %t", test.s, test.t, got, want)
		}
	}
}

// CompareRunes is the reference comparison. Since equal upper case mappings
// always have the same encoded width the rune count tie-break agrees with
// both the byte and unit count tie-breaks.
func CompareRunes(s, t []rune, ignoreCase bool) int {
	for i := 0; i < len(s) && i < len(t); i++ {
		if c := tables.CompareRune(s[i], t[i], ignoreCase); c != 0 {
			return c
		}
	}
	return tables.Cmp(len(s), len(t))
}

// MapRunes is the reference case conversion.
func MapRunes(s string, fn func(rune) rune) string {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = fn(r)
	}
	return string(rs)
}

// CapitalizeRunes is the reference Capitalize.
func CapitalizeRunes(s string) string {
	rs := []rune(s)
	wordStart := true
	for i, r := range rs {
		if wordStart {
			r = tables.ToUpper(r)
		} else {
			r = tables.ToLower(r)
		}
		rs[i] = r
		wordStart = tables.IsSpace(r)
	}
	return string(rs)
}
