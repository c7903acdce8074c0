package bytealg

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

var nonASCIITests = []string{
	"",
	"a",
	"abc",
	"abcdefg",
	"abcdefgh",
	"abcdefghi",
	"α",
	"aα",
	"abcdefgα",
	"abcdefghα",
	"abcdefghijklmnoα",
	"abcdefghijklmnopα",
	"\x7f\x7f\x7f\x7f\x7f\x7f\x7f\x7f\x80",
	"\xff",
	"日本語",
	"abK",
	strings.Repeat("a", 63) + "ſ",
}

func referenceIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}

func testIndexNonASCII(t *testing.T, name string, fn func(s string) int) {
	const maxFailures = 80

	t.Run("Tests", func(t *testing.T) {
		for _, s := range nonASCIITests {
			if got, want := fn(s), referenceIndex(s); got != want {
				t.Errorf("%s(%q) = %d; want: %d", name, s, got, want)
			}
		}
	})

	t.Run("LongString", func(t *testing.T) {
		fails := 0

		long := strings.Repeat("a", 4096) + "βaβa"
		idx := referenceIndex(long)
		for i := 0; i < len(long); i++ {
			s := long[i:]
			want := idx - i
			if want < 0 {
				want = referenceIndex(s)
			}
			got := fn(s)
			if got != want {
				fails++
				if fails <= maxFailures {
					t.Errorf("%s(long[%d:]) = %d; want: %d", name, i, got, want)
				}
			}
		}

		if fails > 0 {
			t.Errorf("Failed: %d/%d", fails, len(long))
		}
	})
}

func TestIndexNonASCII(t *testing.T) {
	testIndexNonASCII(t, "IndexNonASCII", func(s string) int {
		return IndexNonASCII([]byte(s))
	})
}

func TestIndexNonASCIIUnits(t *testing.T) {
	testIndexNonASCII(t, "IndexNonASCIIUnits", func(s string) int {
		// Widen each byte so indexes line up with the byte reference.
		units := make([]uint16, len(s))
		for i := 0; i < len(s); i++ {
			units[i] = uint16(s[i])
		}
		return IndexNonASCIIUnits(units)
	})
}

var indexSizes = []int{10, 32, 4 << 10, 4 << 20, 64 << 20}

func valName(x int) string {
	if s := x >> 20; s<<20 == x {
		return strconv.Itoa(s) + "M"
	}
	if s := x >> 10; s<<10 == x {
		return strconv.Itoa(s) + "K"
	}
	return strconv.Itoa(x)
}

var bmbuf []byte

func BenchmarkIndexNonASCII(b *testing.B) {
	for _, n := range indexSizes {
		b.Run(valName(n), func(b *testing.B) {
			if len(bmbuf) < n {
				bmbuf = make([]byte, n)
			}
			buf := bmbuf[0:n]
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				_ = IndexNonASCII(buf)
			}
		})
	}
}
