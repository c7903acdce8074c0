package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/rangetable"

	"github.com/charlievieth/utfcase/internal/tables"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// All code points with a case mapping, sorted.
var casedRunes = generateCasedRunes()

func CasedRunes() []rune {
	return casedRunes
}

func generateCasedRunes() []rune {
	var rs []rune
	rangetable.Visit(tables.Default().Cased(), func(r rune) {
		rs = append(rs, r)
	})
	if len(rs) == 0 {
		panic("no cased runes")
	}
	slices.Sort(rs)
	return slices.Compact(rs)
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func intn(rr *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rr.Intn(n)
}

// randRune returns a random code point in the Basic Multilingual Plane that
// is not a surrogate.
func randRune(rr *rand.Rand) rune {
	switch n := rr.Intn(100); {
	case n <= 5:
		return ' '
	case n <= 10:
		return '\u212a' // Kelvin K
	case n <= 50:
		return casedRunes[rr.Intn(len(casedRunes))]
	case n <= 70:
		for {
			r := rr.Int31n(0xFFFF + 1)
			if r < 0xD800 || r > 0xDFFF {
				return r
			}
		}
	default:
		return rr.Int31n(128)
	}
}

// appendRandRunes appends n random runes to rs. Some of the time the runes
// are preceded by a run of ASCII.
func appendRandRunes(rs []rune, rr *rand.Rand, n int) []rune {
	if rr.Float64() < 0.25 {
		for i := intn(rr, 24); i > 0; i-- {
			rs = append(rs, rr.Int31n(128))
		}
	}
	for i := 0; i < n; i++ {
		rs = append(rs, randRune(rr))
	}
	return rs
}

// randCaseRune will randomly change the case of rune r
func randCaseRune(rr *rand.Rand, r rune) rune {
	switch rr.Intn(3) {
	case 0:
		return tables.ToUpper(r)
	case 1:
		return tables.ToLower(r)
	}
	return r
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

func runRandomTest(t *testing.T, fn func(t *fuzzTest)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	// Count is the total number of test iterations to run.
	count := 2_500
	if testing.Short() {
		count /= 2
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 4_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			tt := newFuzzTest(t, seed)
			for i := 0; i < count; i++ {
				fn(tt)
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

type fuzzTest struct {
	testing.TB
	rr *rand.Rand
	// Scratch space for constructing test arguments
	s0 []rune
	s1 []rune
}

func newFuzzTest(t *testing.T, seed int64) *fuzzTest {
	return &fuzzTest{
		TB: &testWrapper{T: t},
		rr: rand.New(rand.NewSource(seed)),
		s0: make([]rune, 0, 32),
		s1: make([]rune, 0, 32),
	}
}

func (t *fuzzTest) RandString() string {
	t.s0 = appendRandRunes(t.s0[:0], t.rr, t.rr.Intn(32))
	return string(t.s0)
}

func (t *fuzzTest) CompareArgs() (_s0, _s1 string, ignoreCase bool, out int) {
	ignoreCase = t.rr.Intn(4) != 0
	s0 := appendRandRunes(t.s0[:0], t.rr, t.rr.Intn(14)+2)
	s1 := append(t.s1[:0], s0...)
	switch n := t.rr.Intn(100); {
	case n <= 40:
		for i, r := range s1 {
			s1[i] = randCaseRune(t.rr, r)
		}
	case n <= 55:
		s1 = s1[:t.rr.Intn(len(s1))]
	case n <= 70:
		s1 = append(s1, s1[:t.rr.Intn(len(s1))]...)
	default:
		i := len(s1)/2 + intn(t.rr, len(s1)/2)
		s1[i] = randRune(t.rr)
	}
	t.s0, t.s1 = s0, s1
	return string(s0), string(s1), ignoreCase, CompareRunes(s0, s1, ignoreCase)
}

func CompareFuzz(t *testing.T, fn CompareFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s0, s1, ignoreCase, want := t.CompareArgs()
		got := fn(s0, s1, ignoreCase)
		if got != want {
			t.Errorf("Compare\n"+
				"S0:         %+q\n"+
				"S1:         %+q\n"+
				"IgnoreCase: %t\n"+
				"Got:        %d\n"+
				"Want:       %d\n",
				s0, s1, ignoreCase, got, want)
		}
	})
}

func caseFuzz(t *testing.T, name string, fn CaseFunc, reference func(string) string) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.RandString()
		got := fn(s)
		want := reference(s)
		if got != want {
			t.Errorf("%s\n"+
				"S:    %+q\n"+
				"Got:  %+q\n"+
				"Want: %+q\n",
				name, s, got, want)
		}
	})
}

func ToUpperFuzz(t *testing.T, fn CaseFunc) {
	caseFuzz(t, "ToUpper", fn, func(s string) string {
		return MapRunes(s, tables.ToUpper)
	})
}

func ToLowerFuzz(t *testing.T, fn CaseFunc) {
	caseFuzz(t, "ToLower", fn, func(s string) string {
		return MapRunes(s, tables.ToLower)
	})
}

func CapitalizeFuzz(t *testing.T, fn CaseFunc) {
	caseFuzz(t, "Capitalize", fn, CapitalizeRunes)
}

func IsCaselessFuzz(t *testing.T, fn CaselessFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.RandString()
		want := true
		for _, r := range s {
			if !tables.IsCaseless(r) {
				want = false
				break
			}
		}
		if got := fn(s); got != want {
			t.Errorf("IsCaseless(%+q) = %t; want: %t", s, got, want)
		}
	})
}

var _ testing.TB = (*testWrapper)(nil)

// A testWrapper wraps a testing.T and will immediately fail the test
// if more that N errors occur.
type testWrapper struct {
	*testing.T
	fails int32
}

func (c *testWrapper) check() {
	c.T.Helper()
	if n := atomic.AddInt32(&c.fails, 1); n >= 10 {
		// We run tests in parallel so only call Fatal on the
		// test that crossed the threshold.
		if n == 10 {
			c.T.Fatal("Too many errors:", n)
		} else {
			c.T.FailNow() // Abort subsequent tests
		}
		panic(fmt.Sprintf("aborting test: too many errors: %d", n)) // unreachable
	}
}

func (c *testWrapper) Error(args ...any) {
	c.T.Helper()
	c.T.Error(args...)
	c.check()
}

func (c *testWrapper) Errorf(format string, args ...any) {
	c.T.Helper()
	c.T.Errorf(format, args...)
	c.check()
}

func (c *testWrapper) Fatal(args ...any) {
	c.T.Helper()
	c.T.Fatal(args...)
	c.check()
}

func (c *testWrapper) Fatalf(format string, args ...any) {
	c.T.Helper()
	c.T.Fatalf(format, args...)
	c.check()
}
