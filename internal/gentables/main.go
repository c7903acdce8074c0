// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the case mapping tables used by utfcase from the list
// of case pairs in casepairs.txt. The tables must be regenerated if the case
// pairs or this code is changed (`go generate`).
package main

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/mod/modfile"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"
)

func init() {
	initLogs()
}

func initLogs() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout) // use stdout instead of stderr
}

// modulePath is the module the generated files belong to, paths are relative
// to its root directory.
const modulePath = "github.com/charlievieth/utfcase"

// maxFold is the largest code point that may appear in a case pair.
const maxFold = 0xFFFF

// valuesPerLine is the number of table entries written per line.
const valuesPerLine = 10

type casePair struct {
	Upper uint16
	Lower uint16
}

func cmpCompare[T constraints.Ordered](x, y T) int {
	if x < y {
		return -1
	}
	if x > y {
		return +1
	}
	return 0
}

// parsePairs parses case pairs from r. Each non-empty line that is not a
// comment has the form "<upper>; <lower>" where both are hexadecimal code
// points.
func parsePairs(r io.Reader) ([]casePair, error) {
	var pairs []casePair
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: invalid case pair: %q", lineno, sc.Text())
		}
		var cps [2]uint16
		for i, f := range fields {
			n, err := strconv.ParseUint(strings.TrimSpace(f), 16, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			if n > maxFold {
				return nil, fmt.Errorf("line %d: code point %U is outside the "+
					"Basic Multilingual Plane", lineno, n)
			}
			cps[i] = uint16(n)
		}
		if cps[0] == cps[1] {
			return nil, fmt.Errorf("line %d: code point %U is paired with itself",
				lineno, cps[0])
		}
		pairs = append(pairs, casePair{Upper: cps[0], Lower: cps[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, errors.New("no case pairs")
	}
	return pairs, nil
}

func readPairs(name string) []casePair {
	f, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	pairs, err := parsePairs(f)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	return pairs
}

// buildMaps builds the upper to lower and lower to upper maps the same way
// tables.New does: the first occurrence of a code point wins.
func buildMaps(pairs []casePair) (upperToLower, lowerToUpper map[uint16]uint16) {
	upperToLower = make(map[uint16]uint16, len(pairs))
	lowerToUpper = make(map[uint16]uint16, len(pairs))
	for i := len(pairs) - 1; i >= 0; i-- {
		p := pairs[i]
		upperToLower[p.Upper] = p.Lower
		lowerToUpper[p.Lower] = p.Upper
	}
	return upperToLower, lowerToUpper
}

// aliases returns the code points that appear more than once in the given
// column of pairs, sorted.
func aliases(pairs []casePair, key func(casePair) uint16) []uint16 {
	seen := make(map[uint16]int, len(pairs))
	for _, p := range pairs {
		seen[key(p)]++
	}
	for k, n := range seen {
		if n < 2 {
			delete(seen, k)
		}
	}
	keys := maps.Keys(seen)
	slices.Sort(keys)
	return keys
}

func runeLen(r uint16) int {
	if 0xD800 <= r && r <= 0xDFFF {
		return 3 // encoded like any other 3 byte code point
	}
	return utf8.RuneLen(rune(r))
}

// verifyPairs checks the invariants the case conversion code relies on:
// the encoded width of a code point never grows when its case is changed
// and ASCII is only paired with ASCII letters.
func verifyPairs(pairs []casePair, bar *progressbar.ProgressBar) error {
	upperToLower, lowerToUpper := buildMaps(pairs)

	var errs []error
	for r := 0; r <= maxFold; r++ {
		c := uint16(r)
		n := runeLen(c)
		if u, ok := lowerToUpper[c]; ok && runeLen(u) > n {
			errs = append(errs, fmt.Errorf("upper case of %U (%U) grows from %d to %d bytes",
				c, u, n, runeLen(u)))
		}
		if l, ok := upperToLower[c]; ok && runeLen(l) > n {
			errs = append(errs, fmt.Errorf("lower case of %U (%U) grows from %d to %d bytes",
				c, l, n, runeLen(l)))
		}
		if c < utf8.RuneSelf {
			_, hasUpper := lowerToUpper[c]
			_, hasLower := upperToLower[c]
			isLetter := 'a' <= c|0x20 && c|0x20 <= 'z'
			if (hasUpper || hasLower) != isLetter {
				errs = append(errs, fmt.Errorf("invalid ASCII mapping for %q", rune(c)))
			}
			if hasUpper && lowerToUpper[c] != c&^0x20 {
				errs = append(errs, fmt.Errorf("upper case of %q is %U", rune(c), lowerToUpper[c]))
			}
			if hasLower && upperToLower[c] != c|0x20 {
				errs = append(errs, fmt.Errorf("lower case of %q is %U", rune(c), upperToLower[c]))
			}
		}
		if bar != nil && r&0xFF == 0xFF {
			bar.Add(0x100)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return errors.Join(errs...)
}

func hashPairs(pairs []casePair) string {
	h := sha256.New()
	b := make([]byte, 4)
	for _, p := range pairs {
		binary.LittleEndian.PutUint16(b[0:2], p.Upper)
		binary.LittleEndian.PutUint16(b[2:4], p.Lower)
		h.Write(b)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func writeTable(w *bytes.Buffer, name, doc string, values []uint16) {
	w.WriteString(doc)
	fmt.Fprintf(w, "var %s = [%d]uint16{\n", name, len(values))
	for i := 0; i < len(values); i += valuesPerLine {
		line := values[i:min(i+valuesPerLine, len(values))]
		w.WriteByte('\t')
		for j, v := range line {
			if j > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "0x%04X,", v)
		}
		w.WriteByte('\n')
	}
	w.WriteString("}\n")
}

// generate returns the formatted source of the tables package.
func generate(pairs []casePair, hash string) ([]byte, error) {
	upper := make([]uint16, len(pairs))
	lower := make([]uint16, len(pairs))
	for i, p := range pairs {
		upper[i] = p.Upper
		lower[i] = p.Lower
	}

	var w bytes.Buffer
	w.WriteString("// Code generated by \"gentables\"; DO NOT EDIT.\n\n")
	w.WriteString("package tables\n\n")
	w.WriteString("// PairsHash is the SHA-256 of the case pairs these tables were generated from.\n")
	fmt.Fprintf(&w, "const PairsHash = %q\n\n", hash)
	writeTable(&w, "_UpperTable",
		"// _UpperTable holds upper-case code points. Each entry pairs with the entry\n"+
			"// at the same index in _LowerTable; where a code point repeats the earlier\n"+
			"// (lower index) pair is preferred.\n",
		upper)
	w.WriteByte('\n')
	writeTable(&w, "_LowerTable",
		"// _LowerTable holds lower-case code points. Each entry pairs with the entry\n"+
			"// at the same index in _UpperTable; where a code point repeats the earlier\n"+
			"// (lower index) pair is preferred.\n",
		lower)

	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func dataEqual(filename string, data []byte) bool {
	got, err := os.ReadFile(filename)
	return err == nil && bytes.Equal(got, data)
}

func writeFile(name string, data []byte) {
	if dataEqual(name, data) {
		return
	}

	f, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".tmp.*")
	if err != nil {
		log.Fatal(err)
	}
	tmp := f.Name()
	exit := func(err error) {
		os.Remove(tmp)
		log.Panic(err)
	}
	if err := f.Close(); err != nil {
		exit(err)
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		exit(err)
	}
	if err := os.Rename(tmp, name); err != nil {
		exit(err)
	}
}

type TableInfo struct {
	Filename  string `json:"filename"`
	Pairs     int    `json:"pairs"`
	PairsHash string `json:"pairs_hash"`
}

func readTableInfo(name string) (TableInfo, error) {
	var info TableInfo
	data, err := os.ReadFile(name)
	if err != nil {
		return info, err
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, fmt.Errorf("%s: %w", name, err)
	}
	return info, nil
}

func marshalTableInfo(info TableInfo) []byte {
	data, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		log.Panic(err)
	}
	return append(data, '\n')
}

func fileExists(name string) bool {
	_, err := os.Lstat(name)
	return err == nil
}

func modfilePath(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	file, err := modfile.Parse(name, data, nil)
	if err != nil {
		return "", err
	}
	if file == nil || file.Module == nil || file.Module.Mod.Path == "" {
		return "", errors.New("gen: missing module path: " + name)
	}
	return file.Module.Mod.Path, nil
}

// findModuleRoot returns the first directory at or above dir containing
// the go.mod file of module pkgPath.
func findModuleRoot(dir, pkgPath string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	var first error
	for {
		name := filepath.Join(dir, "go.mod")
		if fileExists(name) {
			pkg, err := modfilePath(name)
			if err == nil && pkg == pkgPath {
				return dir, nil
			}
			if err != nil && first == nil {
				first = err
			}
		}
		parent := filepath.Dir(dir)
		if len(parent) >= len(dir) {
			break
		}
		dir = parent
	}
	if first != nil {
		return "", fmt.Errorf("gen: error finding go.mod for module %q: %w", pkgPath, first)
	}
	return "", fmt.Errorf("gen: failed to find go.mod for module %q", pkgPath)
}

func newProgressBar(max int) *progressbar.ProgressBar {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.Default(int64(max), "verifying")
	}
	return progressbar.DefaultSilent(int64(max))
}

func chop(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s
}

func realMain() int {
	dataFile := flag.String("data", "internal/gentables/casepairs.txt", "case pairs file")
	tablesFile := flag.String("out", "internal/tables/tables.go", "generated tables file")
	infoFile := flag.String("info", ".tables.json", "table info file")
	dryRun := flag.Bool("dry-run", false,
		"report if the generated files would change and exit 1 if so")
	skipVerify := flag.Bool("skip-verify", false, "skip verifying the case pairs")
	force := flag.Bool("f", false, "generate tables even if the case pairs have not changed")
	flag.Parse()

	root, err := findModuleRoot(".", modulePath)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.Chdir(root); err != nil {
		log.Fatal(err)
	}

	pairs := readPairs(*dataFile)
	hash := hashPairs(pairs)

	upperToLower, lowerToUpper := buildMaps(pairs)
	cased := rangetable.New(append(
		mapKeys(upperToLower),
		mapKeys(lowerToUpper)...,
	)...)
	log.Printf("gen: %d case pairs: %d upper, %d lower, %d cased ranges",
		len(pairs), len(upperToLower), len(lowerToUpper), len(cased.R16)+len(cased.R32))
	if a := aliases(pairs, func(p casePair) uint16 { return p.Lower }); len(a) != 0 {
		log.Printf("gen: lower case code points with more than one upper case: %04X", a)
	}
	if a := aliases(pairs, func(p casePair) uint16 { return p.Upper }); len(a) != 0 {
		log.Printf("gen: upper case code points with more than one lower case: %04X", a)
	}

	if *skipVerify {
		log.Println("gen: skipping verification")
	} else if err := verifyPairs(pairs, newProgressBar(maxFold+1)); err != nil {
		log.Fatalf("gen: invalid case pairs:\n%v", err)
	}

	info, err := readTableInfo(*infoFile)
	if err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}
	if !*force && fileExists(*tablesFile) && info.PairsHash == hash &&
		info.Pairs == len(pairs) && info.Filename == *tablesFile {
		log.Printf("gen: exiting - no changes:\n"+
			"    pairs:      %d\n"+
			"    pairs_hash: %q\n",
			info.Pairs, chop(info.PairsHash, 8))
		return 0
	}

	isTerm := term.IsTerminal(1)
	ansi := func(color int, s string) string {
		if !isTerm {
			return s
		}
		return fmt.Sprintf("\x1b[%d;m%s\x1b[0;m", color, s)
	}
	log.Printf("gen: updating %s due to the following changes:\n"+
		"    pairs:      %d => %d\n"+
		"    pairs_hash: %s => %s\n\n",
		*tablesFile, info.Pairs, len(pairs),
		ansi(32, strconv.Quote(chop(info.PairsHash, 8))),
		ansi(31, strconv.Quote(chop(hash, 8))))

	src, err := generate(pairs, hash)
	if err != nil {
		log.Panic(err)
	}
	info = TableInfo{
		Filename:  *tablesFile,
		Pairs:     len(pairs),
		PairsHash: hash,
	}
	infoData := marshalTableInfo(info)

	if *dryRun {
		if !dataEqual(*tablesFile, src) || !dataEqual(*infoFile, infoData) {
			log.Printf("%s gen: would change %s "+
				"(remove -dry-run flag to update the generated files)\n",
				ansi(33, "WARN:"), *tablesFile)
			return 1
		}
		return 0
	}

	writeFile(*tablesFile, src)
	writeFile(*infoFile, infoData)
	log.Printf("Successfully generated tables:\n"+
		"    pairs:      %d\n"+
		"    pairs_hash: %q\n",
		info.Pairs, chop(info.PairsHash, 8))
	return 0
}

func mapKeys(m map[uint16]uint16) []rune {
	keys := maps.Keys(m)
	slices.SortFunc(keys, cmpCompare[uint16])
	rs := make([]rune, len(keys))
	for i, k := range keys {
		rs[i] = rune(k)
	}
	return rs
}

func main() {
	if code := realMain(); code != 0 {
		os.Exit(code)
	}
}
