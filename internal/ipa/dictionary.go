// Package ipa reads the local word to IPA dictionary and turns IPA into a
// respelling that Portuguese speakers can read aloud.
package ipa

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

// maxVariants is the highest alternative pronunciation suffix, as in
// "read(3)".
const maxVariants = 3

// Dictionary maps words to IPA transcriptions. It is immutable after
// loading and safe for concurrent use.
type Dictionary struct {
	entries map[string]string
	// headwords keeps the raw first column of every line, in file order.
	headwords []string
}

// Load reads an ipadict file from path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	dict, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("Parse(%s) > %w", path, err)
	}
	return dict, nil
}

// Parse reads lines of "word<whitespace>ipa". Blank lines and lines without
// a transcription are skipped.
func Parse(r io.Reader) (*Dictionary, error) {
	dict := &Dictionary{entries: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		word := strings.ToLower(fields[0])
		dict.entries[word] = fields[1]
		dict.headwords = append(dict.headwords, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan > %w", err)
	}
	return dict, nil
}

// Len returns the number of lines loaded, alternative pronunciations
// included.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.headwords)
}

// Contains reports whether word has a transcription.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.Lookup(word)
	return ok
}

// Lookup returns the transcription of word followed by its alternatives
// "word(1)" to "word(3)", joined with " / ". Alternatives stop at the first
// missing suffix.
func (d *Dictionary) Lookup(word string) (string, bool) {
	if d == nil {
		return "", false
	}
	word = strings.ToLower(strings.TrimSpace(word))
	primary, ok := d.entries[word]
	if !ok {
		return "", false
	}

	variants := []string{primary}
	for i := 1; i <= maxVariants; i++ {
		variant, ok := d.entries[word+"("+strconv.Itoa(i)+")"]
		if !ok {
			break
		}
		variants = append(variants, variant)
	}
	return strings.Join(variants, " / "), true
}

// RandomWord returns the word of a random line, without its variant suffix
// or trailing apostrophe. intN defaults to math/rand/v2.IntN. An empty
// dictionary yields "".
func (d *Dictionary) RandomWord(intN func(int) int) string {
	if d.Len() == 0 {
		return ""
	}
	if intN == nil {
		intN = rand.IntN
	}
	return CleanWord(d.headwords[intN(len(d.headwords))])
}

// CleanWord strips a "(n)" variant suffix or, failing that, a trailing
// apostrophe.
func CleanWord(word string) string {
	if i := strings.IndexByte(word, '('); i >= 0 {
		return word[:i]
	}
	return strings.TrimSuffix(word, "'")
}
