package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Embedded default lists so the solver runs without any files configured.
// answers.txt is the curated secret pool, allowed.txt holds extra valid
// guesses beyond the answers.

//go:embed answers.txt
var embeddedAnswers string

//go:embed allowed.txt
var embeddedAllowed string

// Dictionary holds the two word pools the solver uses: the curated answer
// list (likely secrets) and the allowed guess list (always a superset of the
// answers). The two may be loaded from the same source, in which case they
// alias the same set.
type Dictionary struct {
	answers    []Word
	allowed    []Word
	allowedSet map[Word]struct{}
}

// New builds a Dictionary from parsed word lists. The allowed pool is the
// union of answers and extra guesses, sorted for deterministic iteration.
func New(answers, extra []Word) *Dictionary {
	set := make(map[Word]struct{}, len(answers)+len(extra))
	for _, w := range answers {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		set[w] = struct{}{}
	}

	allowed := make([]Word, 0, len(set))
	for w := range set {
		allowed = append(allowed, w)
	}
	sort.Slice(allowed, func(i, j int) bool { return allowed[i] < allowed[j] })

	ans := make([]Word, len(answers))
	copy(ans, answers)
	sort.Slice(ans, func(i, j int) bool { return ans[i] < ans[j] })

	return &Dictionary{
		answers:    ans,
		allowed:    allowed,
		allowedSet: set,
	}
}

// Embedded returns a Dictionary built from the compiled-in default lists.
func Embedded() (*Dictionary, error) {
	answers, err := parseLines(embeddedAnswers)
	if err != nil {
		return nil, fmt.Errorf("embedded answers: %w", err)
	}
	extra, err := parseLines(embeddedAllowed)
	if err != nil {
		return nil, fmt.Errorf("embedded allowed: %w", err)
	}
	return New(answers, extra), nil
}

// Load reads word lists from files. If allowedPath is empty the answer list
// doubles as the guess list. If answersPath is empty the embedded answers are
// kept and only the guess pool is replaced.
func Load(answersPath, allowedPath string) (*Dictionary, error) {
	answers, err := parseLines(embeddedAnswers)
	if err != nil {
		return nil, fmt.Errorf("embedded answers: %w", err)
	}
	var extra []Word

	if answersPath != "" {
		answers, err = readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
	}
	if allowedPath != "" {
		extra, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
	}
	return New(answers, extra), nil
}

// Answers returns the curated secret pool.
func (d *Dictionary) Answers() []Word { return d.answers }

// Allowed returns the full guess pool (answers included).
func (d *Dictionary) Allowed() []Word { return d.allowed }

// IsAllowed reports whether w is a valid guess.
func (d *Dictionary) IsAllowed(w Word) bool {
	_, ok := d.allowedSet[w]
	return ok
}

func readWordFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	defer f.Close()

	var out []Word
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("word list %s: %w", path, err)
		}
		out = append(out, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("word list %s: empty", path)
	}
	return out, nil
}

func parseLines(blob string) ([]Word, error) {
	var out []Word
	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := Parse(line)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
