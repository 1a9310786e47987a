package lexical

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samber/oops"

	"github.com/nihei9/brilltag/brillerr"
	"github.com/nihei9/brilltag/internal/ruleline"
	"github.com/nihei9/brilltag/tag"
)

// targetTagInset is how many tokens from the end of a line the target tag
// sits: the line ends `... TARGET_TAG SCORE`, so the target tag is at
// len(fields)-2. SCORE is a training-time artifact and is never consumed
// by any predicate; faithfully reproducing the original parser, it is not
// stripped from the parameter list either (spec.md §4.7, §6).
const targetTagInset = 2

// ParseFile parses a lexical rule file (spec.md §4.7, §6). Each line's
// predicate identifier is either its 2nd or 3rd whitespace-delimited token
// (the line may optionally start with a leading source-tag token, split off
// into Spec.SourceTag rather than left in Parameters); the 2nd-to-last
// token is the target tag. An unresolvable predicate identifier or an
// unparsable target tag is a file-level fatal error; every token right of the
// predicate identifier other than the target tag becomes the rule's parameter
// list, in order, with the cue always at Parameters[0]. Tokens left of the
// source-tag slot are dropped.
func ParseFile(path string) (Ruleset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &brillerr.LineError{Path: path, Cause: err}
	}
	defer f.Close()

	var rules Ruleset
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		spec, err := parseLine(text)
		if err != nil {
			return nil, &brillerr.LineError{
				Path:  path,
				Line:  lineNo,
				Cause: oops.With("family", "lexical", "line", text).Wrap(err),
			}
		}
		rules = append(rules, spec)
	}
	if err := sc.Err(); err != nil {
		return nil, &brillerr.LineError{Path: path, Line: lineNo, Cause: err}
	}

	return rules, nil
}

func parseLine(text string) (Spec, error) {
	fields, err := ruleline.Parse(text)
	if err != nil {
		return Spec{}, fmt.Errorf("tokenizing rule line: %w", err)
	}

	predicateID, predicateIdx, err := findPredicateID(fields)
	if err != nil {
		return Spec{}, err
	}

	targetTagIdx := len(fields) - targetTagInset
	if targetTagIdx < 0 || targetTagIdx >= len(fields) {
		return Spec{}, fmt.Errorf("line too short to contain a target tag")
	}
	targetTag, ok := tag.Parse(fields[targetTagIdx])
	if !ok {
		return Spec{}, fmt.Errorf("invalid target tag %q", fields[targetTagIdx])
	}

	// The token immediately left of the predicate identifier, when present,
	// names the source tag (spec.md §4.7's "discarded source-tag token" —
	// discarded from the generic parameter list, but not from the rule: a
	// gated predicate reads it back out as its gate). A failure to parse it
	// as a Tag is not a file-level error; it just leaves the rule without a
	// source tag, which renders a gated predicate silently inert at
	// evaluation time (spec.md §7). Anything further left of it is pure
	// filler from the training-time format and is dropped outright.
	sourceTag := tag.ANY
	hasSourceTag := false
	sourceTagIdx := -1
	if predicateIdx >= 1 {
		sourceTagIdx = predicateIdx - 1
		if t, ok := tag.Parse(fields[sourceTagIdx]); ok {
			sourceTag, hasSourceTag = t, true
		}
	}

	params := make([]string, 0, len(fields))
	for i, f := range fields {
		if i == predicateIdx || i == targetTagIdx || i == sourceTagIdx || i < sourceTagIdx {
			continue
		}
		params = append(params, f)
	}

	return Spec{
		PredicateID:  predicateID,
		SourceTag:    sourceTag,
		HasSourceTag: hasSourceTag,
		TargetTag:    targetTag,
		Parameters:   params,
	}, nil
}

// findPredicateID probes field index 1, then 2, for a resolvable predicate
// identifier, mirroring the original parser's tolerance of an optional
// leading discarded source-tag token.
func findPredicateID(fields []string) (PredicateID, int, error) {
	if len(fields) > 1 {
		if id, ok := ParsePredicateID(fields[1]); ok {
			return id, 1, nil
		}
	}
	if len(fields) > 2 {
		if id, ok := ParsePredicateID(fields[2]); ok {
			return id, 2, nil
		}
	}
	return 0, 0, fmt.Errorf("no resolvable predicate identifier at field 1 or 2")
}
