package contextual

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

// ParseFile parses a contextual rule file (spec.md §4.7, §6). Each line is
// `SRC_TAG TGT_TAG PRED_ID [param …]`. A line whose source or target tag
// fails to parse is skipped silently — unlike the lexical parser, this is
// not a file-level error, preserving the original asymmetry (spec.md §4.7,
// §7). An unresolvable predicate identifier is always a file-level fatal
// error. Parsed rules are bucketed by source tag, in file order.
func ParseFile(path string) (Ruleset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &brillerr.LineError{Path: path, Cause: err}
	}
	defer f.Close()

	rules := Ruleset{}
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		spec, skip, err := parseLine(text)
		if err != nil {
			return nil, &brillerr.LineError{
				Path:  path,
				Line:  lineNo,
				Cause: oops.With("family", "contextual", "line", text).Wrap(err),
			}
		}
		if skip {
			continue
		}
		rules[spec.SourceTag] = append(rules[spec.SourceTag], spec)
	}
	if err := sc.Err(); err != nil {
		return nil, &brillerr.LineError{Path: path, Line: lineNo, Cause: err}
	}

	return rules, nil
}

const minContextualFields = 3

// parseLine returns (spec, skip, err). skip is true when the line should
// be silently dropped (bad source or target tag); err is non-nil only for
// the file-level fatal cases.
func parseLine(text string) (Spec, bool, error) {
	fields, err := ruleline.Parse(text)
	if err != nil {
		return Spec{}, false, fmt.Errorf("tokenizing rule line: %w", err)
	}
	if len(fields) < minContextualFields {
		return Spec{}, true, nil
	}

	sourceTag, ok := tag.Parse(fields[0])
	if !ok {
		return Spec{}, true, nil
	}
	targetTag, ok := tag.Parse(fields[1])
	if !ok {
		return Spec{}, true, nil
	}

	predicateID, ok := ParsePredicateID(fields[2])
	if !ok {
		return Spec{}, false, fmt.Errorf("unresolvable predicate identifier %q", fields[2])
	}

	return Spec{
		PredicateID: predicateID,
		SourceTag:   sourceTag,
		TargetTag:   targetTag,
		Parameters:  fields[3:],
	}, false, nil
}
