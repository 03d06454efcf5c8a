// Package drift compares the catalogue's question ids with the ids
// answered in an assessment sheet.
package drift

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Result lists the differences between the catalogue and the answers.
type Result struct {
	// Unanswered ids are in the catalogue but have no row in the sheet.
	Unanswered []string
	// Unknown ids appear in the sheet but not in the catalogue.
	Unknown []string
	// Duplicates are ids answered more than once, sorted.
	Duplicates []string
	// Diff is a line diff from the catalogue order to the answer order.
	Diff string
}

// Clean reports whether the sheet answers every catalogue question exactly once
// and nothing else.
func (r Result) Clean() bool {
	return len(r.Unanswered) == 0 && len(r.Unknown) == 0 && len(r.Duplicates) == 0
}

// Compare diffs catalogue ids against answered ids. Both lists keep their
// own order in Unanswered and Unknown.
func Compare(catalogue, answered []string) Result {
	inCatalogue := make(map[string]bool, len(catalogue))
	for _, id := range catalogue {
		inCatalogue[id] = true
	}
	seen := make(map[string]int, len(answered))
	var res Result
	for _, id := range answered {
		seen[id]++
		if seen[id] == 1 && !inCatalogue[id] {
			res.Unknown = append(res.Unknown, id)
		}
	}
	for id, n := range seen {
		if n > 1 {
			res.Duplicates = append(res.Duplicates, id)
		}
	}
	sort.Strings(res.Duplicates)
	listed := make(map[string]bool, len(catalogue))
	for _, id := range catalogue {
		if seen[id] == 0 && !listed[id] {
			res.Unanswered = append(res.Unanswered, id)
			listed[id] = true
		}
	}
	res.Diff = lineDiff(catalogue, answered)
	return res
}

// lineDiff renders a unified-style diff with one id per line, or "" when
// the lists are identical.
func lineDiff(a, b []string) string {
	textA := joinLines(a)
	textB := joinLines(b)
	if textA == textB {
		return ""
	}

	dmp := diffmatchpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(textA, textB)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lines)

	var out strings.Builder
	out.WriteString("--- catalogue\n+++ answers\n")
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
		}
	}
	return out.String()
}

func joinLines(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return strings.Join(ids, "\n") + "\n"
}

// WriteDiffFile writes the line diff to outPath. If there is no diff, no
// file is created.
func WriteDiffFile(r Result, outPath string) error {
	if r.Diff == "" {
		return nil
	}
	if err := os.WriteFile(outPath, []byte(r.Diff), 0644); err != nil {
		return fmt.Errorf("drift.WriteDiffFile: %w", err)
	}
	return nil
}
