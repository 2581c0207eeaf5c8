package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mhr3/visioner/alphabet"
	"github.com/mhr3/visioner/crack"
)

// shiftSelection is the state behind the interactive form: one shift per
// column, preseeded with the recovered value, so accepting every default
// matches the automatic mode.
type shiftSelection struct {
	estimated int
	diff      float64
	columns   []crack.ColumnReport
	shifts    []int
}

// newShiftSelection estimates the key length, analyzes the columns at
// that length and seeds one shift per column.
func newShiftSelection(cracker *crack.Cracker, seq []int) (*shiftSelection, error) {
	est, scores, err := cracker.EstimateLength(seq)
	if err != nil {
		return nil, err
	}
	cols, err := cracker.Inspect(seq, est)
	if err != nil {
		return nil, err
	}
	sel := &shiftSelection{estimated: est, columns: cols, shifts: make([]int, len(cols))}
	for _, score := range scores {
		if score.Length == est {
			sel.diff = score.Diff
		}
	}
	for i, col := range cols {
		sel.shifts[i] = col.Shift
	}
	return sel, nil
}

// groups builds one select per column over its shift candidates, bound to
// the seeded shifts. Columns without candidates get no group.
func (s *shiftSelection) groups(alph alphabet.Alphabet, expectedIC float64) []*huh.Group {
	var groups []*huh.Group
	for i, col := range s.columns {
		if len(col.Candidates) == 0 {
			continue
		}
		options := make([]huh.Option[int], 0, len(col.Candidates))
		for _, cand := range col.Candidates {
			label := fmt.Sprintf("%s (%dx) -> shift %d (key '%s')",
				string(alph.Rune(cand.Symbol)),
				cand.Count,
				cand.Shift,
				string(alph.Rune(cand.Shift)))
			options = append(options, huh.NewOption(label, cand.Shift))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("Part %d of %d", i+1, len(s.columns))).
				Description(fmt.Sprintf("%d chars, IC %.4f (expected ~%.3f)", col.Length, col.IC, expectedIC)).
				Options(options...).
				Value(&s.shifts[i]),
		))
	}
	return groups
}

// runInteractive estimates the key length, then lets the user pick each
// column shift from the top frequency candidates.
func runInteractive(cracker *crack.Cracker, seq []int) (crack.Result, error) {
	if len(seq) == 0 {
		return cracker.Automatic(seq)
	}
	sel, err := newShiftSelection(cracker, seq)
	if err != nil {
		return crack.Result{}, err
	}
	fmt.Printf("%s %d %s\n",
		styles.Label.Render("Estimated key length:"),
		sel.estimated,
		styles.Muted.Render(fmt.Sprintf("(IC diff %.4f)", sel.diff)))

	if groups := sel.groups(cracker.Alphabet(), cracker.ExpectedIC()); len(groups) > 0 {
		if err := huh.NewForm(groups...).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return crack.Result{}, fmt.Errorf("aborted")
			}
			return crack.Result{}, fmt.Errorf("interactive selection: %w", err)
		}
	}
	return cracker.ManualShifts(seq, sel.shifts)
}
