package extraction

// ExtractHeuristic splits text into lines, classifies each, and returns the
// stripped text of every action line in source order. It never fails: input
// with no recognizable action lines, including the empty string, yields an
// empty Result.
func ExtractHeuristic(text string) Result {
	items := Result{}
	for _, line := range splitLines(text) {
		if c := Classify(line); c.IsAction {
			items = append(items, c.Text)
		}
	}
	return items
}
