package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

// RuleKind identifies the matcher that classified a line.
type RuleKind int

const (
	// RuleNone means no matcher applied.
	RuleNone RuleKind = iota
	// RuleCheckbox matches "- [ ] task", "* [x] task", "[ ] task", "[todo] task".
	RuleCheckbox
	// RuleBullet matches "- task", "* task", "+ task", "• task", "1. task", "2) task".
	RuleBullet
	// RuleKeyword matches unbulleted lines led by a label ("TODO:"), a modal
	// phrase ("need to"), or an imperative verb ("Review").
	RuleKeyword
)

// String implements fmt.Stringer.
func (k RuleKind) String() string {
	switch k {
	case RuleCheckbox:
		return "checkbox"
	case RuleBullet:
		return "bullet"
	case RuleKeyword:
		return "keyword"
	default:
		return "none"
	}
}

// CandidateLine is the classification of a single line of input.
type CandidateLine struct {
	// IsAction reports whether the line holds an action item.
	IsAction bool
	// Text is the action item with markers removed. Empty unless IsAction.
	Text string
	// Rule is the matcher that fired, RuleNone if nothing matched. A rule can
	// fire without producing an action, e.g. a bare "- [ ]".
	Rule RuleKind
}

// rule is one entry of the ordered matcher list. match receives a trimmed,
// non-empty line and reports whether the rule applies together with the text
// remaining after the rule's markers are removed.
type rule struct {
	kind  RuleKind
	match func(line string) (string, bool)
}

// rules is evaluated in order; the first match wins.
var rules = []rule{
	{kind: RuleCheckbox, match: matchPattern(checkboxPattern)},
	{kind: RuleBullet, match: matchPattern(bulletPattern)},
	{kind: RuleKeyword, match: matchKeyword},
}

// keywordLabels lead a line and are followed by a colon. The label itself is
// stripped: "TODO: call vendor" yields "call vendor".
var keywordLabels = []string{
	"action items",
	"action item",
	"action",
	"follow-up",
	"follow up",
	"followup",
	"next steps",
	"next step",
	"next",
	"to-do",
	"to do",
	"todo",
}

// modalPhrases lead a line that is kept whole: "Need to renew the cert".
var modalPhrases = []string{
	"don't forget to",
	"follow up",
	"have to",
	"must",
	"need to",
	"needs to",
	"remember to",
	"should",
}

// imperativeVerbs, as the first word of a line, mark it as an action that is
// kept whole: "Review the PR".
var imperativeVerbs = map[string]struct{}{
	"add": {}, "book": {}, "call": {}, "check": {}, "confirm": {},
	"create": {}, "design": {}, "document": {}, "draft": {}, "email": {},
	"finalize": {}, "fix": {}, "implement": {}, "investigate": {}, "prepare": {},
	"refactor": {}, "review": {}, "schedule": {}, "send": {}, "share": {},
	"submit": {}, "test": {}, "update": {}, "verify": {}, "write": {},
}

var labelPattern = regexp.MustCompile(`(?i)^(?:` + strings.Join(quoteAll(keywordLabels), "|") + `)\s*:`)

// Classify decides whether line is an action item and, if so, returns its
// text stripped of list markup. It is a pure function of line.
func Classify(line string) CandidateLine {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return CandidateLine{}
	}

	for _, r := range rules {
		rest, ok := r.match(trimmed)
		if !ok {
			continue
		}
		text := stripMarkup(rest)
		// Markup left over from a spaced rule such as "- - -" has no letters
		// or digits.
		if !hasAlnum(text) {
			return CandidateLine{Rule: r.kind}
		}
		return CandidateLine{IsAction: true, Text: text, Rule: r.kind}
	}
	return CandidateLine{}
}

func matchPattern(re *regexp.Regexp) func(string) (string, bool) {
	return func(line string) (string, bool) {
		loc := re.FindStringIndex(line)
		if loc == nil {
			return "", false
		}
		return line[loc[1]:], true
	}
}

func matchKeyword(line string) (string, bool) {
	if loc := labelPattern.FindStringIndex(line); loc != nil {
		return line[loc[1]:], true
	}

	// Questions ("Should we move the launch?") are discussion, not tasks.
	if strings.HasSuffix(line, "?") {
		return "", false
	}

	lower := strings.ReplaceAll(strings.ToLower(line), "’", "'")
	for _, phrase := range modalPhrases {
		if hasWordPrefix(lower, phrase) {
			return line, true
		}
	}
	if _, ok := imperativeVerbs[firstWord(lower)]; ok {
		return line, true
	}
	return "", false
}

// hasWordPrefix reports whether s starts with prefix followed by a word
// boundary, so "must" matches "must ship" but not "mustard".
func hasWordPrefix(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	rest := s[len(prefix):]
	if rest == "" {
		return true
	}
	r := []rune(rest)[0]
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// firstWord returns the leading run of letters and apostrophes in s.
func firstWord(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	if end < 0 {
		return s
	}
	return s[:end]
}

func quoteAll(words []string) []string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return quoted
}
