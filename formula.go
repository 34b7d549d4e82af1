package freelance

import (
	"math"
	"unicode"

	"github.com/PaesslerAG/gval"
)

// Row formulas are arithmetic expressions over sibling column values,
// e.g. "qty * rate * (1 - discount / 100)". They are user input and must
// never reach anything resembling code execution: the accepted grammar
// is numeric literals, column identifiers, + - * / and parentheses, and
// every failure mode evaluates to 0 rather than erroring out of a report.

var formulaLanguage = gval.Arithmetic()

// evalFormula evaluates a row formula against the row's numeric column
// values. It returns 0 when the formula is empty, contains a token
// outside the accepted grammar, references an unknown column, fails to
// parse, or produces a non-finite value.
func evalFormula(formula string, vars map[string]float64) float64 {
	if formula == "" || !scanFormula(formula) {
		return 0
	}
	params := make(map[string]any, len(vars))
	for k, v := range vars {
		params[k] = v
	}
	res, err := formulaLanguage.Evaluate(formula, params)
	if err != nil {
		return 0
	}
	v, ok := res.(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// scanFormula vets every token of the formula against the constrained
// grammar before the expression library ever sees it. The library's
// arithmetic language knows more operators (%, **, comparisons) than row
// formulas are allowed to use.
func scanFormula(s string) bool {
	prev := rune(0)
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
		case r == '+' || r == '-' || r == '/' || r == '(' || r == ')':
		case r == '*':
			if prev == '*' { // reject exponentiation
				return false
			}
		case r == '.' || unicode.IsDigit(r):
		case r == '_' || unicode.IsLetter(r):
		default:
			return false
		}
		prev = r
	}
	return true
}
