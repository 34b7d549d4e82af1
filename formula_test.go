package freelance

import "testing"

func TestEvalFormula(t *testing.T) {
	vars := map[string]float64{"qty": 3, "rate": 250, "discount": 10}

	cases := []struct {
		formula string
		want    float64
	}{
		{"qty * rate", 750},
		{"qty * rate * (1 - discount / 100)", 675},
		{"2 + 3 * 4", 14},     // precedence
		{"(2 + 3) * 4", 20},   // parentheses
		{"rate - qty", 247},
		{"", 0},               // empty formula
		{"qty * missing", 0},  // unresolved reference
		{"qty * ", 0},         // parse failure
		{"rate / 0", 0},       // non-finite result
		{"2 ** 3", 0},         // exponentiation is not part of the grammar
		{"qty % 2", 0},        // neither is modulo
		{"qty > 1", 0},        // nor comparisons
		{`qty; rate`, 0},      // nor anything else
	}
	for _, c := range cases {
		if got := evalFormula(c.formula, vars); got != c.want {
			t.Errorf("evalFormula(%q) = %v, want %v", c.formula, got, c.want)
		}
	}
}

func TestEvalFormulaNoVars(t *testing.T) {
	if got := evalFormula("1 + 2", nil); got != 3 {
		t.Errorf("evalFormula with no vars = %v, want 3", got)
	}
}
