// Package evalcase defines the evaluation domain model: test cases, the
// five fixed quality criteria, and per-case evaluation results.
package evalcase

// TestCase is one question with its expected answer. IDs are numeric,
// assigned monotonically within a case set and never reused; the ID is the
// join key for re-evaluation and result replacement.
type TestCase struct {
	ID             int    `json:"id"`
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
}

// Criterion is one of the five fixed quality dimensions. The enumeration
// is closed: criteria are never extended at runtime.
type Criterion string

const (
	Correctness  Criterion = "correctness"
	Coverage     Criterion = "coverage"
	Relevance    Criterion = "relevance"
	Faithfulness Criterion = "faithfulness"
	Clarity      Criterion = "clarity"
)

// Criteria returns the five criteria in their fixed display order.
func Criteria() []Criterion {
	return []Criterion{Correctness, Coverage, Relevance, Faithfulness, Clarity}
}

// CriterionScore is the judge's score in [0,1] for one criterion, with a
// natural-language comment.
type CriterionScore struct {
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

// Verdict is the PASS/FAIL classification.
type Verdict string

const (
	VerdictPass Verdict = "PASS"
	VerdictFail Verdict = "FAIL"
)

// EvaluationResult is the complete outcome of evaluating one test case.
// It is never partially constructed: either every field is populated or
// the result does not exist.
type EvaluationResult struct {
	ID             int                           `json:"id"`
	Question       string                        `json:"question"`
	ExpectedAnswer string                        `json:"expected_answer"`
	ObtainedAnswer string                        `json:"obtained_answer"`
	Scores         map[Criterion]CriterionScore  `json:"scores"`
	AverageScore   float64                       `json:"average_score"`
	FinalVerdict   Verdict                       `json:"final_verdict"`
	FinalComment   string                        `json:"final_comment"`
}

// AverageScore returns the arithmetic mean of the five criterion scores.
// The average is always recomputed locally so that pass/fail consistency
// can be audited independently of anything the judge reports.
func AverageScore(scores map[Criterion]CriterionScore) float64 {
	criteria := Criteria()
	sum := 0.0
	for _, c := range criteria {
		sum += scores[c].Score
	}
	return sum / float64(len(criteria))
}

// ReplaceOrAppend returns a results list where r replaces any entry with
// the same case ID, preserving list order; when no entry matches, r is
// appended. The input slice is not mutated.
func ReplaceOrAppend(results []EvaluationResult, r EvaluationResult) []EvaluationResult {
	updated := make([]EvaluationResult, len(results))
	copy(updated, results)
	for i, existing := range updated {
		if existing.ID == r.ID {
			updated[i] = r
			return updated
		}
	}
	return append(updated, r)
}
