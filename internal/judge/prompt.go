package judge

import "fmt"

// Verbosity selects how long the judge's comments should be. It changes
// the textual instruction and the token budget, never the reply schema.
type Verbosity string

const (
	VerbosityBrief    Verbosity = "brief"
	VerbosityDetailed Verbosity = "detailed"
)

// Token budgets per verbosity mode.
const (
	maxTokensBrief    = 600
	maxTokensDetailed = 1200
)

// MaxTokens returns the output token budget for the verbosity mode.
func (v Verbosity) MaxTokens() int {
	if v == VerbosityDetailed {
		return maxTokensDetailed
	}
	return maxTokensBrief
}

const (
	commentInstructionBrief    = "a short comment (one or two sentences)"
	commentInstructionDetailed = "a detailed comment explaining the score"
)

const promptTemplate = `You are an impartial evaluator of question-answering systems.

You will be given a question, the expected answer, and the answer actually obtained from the system under test. Judge ONLY how well the obtained answer matches the expected answer. Do not use outside world knowledge and do not fact-check beyond this comparison: the expected answer is the sole ground truth.

Score the obtained answer on exactly these five criteria, each as a real number between 0.0 and 1.0, each accompanied by %s:

- correctness: does the obtained answer state the same facts as the expected answer?
- coverage: does it cover all the points of the expected answer?
- relevance: does it address the question without digressing?
- faithfulness: does it avoid claims absent from the expected answer?
- clarity: is it clearly and coherently expressed?

Then give a final verdict, PASS or FAIL, with a final comment.

Reply with a single JSON object and nothing else, using exactly these keys:
{"correctness_score": 0.0, "correctness_comment": "...", "coverage_score": 0.0, "coverage_comment": "...", "relevance_score": 0.0, "relevance_comment": "...", "faithfulness_score": 0.0, "faithfulness_comment": "...", "clarity_score": 0.0, "clarity_comment": "...", "final_verdict": "PASS", "final_comment": "..."}

QUESTION: %s
EXPECTED ANSWER: %s
OBTAINED ANSWER: %s`

// BuildPrompt renders the grading prompt for one test case.
func BuildPrompt(question, expected, obtained string, verbosity Verbosity) string {
	comment := commentInstructionBrief
	if verbosity == VerbosityDetailed {
		comment = commentInstructionDetailed
	}
	return fmt.Sprintf(promptTemplate, comment, question, expected, obtained)
}
