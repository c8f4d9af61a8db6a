// SPDX-License-Identifier: MIT

package analysis

// Verdict is the mode-specific conclusion of a completed run.
type Verdict string

// STATUS verdicts mirror deficit.Status.
const (
	VerdictInfeasible    Verdict = "infeasible"
	VerdictContradictory Verdict = "contradictory"
	VerdictCalculation   Verdict = "calculation"
	VerdictMixed         Verdict = "mixed"
	VerdictOptimization  Verdict = "optimization"
)

// PAIR verdicts.
const (
	VerdictPairIncorrect      Verdict = "pair-incorrect"
	VerdictPairCorrect        Verdict = "pair-correct"
	VerdictPairNeedsCriterion Verdict = "pair-needs-criterion"
)

// LINK verdicts.
const (
	VerdictInterdependent Verdict = "interdependent"
	VerdictIndependent    Verdict = "independent"
)

var verdictMessages = map[Verdict]string{
	VerdictInfeasible: "The problem is infeasible: the deficit is positive for at least one set of operations.",
	VerdictContradictory: "The problem is contradictory: the fixed known parameters over-determine " +
		"at least one set of operations.",
	VerdictCalculation: "The problem is a calculation problem: a set of operations with d(L) = 0 " +
		"covers every required parameter.",
	VerdictMixed: "The problem is mixed: the required parameters can be calculated, " +
		"the remaining unknowns still need a criterion.",
	VerdictOptimization: "The problem is an optimization problem: no set of operations with d(L) = 0 " +
		"covers the required parameters, so a criterion is needed.",
	VerdictPairIncorrect: "The pair (I, T) is incorrect: the model structure makes the problem infeasible, " +
		"no calculation scheme exists.",
	VerdictPairCorrect: "The pair (I, T) is correct: a calculation model can be built from the given I.",
	VerdictPairNeedsCriterion: "The pair (I, T) is admissible, but the problem remains an optimization " +
		"problem and needs a criterion.",
	VerdictInterdependent: "The operations are linked: a positive deficit indicates a structural dependency.",
	VerdictIndependent:    "No information link detected: no set of operations has a positive deficit.",
}

// Message returns the human-readable conclusion, or "" for an unknown verdict.
func (v Verdict) Message() string { return verdictMessages[v] }
