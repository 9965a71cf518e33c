package domain

// Expected holds the known answers for a day. Empty strings mean "not known yet".
type Expected struct {
	PartOne string `json:"part_one,omitempty"`
	PartTwo string `json:"part_two,omitempty"`
}

func (e Expected) For(p Part) string {
	if p == PartTwo {
		return e.PartTwo
	}
	return e.PartOne
}

// ExpectedAnswers maps puzzle days to their known answers.
type ExpectedAnswers map[Key]Expected

// CheckStatus is the outcome of comparing one computed answer with its expectation.
type CheckStatus string

const (
	CheckMatch     CheckStatus = "match"
	CheckMismatch  CheckStatus = "mismatch"
	CheckUnchecked CheckStatus = "unchecked"
	CheckFailed    CheckStatus = "failed"
)

// PartCheck compares one part.
type PartCheck struct {
	Part     Part        `json:"part"`
	Status   CheckStatus `json:"status"`
	Expected string      `json:"expected,omitempty"`
	Got      string      `json:"got,omitempty"`
	Message  string      `json:"message,omitempty"`
}

// DayCheck groups both part checks for a day.
type DayCheck struct {
	Key   Key         `json:"key"`
	Parts []PartCheck `json:"parts"`
}

// Passed reports whether no part mismatched or failed.
func (c DayCheck) Passed() bool {
	for _, p := range c.Parts {
		if p.Status == CheckMismatch || p.Status == CheckFailed {
			return false
		}
	}
	return true
}

// CompareAnswer checks a computed answer against its expectation.
func CompareAnswer(p Part, expected string, got Answer) PartCheck {
	pc := PartCheck{Part: p, Expected: expected, Got: got.Value}
	switch {
	case got.Error != nil:
		pc.Status = CheckFailed
		pc.Message = got.Error.Message
	case expected == "":
		pc.Status = CheckUnchecked
	case expected == got.Value:
		pc.Status = CheckMatch
	default:
		pc.Status = CheckMismatch
		pc.Message = "expected " + expected + ", got " + got.Value
	}
	return pc
}
