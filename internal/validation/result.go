package validation

// Result is the outcome of one validation call. Errors block the move or
// save; warnings are advisory and never affect IsValid.
type Result struct {
	IsValid  bool    `json:"is_valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

func newResult() Result {
	return Result{IsValid: true, Errors: []Issue{}, Warnings: []Issue{}}
}

func (r *Result) addError(issue Issue) {
	r.Errors = append(r.Errors, issue)
	r.IsValid = false
}

func (r *Result) addWarning(issue Issue) {
	r.Warnings = append(r.Warnings, issue)
}

// ErrorMessages returns the human-readable error messages in report order.
func (r Result) ErrorMessages() []string {
	return messages(r.Errors)
}

// WarningMessages returns the human-readable warning messages in report order.
func (r Result) WarningMessages() []string {
	return messages(r.Warnings)
}

// HasCode reports whether any error or warning carries code.
func (r Result) HasCode(code IssueCode) bool {
	return r.CountCode(code) > 0
}

// CountCode returns how many errors and warnings carry code.
func (r Result) CountCode(code IssueCode) int {
	n := 0
	for _, i := range r.Errors {
		if i.Code == code {
			n++
		}
	}
	for _, i := range r.Warnings {
		if i.Code == code {
			n++
		}
	}
	return n
}

func messages(issues []Issue) []string {
	if len(issues) == 0 {
		return nil
	}
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Message
	}
	return out
}
