package validation

import "fmt"

// IssueCode identifies the category of a validation finding so callers can
// match on kind instead of message wording.
type IssueCode string

const (
	CodeSelfReference      IssueCode = "SELF_REFERENCE"
	CodeNotFound           IssueCode = "NOT_FOUND"
	CodeCycle              IssueCode = "CYCLE"
	CodeTypeCompatibility  IssueCode = "TYPE_COMPATIBILITY"
	CodeDuplicateID        IssueCode = "DUPLICATE_ID"
	CodeInvariantViolation IssueCode = "INVARIANT_VIOLATION"
	CodeUnknownKind        IssueCode = "UNKNOWN_KIND"

	CodeDepth IssueCode = "DEPTH"
)

// Issue is a single error or warning produced by a validator.
type Issue struct {
	Code    IssueCode `json:"code"`
	NodeID  string    `json:"node_id,omitempty"`
	Message string    `json:"message"`
}

func (i Issue) String() string {
	return i.Message
}

func newIssue(code IssueCode, nodeID, format string, args ...any) Issue {
	return Issue{Code: code, NodeID: nodeID, Message: fmt.Sprintf(format, args...)}
}
