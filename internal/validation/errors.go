package validation

import (
	"errors"
	"fmt"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
)

var (
	// ErrNilForest indicates a validator was handed a nil forest.
	ErrNilForest = errors.New("nil forest")

	// ErrNotATree indicates the same node value is reachable twice,
	// either shared between parents or linked back to an ancestor.
	ErrNotATree = errors.New("node reachable more than once")

	// ErrNilIndex indicates an indexed check was run without an index.
	ErrNilIndex = errors.New("nil index")
)

// ContractError reports a caller bug rather than a BOM defect. Validators
// panic with it instead of folding it into a Result.
type ContractError struct {
	Op  string
	Err error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: input contract violated: %v", e.Op, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// MoveRejectedError is returned by ApplyMove when the move fails validation.
type MoveRejectedError struct {
	Code    IssueCode
	Message string
	Result  Result
}

func (e *MoveRejectedError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func requireForest(op string, forest domain.Forest) {
	if forest == nil {
		panic(&ContractError{Op: op, Err: ErrNilForest})
	}
}
