package responses

import (
	"fmt"
)

// UnknownQuestionError indicates an answer for an ID that is not in the catalog.
type UnknownQuestionError struct {
	QuestionID string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("unknown question %q", e.QuestionID)
}

// OutOfRangeError indicates an answer value outside the question's accepted range.
type OutOfRangeError struct {
	QuestionID string
	Value      int
	Min        int
	Max        int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %d for question %q is out of range %d..%d", e.Value, e.QuestionID, e.Min, e.Max)
}

// InvalidInputError indicates a response document that could not be parsed
// or does not conform to the response schema.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid response input: %v", e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }
