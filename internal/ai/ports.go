package ai

import "context"

// Input — one analysis request. Text, image, or both; at least one is set.
type Input struct {
	Text string

	Image     []byte
	ImageMIME string
}

// State of a generation attempt. The provider call never returns a raw SDK
// error to callers: every outcome lands in exactly one of these.
type State int

const (
	StateSuccess State = iota
	StateBlocked       // prompt refused by the provider's safety filter
	StateEmpty         // call succeeded but carried no text
	StateError
)

// ErrorKind — closed classification of provider failures.
type ErrorKind int

const (
	KindInvalidArgument ErrorKind = iota
	KindUnauthenticated
	KindRateLimited
	KindUnknown
)

// Result — tagged outcome of a generation call.
// Text is set only for StateSuccess; Kind and Err only for StateError.
type Result struct {
	State State
	Text  string
	Kind  ErrorKind
	Err   error
}

// AI — external intelligence, knows nothing about LINE or HTTP.
type AI interface {
	Generate(ctx context.Context, instruction string, input Input) Result
}
