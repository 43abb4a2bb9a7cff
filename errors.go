package wiki

import (
	"errors"
)

var (
	// ErrUnknownEvent reports an event kind name outside the vocabulary.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrUnknownListener reports a chain stage name that Conf cannot build.
	ErrUnknownListener = errors.New("unknown listener")
	// ErrSyntax reports a malformed JSON event stream.
	ErrSyntax = errors.New("syntax error")
)
