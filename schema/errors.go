package schema

import "errors"

// Failure kinds of the pipeline. Every one of them is fatal for the whole run;
// wrapped errors keep the kind reachable through errors.Is.
var (
	ErrUnreadableFile       = errors.New("unreadable file")
	ErrCorruptStream        = errors.New("corrupt compressed stream")
	ErrMalformedXML         = errors.New("malformed xml")
	ErrMissingSizeAttribute = errors.New("missing size attribute")
	ErrMalformedTimestamp   = errors.New("malformed timestamp")
)

// FailureKind returns the short name of the failure kind carried by err,
// or an empty string when err is not a pipeline failure.
func FailureKind(err error) string {
	for _, kind := range []error{
		ErrUnreadableFile,
		ErrCorruptStream,
		ErrMalformedXML,
		ErrMissingSizeAttribute,
		ErrMalformedTimestamp,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ""
}
