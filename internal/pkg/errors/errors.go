package errors

import "errors"

var (
	ErrInvalid           = errors.New("invalid input")
	ErrFileTooLarge      = errors.New("file too large")
	ErrFileType          = errors.New("file type not allowed")
	ErrNoTextFound       = errors.New("no text found")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrDocumentTooLarge  = errors.New("document too large")
	ErrCorruptDocument   = errors.New("corrupt document")
	ErrPromptRejected    = errors.New("prompt rejected")
	ErrCapability        = errors.New("capability failure")
)

// IsClientFault reports whether err should surface as a 4xx response
// rather than a generic server error.
func IsClientFault(err error) bool {
	for _, target := range []error{
		ErrInvalid,
		ErrFileTooLarge,
		ErrFileType,
		ErrNoTextFound,
		ErrUnsupportedFormat,
		ErrDocumentTooLarge,
		ErrCorruptDocument,
		ErrPromptRejected,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
