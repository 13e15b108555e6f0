package errors

// ErrorCode identifies an application error category. Codes are stable and
// returned to API clients, so values must not be reordered.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Video resolution and metadata
	ErrorCode_VIDEO_UNSUPPORTED_PLATFORM ErrorCode = 2000
	ErrorCode_VIDEO_TOO_LONG             ErrorCode = 2001
	ErrorCode_VIDEO_METADATA_FAILED      ErrorCode = 2002

	// Transcription
	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = 3000

	// Script generation
	ErrorCode_SCRIPT_GENERATION_FAILED ErrorCode = 4000
	ErrorCode_SCRIPT_EMPTY_COMPLETION  ErrorCode = 4001

	// Speech synthesis
	ErrorCode_SPEECH_TEXT_EMPTY    ErrorCode = 5000
	ErrorCode_SPEECH_TEXT_TOO_LONG ErrorCode = 5001
	ErrorCode_SPEECH_PROVIDER      ErrorCode = 5002

	// Video rendering
	ErrorCode_RENDER_NO_VALID_SOURCES ErrorCode = 6000
	ErrorCode_RENDER_SUBMIT_FAILED    ErrorCode = 6001
	ErrorCode_RENDER_FAILED           ErrorCode = 6002
	ErrorCode_RENDER_TIMED_OUT        ErrorCode = 6003
	ErrorCode_RENDER_NOT_FOUND        ErrorCode = 6004

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 7000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 7001
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 7002
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                         "OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_VIDEO_UNSUPPORTED_PLATFORM:      "VIDEO_UNSUPPORTED_PLATFORM",
	ErrorCode_VIDEO_TOO_LONG:                  "VIDEO_TOO_LONG",
	ErrorCode_VIDEO_METADATA_FAILED:           "VIDEO_METADATA_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:            "TRANSCRIPTION_FAILED",
	ErrorCode_SCRIPT_GENERATION_FAILED:        "SCRIPT_GENERATION_FAILED",
	ErrorCode_SCRIPT_EMPTY_COMPLETION:         "SCRIPT_EMPTY_COMPLETION",
	ErrorCode_SPEECH_TEXT_EMPTY:               "SPEECH_TEXT_EMPTY",
	ErrorCode_SPEECH_TEXT_TOO_LONG:            "SPEECH_TEXT_TOO_LONG",
	ErrorCode_SPEECH_PROVIDER:                 "SPEECH_PROVIDER",
	ErrorCode_RENDER_NO_VALID_SOURCES:         "RENDER_NO_VALID_SOURCES",
	ErrorCode_RENDER_SUBMIT_FAILED:            "RENDER_SUBMIT_FAILED",
	ErrorCode_RENDER_FAILED:                   "RENDER_FAILED",
	ErrorCode_RENDER_TIMED_OUT:                "RENDER_TIMED_OUT",
	ErrorCode_RENDER_NOT_FOUND:                "RENDER_NOT_FOUND",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
