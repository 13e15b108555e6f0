package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Video resolution and metadata errors

// ErrUnsupportedPlatform rejects URLs that match no known platform shape.
// Terminal for the reference: no pipeline stage runs after this.
func ErrUnsupportedPlatform(url string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VIDEO_UNSUPPORTED_PLATFORM,
		Message:  "Unsupported video platform",
	}.WithDetail("url", url)
}

// ErrVideoTooLong is a validation rejection, deliberately distinct from a
// metadata transport failure so the client can show a different reason.
func ErrVideoTooLong(durationSeconds, maxSeconds int) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_VIDEO_TOO_LONG,
		Message:  fmt.Sprintf("Video exceeds the %d second limit", maxSeconds),
	}.WithDetail("duration_seconds", fmt.Sprintf("%d", durationSeconds))
}

func ErrMetadataFetchFailed(platform string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_VIDEO_METADATA_FAILED,
		Message:  fmt.Sprintf("Failed to fetch %s metadata", platform),
	}
}

// Transcription errors

func ErrTranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_TRANSCRIPTION_FAILED,
		Message:  "Video transcription failed",
	}
}

// Script generation errors

func ErrScriptGenerationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SCRIPT_GENERATION_FAILED,
		Message:  "Failed to generate script",
	}
}

func ErrEmptyCompletion() AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SCRIPT_EMPTY_COMPLETION,
		Message:  "Language model returned no script text",
	}
}

// Speech synthesis errors

func ErrSpeechTextEmpty() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_SPEECH_TEXT_EMPTY,
		Message:  "Text cannot be empty",
	}
}

func ErrSpeechTextTooLong(maxChars int) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_SPEECH_TEXT_TOO_LONG,
		Message:  fmt.Sprintf("Text too long (max %d characters)", maxChars),
	}
}

func ErrSpeechProvider(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SPEECH_PROVIDER,
		Message:  "Speech synthesis provider error",
	}
}

// Render errors

// ErrNoValidSources fails a render request fast when every source reference
// failed media resolution.
func ErrNoValidSources() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_RENDER_NO_VALID_SOURCES,
		Message:  "No valid video sources to render",
	}
}

func ErrRenderSubmitFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_RENDER_SUBMIT_FAILED,
		Message:  "Renderer rejected the render request",
	}
}

func ErrRenderFailed(renderID string) AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_RENDER_FAILED,
		Message:  "Video rendering failed",
	}.WithDetail("render_id", renderID)
}

// ErrRenderTimedOut is terminal but distinct from ErrRenderFailed: the
// renderer never reported a final state within the polling budget.
func ErrRenderTimedOut(renderID string, attempts int) AppError {
	return AppError{
		HTTPCode: http.StatusGatewayTimeout,
		Code:     ErrorCode_RENDER_TIMED_OUT,
		Message:  "Video render timed out",
	}.WithDetail("render_id", renderID).
		WithDetail("attempts", fmt.Sprintf("%d", attempts))
}

func ErrRenderNotFound(renderID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_RENDER_NOT_FOUND,
		Message:  "Render job not found",
	}.WithDetail("render_id", renderID)
}

// Integration Errors

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_EXTERNAL_API_FAILED,
		Message:  fmt.Sprintf("External API call failed: %s", service),
	}
}
