package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for every way a readable request can fail.
const (
	ErrCodeInvalidURL          = "INVALID_URL"
	ErrCodeFetchTransport      = "FETCH_TRANSPORT"
	ErrCodeFetchBodyRead       = "FETCH_BODY_READ"
	ErrCodeExtractionSerialize = "EXTRACTION_SERIALIZE"
	ErrCodeExtractionEncoding  = "EXTRACTION_ENCODING"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// PageError is a request failure that is shown to the reader as a rendered
// HTML page. Title and Header fill the page's title and header placeholders;
// Message is the body text.
type PageError struct {
	Code    string
	Title   string
	Header  string
	Message string
	Err     error // wrapped original error
}

func (e *PageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error.
func (e *PageError) Status() int {
	switch e.Code {
	case ErrCodeInvalidURL,
		ErrCodeFetchTransport,
		ErrCodeFetchBodyRead,
		ErrCodeExtractionSerialize,
		ErrCodeExtractionEncoding:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

const notAnArticle = "Couldn't render article. (It is an article, right?)"

// NewInvalidURLError reports a request path that is not an absolute URL.
func NewInvalidURLError(err error) *PageError {
	return &PageError{
		Code:    ErrCodeInvalidURL,
		Title:   "Invalid URL",
		Header:  "Check if the path represents a valid URL",
		Message: err.Error(),
		Err:     err,
	}
}

// NewFetchTransportError reports a failed outbound request.
func NewFetchTransportError(err error) *PageError {
	return &PageError{
		Code:    ErrCodeFetchTransport,
		Title:   "Yikes!",
		Header:  notAnArticle,
		Message: "Can't fetch URL: " + err.Error(),
		Err:     err,
	}
}

// NewFetchBodyReadError reports a response body that could not be read as text.
func NewFetchBodyReadError(err error) *PageError {
	return &PageError{
		Code:    ErrCodeFetchBodyRead,
		Title:   "Yikes!",
		Header:  notAnArticle,
		Message: "Can't fetch response body text: " + err.Error(),
		Err:     err,
	}
}

// NewExtractionSerializeError reports a content tree that could not be
// extracted or serialized.
func NewExtractionSerializeError(err error) *PageError {
	return &PageError{
		Code:    ErrCodeExtractionSerialize,
		Title:   "Ouch",
		Header:  "Couldn't extract content from the article. (It is an article, right?)",
		Message: "Can't serialize content: " + err.Error(),
		Err:     err,
	}
}

// NewExtractionEncodingError reports serialized content that is not UTF-8.
func NewExtractionEncodingError(err error) *PageError {
	return &PageError{
		Code:    ErrCodeExtractionEncoding,
		Title:   "Humm...",
		Header:  "Invalid UTF-8 in article content",
		Message: "Can't serialize content: " + err.Error(),
		Err:     err,
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *PageError {
	return &PageError{
		Code:    ErrCodeInternal,
		Title:   "Internal error",
		Header:  "Something went wrong on our side",
		Message: err.Error(),
		Err:     err,
	}
}

// AsPageError converts any error into a *PageError, treating errors that are
// not already PageErrors as internal failures.
func AsPageError(err error) *PageError {
	var pe *PageError
	if errors.As(err, &pe) {
		return pe
	}
	return NewInternalError(err)
}
