// Package provider holds the failure taxonomy shared by the generation
// clients. Adapters return *Error; callers decide on retries with
// IsRetryable and RetryAfter without knowing which backend produced it.
package provider

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Kind classifies a generation failure.
type Kind string

const (
	KindTransport         Kind = "transport"
	KindHTTPStatus        Kind = "http_status"
	KindRateLimited       Kind = "rate_limited"
	KindMalformedResponse Kind = "malformed_response"
)

// Sentinels matched with errors.Is against an *Error of the same kind.
var (
	ErrTransport         = errors.New("transport failure")
	ErrHTTPStatus        = errors.New("unexpected http status")
	ErrRateLimited       = errors.New("rate limited")
	ErrMalformedResponse = errors.New("malformed response")
)

// Error is a classified generation failure.
type Error struct {
	Provider   string
	Kind       Kind
	StatusCode int
	// RetryAfter is the upstream hint, zero when absent.
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Provider)
	b.WriteString(": ")
	b.WriteString(string(e.Kind))
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindTransport:
		return ErrTransport
	case KindRateLimited:
		return ErrRateLimited
	case KindMalformedResponse:
		return ErrMalformedResponse
	default:
		return ErrHTTPStatus
	}
}

// HTTPStatusCode returns the upstream status, zero for transport failures.
func (e *Error) HTTPStatusCode() int { return e.StatusCode }

// Retryable reports whether the same request may succeed later.
// Malformed responses never retry; a model that returned bad JSON once is
// not expected to do better on an identical prompt.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTransport, KindRateLimited:
		return true
	case KindHTTPStatus:
		return IsRetryableHTTPStatus(e.StatusCode)
	default:
		return false
	}
}

// IsRetryableHTTPStatus reports 408, 429 and 5xx as transient.
func IsRetryableHTTPStatus(code int) bool {
	if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
		return true
	}
	return code >= 500 && code <= 599
}

// IsRetryable reports whether err is a retryable *Error.
func IsRetryable(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Retryable()
	}
	return false
}

// RetryAfter returns the upstream Retry-After hint carried by err, or zero.
func RetryAfter(err error) time.Duration {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.RetryAfter
	}
	return 0
}

// Transport wraps a network-level failure.
func Transport(providerName string, err error) *Error {
	return &Error{Provider: providerName, Kind: KindTransport, Err: err}
}

// Malformed wraps a response that arrived but could not be used.
func Malformed(providerName string, err error) *Error {
	return &Error{Provider: providerName, Kind: KindMalformedResponse, Err: err}
}

// FromStatus classifies a non-2xx response. body is a short excerpt for logs.
func FromStatus(providerName string, code int, header http.Header, body string) *Error {
	e := &Error{Provider: providerName, Kind: KindHTTPStatus, StatusCode: code}
	if code == http.StatusTooManyRequests {
		e.Kind = KindRateLimited
	}
	if header != nil {
		e.RetryAfter = ParseRetryAfter(header.Get("Retry-After"), time.Now())
	}
	if body != "" {
		e.Err = errors.New(body)
	}
	return e
}

// ParseRetryAfter accepts delta-seconds or an HTTP-date. Unparseable or
// past values yield zero.
func ParseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := t.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

// Excerpt trims a response body for inclusion in an error message.
func Excerpt(body []byte, max int) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
