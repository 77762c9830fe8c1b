/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httperr

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/httperr/apis"
	"dirpx.dev/httperr/codec"
	"dirpx.dev/httperr/status"
)

// Error is the single error type of httperr.
//
// It carries:
//   - an optional cause: the lower-level failure this error reports;
//   - the encoded message: "status:domain:message", the only place the
//     status, domain and message are stored;
//   - a trace of the call stack captured at construction.
//
// An Error is never modified after construction, so it can be shared and
// read from any number of goroutines.
type Error struct {
	cause   error
	message string
	trace   Trace
}

var (
	_ apis.PartsProvider   = (*Error)(nil)
	_ apis.DetailsProvider = (*Error)(nil)
	_ apis.CausedError     = (*Error)(nil)
)

// New returns an Error with the given encoded message and no cause.
//
// Usage:
//
//	return httperr.New("404:Catalog:no such item")
//	return httperr.New(httperr.Msg(403, "Auth", "token expired"))
func New(message string, opts ...Option) *Error {
	return newError(nil, message, opts)
}

// Errorf is New with a fmt-formatted message.
func Errorf(format string, args ...any) *Error {
	return newError(nil, fmt.Sprintf(format, args...), nil)
}

// Wrap returns an Error that reports err as its cause. A nil err produces an
// Error without a cause; use Context when nil should stay nil.
//
//	n, err := strconv.Atoi(s)
//	if err != nil {
//	    return httperr.Wrap(err, "400:Input:not a number")
//	}
func Wrap(err error, message string, opts ...Option) *Error {
	return newError(err, message, opts)
}

// Wrapf is Wrap with a fmt-formatted message.
func Wrapf(err error, format string, args ...any) *Error {
	return newError(err, fmt.Sprintf(format, args...), nil)
}

// newError must be called directly from an exported constructor so that the
// captured trace starts at the constructor's caller.
func newError(cause error, message string, opts []Option) *Error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cause != nil {
		cause = o.cause
	}
	e := &Error{cause: cause, message: message}
	if !o.noTrace {
		e.trace = captureTrace(2 + o.skip)
	}
	return e
}

// Parts decodes the encoded message into its message, domain and status.
// The decoding never fails; see package codec for the defaults applied.
func (e *Error) Parts() (message, domain string, st status.Status) {
	p := codec.Decode(e.message)
	return p.Message, p.Domain, p.Status
}

// Message returns the decoded human-readable message.
func (e *Error) Message() string { return codec.Decode(e.message).Message }

// Domain returns the decoded application domain.
func (e *Error) Domain() string { return codec.Decode(e.message).Domain }

// Status returns the decoded HTTP status.
func (e *Error) Status() status.Status { return codec.Decode(e.message).Status }

// Encoded returns the encoded message exactly as it was supplied.
func (e *Error) Encoded() string { return e.message }

// Trace returns the call stack captured at construction. It is nil for
// errors built with WithoutTrace.
func (e *Error) Trace() Trace { return e.trace }

// Error implements the built-in error interface.
//
// The format is:
//
//	<message>: (Domain: <domain>, HTTP status: <status>)
//
// e.g. "no such item: (Domain: Catalog, HTTP status: 404 Not Found)".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	p := codec.Decode(e.message)
	return p.Message + ": (Domain: " + p.Domain + ", HTTP status: " + p.Status.String() + ")"
}

// Details returns Error() followed by one "\n[<cause>]" line for every link
// of the cause chain, outermost first. It is meant for logs.
//
// The chain is followed with errors.Unwrap, so multi-errors built with
// errors.Join end the walk.
func (e *Error) Details() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.Error())
	for c := e.cause; c != nil; c = errors.Unwrap(c) {
		b.WriteString("\n[")
		b.WriteString(c.Error())
		b.WriteString("]")
	}
	return b.String()
}

// Unwrap returns the cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.cause }

// Cause returns the direct cause, or nil.
func (e *Error) Cause() error { return e.cause }
