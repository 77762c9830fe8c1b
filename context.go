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
	"net/http"

	"dirpx.dev/httperr/codec"
	"dirpx.dev/httperr/status"
)

// Context attaches an encoded message to err. It returns nil when err is
// nil, which makes it usable directly on the result of a fallible call:
//
//	if err := store.Put(ctx, k, v); err != nil {
//	    return httperr.Context(err, "503:Store:write failed")
//	}
//	return httperr.Context(doc.Validate(), "422:Input:invalid document")
func Context(err error, message string) error {
	if err == nil {
		return nil
	}
	return newError(err, message, nil)
}

// ContextFunc is Context with a lazily built message. fn is only called
// when err is non-nil.
func ContextFunc(err error, fn func(err error) string) error {
	if err == nil {
		return nil
	}
	return newError(err, fn(err), nil)
}

// Fallible holds the two results of a fallible call so that a message can be
// attached in the same expression. Build one with Result.
type Fallible[T any] struct {
	value T
	err   error
}

// Result captures the results of a (T, error) call:
//
//	n, err := httperr.Result(strconv.Atoi(s)).Context("400:Input:not a number")
func Result[T any](value T, err error) Fallible[T] {
	return Fallible[T]{value: value, err: err}
}

// Context returns the value unchanged when the call succeeded. Otherwise it
// returns the zero value and an *Error wrapping the call's error.
func (f Fallible[T]) Context(message string) (T, error) {
	if f.err == nil {
		return f.value, nil
	}
	var zero T
	return zero, newError(f.err, message, nil)
}

// Contextf is Context with a fmt-formatted message.
func (f Fallible[T]) Contextf(format string, args ...any) (T, error) {
	if f.err == nil {
		return f.value, nil
	}
	var zero T
	return zero, newError(f.err, fmt.Sprintf(format, args...), nil)
}

// ContextFunc is Context with a lazily built message.
func (f Fallible[T]) ContextFunc(fn func(err error) string) (T, error) {
	if f.err == nil {
		return f.value, nil
	}
	var zero T
	return zero, newError(f.err, fn(f.err), nil)
}

// Ensure returns nil when cond holds and an *Error with message otherwise.
//
//	if err := httperr.Ensure(n > 0, "400:Input:count must be positive"); err != nil {
//	    return err
//	}
func Ensure(cond bool, message string) error {
	if cond {
		return nil
	}
	return newError(nil, message, nil)
}

// foreignMessage is used by From for errors that carry no encoded message.
var foreignMessage = codec.Encode(status.Default, codec.DefaultDomain, http.StatusText(http.StatusInternalServerError))

// From returns the *Error found in err's chain. Any other non-nil error is
// wrapped as "500:Internal:Internal Server Error" so that its text never
// reaches a response. From(nil) is nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return newError(err, foreignMessage, nil)
}
