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

// Option adjusts how an Error is constructed. Errors are immutable, so
// options only apply at construction time.
type Option func(*options)

type options struct {
	cause   error
	skip    int
	noTrace bool
}

// WithCause attaches err as the cause. It takes precedence over the error
// passed to Wrap. A nil err is ignored.
func WithCause(err error) Option {
	return func(o *options) {
		if err != nil {
			o.cause = err
		}
	}
}

// WithCallerSkip drops n additional frames from the top of the captured
// trace. Helpers that construct errors on behalf of their caller use it to
// keep themselves out of the trace.
func WithCallerSkip(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.skip += n
		}
	}
}

// WithoutTrace disables stack capture for the error.
func WithoutTrace() Option {
	return func(o *options) { o.noTrace = true }
}
