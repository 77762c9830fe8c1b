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

package grpcx

// Option configures the server interceptors.
type Option func(*options)

type options struct {
	debugInfo bool
	foreign   bool
}

// WithDebugInfo attaches a google.rpc.DebugInfo detail with the captured
// stack and the cause chain. Only enable it for trusted clients.
func WithDebugInfo() Option {
	return func(o *options) { o.debugInfo = true }
}

// WithForeignErrors also converts errors that carry no *httperr.Error and
// are not gRPC statuses already; they are reported as
// "500:Internal:Internal Server Error". By default such errors are returned
// unchanged.
func WithForeignErrors() Option {
	return func(o *options) { o.foreign = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
