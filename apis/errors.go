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

package apis

import "dirpx.dev/httperr/status"

// PartsProvider is an error that can be decoded into a message, an
// application domain and an HTTP status.
//
// Implementations must never fail to produce parts; malformed input is
// reported with default values instead.
type PartsProvider interface {
	error

	// Parts returns the decoded message, domain and HTTP status.
	Parts() (message, domain string, st status.Status)
}

// DetailsProvider is an error that can describe itself together with its
// whole cause chain, for logging.
type DetailsProvider interface {
	error

	// Details returns a multi-line description: the error itself on the
	// first line, then one bracketed line per cause.
	Details() string
}

// CausedError represents an error that exposes its underlying cause.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	Cause() error
}
