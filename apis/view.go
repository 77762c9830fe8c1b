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

// ErrorView is a minimal, serializable representation of a decoded error.
//
// It is the shape tools and adapters use when they need the parts as
// structured data, e.g. `httperr decode --json`. It is NOT used for the
// application/json response body, which is rendered verbatim.
type ErrorView struct {
	// Message is the decoded human-readable message.
	Message string `json:"message"`
	// Domain is the decoded application domain.
	Domain string `json:"domain"`
	// Status is the decoded HTTP status code.
	Status int `json:"status"`
	// StatusText is the canonical reason phrase, empty for unregistered codes.
	StatusText string `json:"status_text,omitempty"`
	// Causes lists the text of each link of the cause chain, outermost first.
	Causes []string `json:"causes,omitempty"`
}
