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

// Package status provides parsing, validation and rendering for HTTP status
// codes as they appear in encoded httperr messages.
//
// A status token is the first colon-separated field of an encoded message,
// e.g. "404" in "404:Catalog:item not found". A token is valid when it is
// exactly three ASCII digits whose value lies in 100..999. Everything else
// is rejected by Parse; callers on the reporting path substitute Default
// rather than propagating the failure.
//
// Status values print in the canonical "<code> <reason>" form used in logs:
//
//	status.BadRequest.String() // "400 Bad Request"
//	status.Status(599).String() // "599"
package status
