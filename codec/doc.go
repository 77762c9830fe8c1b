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

// Package codec encodes and decodes the compact "status:domain:message"
// representation carried by httperr errors.
//
// The wire form is
//
//	[<status>:][<domain>:]<message>
//
// where both leading fields are optional. Decoding splits on the first two
// colons only, so the message may itself contain colons:
//
//	Decode("404:Catalog:item 7: not found")
//	// Parts{Message: "item 7: not found", Domain: "Catalog", Status: 404}
//
// Decoding is total. Missing fields and malformed status tokens fall back to
// defaults instead of failing, because the decoder sits on the error
// reporting path.
//
// Two defaults exist for the domain. An absent domain field decodes as
// DefaultDomain ("Internal"); a domain field that is present but empty, as in
// "500::boom", decodes as UnknownDomain ("unknown"), which is also what Encode
// writes when no domain is given. The two are intentionally kept apart.
package codec
