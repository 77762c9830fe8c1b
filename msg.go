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
	"dirpx.dev/httperr/codec"
	"dirpx.dev/httperr/status"
)

// Msg formats an encoded message from its three parts. A zero status is
// written as 500 and an empty domain as "unknown".
//
//	httperr.Msg(400, "Input", "bad value") // "400:Input:bad value"
func Msg(st status.Status, domain, message string) string {
	return codec.Encode(st, domain, message)
}

// DomainMsg formats an encoded message with status 500.
//
//	httperr.DomainMsg("Store", "write failed") // "500:Store:write failed"
func DomainMsg(domain, message string) string {
	return codec.Encode(status.Default, domain, message)
}

// Text formats an encoded message with status 500 and domain "unknown".
//
//	httperr.Text("oops") // "500:unknown:oops"
func Text(message string) string {
	return codec.Encode(status.Default, codec.UnknownDomain, message)
}
