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

package adapter

import (
	"errors"
	"strings"

	"dirpx.dev/httperr"
	"dirpx.dev/httperr/apis"
	"dirpx.dev/httperr/codec"
	"dirpx.dev/httperr/status"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

const (
	// ReasonPrefix prefixes the HTTP status in ErrorInfo.Reason ("HTTP_404").
	ReasonPrefix = "HTTP_"

	// MetadataStatus is the ErrorInfo metadata key carrying the HTTP status.
	MetadataStatus = "http_status"
)

// ToErrorInfo converts an error into a google.rpc.ErrorInfo.
//
// Reason is "HTTP_<status>" (UPPER_SNAKE_CASE as the type requires), Domain
// is the application domain and Metadata["http_status"] holds the status
// number.
func ToErrorInfo(e *httperr.Error) *errdetails.ErrorInfo {
	if e == nil {
		return nil
	}
	_, domain, st := e.Parts()
	return &errdetails.ErrorInfo{
		Reason:   ReasonPrefix + st.Token(),
		Domain:   domain,
		Metadata: map[string]string{MetadataStatus: st.Token()},
	}
}

// ToDebugInfo converts an error into a google.rpc.DebugInfo carrying the
// captured stack and the Details() text. It exposes internals and should
// only be attached for trusted callers.
func ToDebugInfo(e *httperr.Error) *errdetails.DebugInfo {
	if e == nil {
		return nil
	}
	return &errdetails.DebugInfo{
		StackEntries: e.Trace().Strings(),
		Detail:       e.Details(),
	}
}

// ToView converts an error into an apis.ErrorView. Causes lists each link
// of the cause chain, outermost first.
func ToView(e *httperr.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	msg, domain, st := e.Parts()
	v := apis.ErrorView{
		Message:    msg,
		Domain:     domain,
		Status:     st.Code(),
		StatusText: st.Text(),
	}
	for c := e.Unwrap(); c != nil; c = errors.Unwrap(c) {
		v.Causes = append(v.Causes, c.Error())
	}
	return v
}

// FromErrorInfo rebuilds the encoded message of an error from an ErrorInfo
// and the message carried next to it (e.g. a gRPC status message).
//
// The status is read from Metadata["http_status"], then from the Reason
// suffix; fallback is used when neither holds a valid status. A nil info
// yields fallback with codec.DefaultDomain.
func FromErrorInfo(info *errdetails.ErrorInfo, message string, fallback status.Status) string {
	if info == nil {
		return codec.Encode(fallback, codec.DefaultDomain, message)
	}
	st, ok := statusOf(info)
	if !ok {
		st = fallback
	}
	return codec.Encode(st, info.GetDomain(), message)
}

func statusOf(info *errdetails.ErrorInfo) (status.Status, bool) {
	if st, err := status.Parse(info.GetMetadata()[MetadataStatus]); err == nil {
		return st, true
	}
	if tok, ok := strings.CutPrefix(info.GetReason(), ReasonPrefix); ok {
		if st, err := status.Parse(tok); err == nil {
			return st, true
		}
	}
	return 0, false
}
