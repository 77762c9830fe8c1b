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

package httpx

import (
	"io"
	"net/http"
	"strings"

	"dirpx.dev/httperr/apis"
	"dirpx.dev/httperr/status"
)

// Content types of the String and JSON variants.
const (
	ContentTypeText = "text/plain"       // StringResponse body
	ContentTypeJSON = "application/json" // JSONResponse body
)

// Response returns a response with the error's status, an empty body and no
// headers.
func Response(e apis.PartsProvider) *http.Response {
	_, _, st := e.Parts()
	return newResponse(st.Code(), "", "")
}

// StringResponse returns a response with the error's status, the body
// "<message> (application domain: <domain>)" and Content-Type text/plain.
func StringResponse(e apis.PartsProvider) *http.Response {
	msg, domain, st := e.Parts()
	return newResponse(st.Code(), ContentTypeText, StringBody(msg, domain))
}

// JSONResponse returns a response with the error's status, the body
// {"message":"<message>","domain":"<domain>"} and Content-Type
// application/json. Values are not escaped.
func JSONResponse(e apis.PartsProvider) *http.Response {
	msg, domain, st := e.Parts()
	return newResponse(st.Code(), ContentTypeJSON, JSONBody(msg, domain))
}

// StringBody renders the text/plain body.
func StringBody(message, domain string) string {
	return message + " (application domain: " + domain + ")"
}

// JSONBody renders the application/json body verbatim.
func JSONBody(message, domain string) string {
	return `{"message":"` + message + `","domain":"` + domain + `"}`
}

func newResponse(code int, contentType, body string) *http.Response {
	resp := &http.Response{
		Status:     statusLine(code),
		StatusCode: code,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
		Body:       http.NoBody,
	}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		resp.Body = io.NopCloser(strings.NewReader(body))
		resp.ContentLength = int64(len(body))
	}
	return resp
}

// statusLine renders the status line text, e.g. "403 Forbidden".
func statusLine(code int) string {
	return status.Status(code).String()
}
