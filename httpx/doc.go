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

// Package httpx renders httperr errors as HTTP responses.
//
// Three response shapes are available, all carrying the decoded status:
//
//	Plain   empty body, no headers
//	String  "<message> (application domain: <domain>)", text/plain
//	JSON    {"message":"<message>","domain":"<domain>"}, application/json
//
// The JSON body is assembled verbatim: message and domain are not escaped,
// so a message containing '"' produces invalid JSON. Callers that accept
// untrusted message text should use the String variant.
//
// Response, StringResponse and JSONResponse build standalone *http.Response
// values. Writer and Handler write the same shapes to an
// http.ResponseWriter and log each error with log/slog.
package httpx
