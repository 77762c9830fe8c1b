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

// Package httperr provides a single, flat error type for request handling
// code that can be both logged with its full cause chain and turned into an
// HTTP response without per-call-site boilerplate.
//
// Instead of a typed error per failure case, an Error carries one encoded
// message with three colon-separated fields, the first two optional:
//
//	[<status>:][<domain>:]<message>
//
//   - status: an HTTP status code, 500 when absent or malformed;
//   - domain: a free-form tag naming the part of the application that
//     failed; it must not contain a colon and is otherwise uninterpreted;
//   - message: the human-readable text, which may contain colons.
//
// # Constructing errors
//
//	err := httperr.New("404:Catalog:no such item")
//	err := httperr.Wrap(ioErr, httperr.Msg(503, "Store", "read failed"))
//	n, err := httperr.Result(strconv.Atoi(s)).Context("400:Input:not a number")
//
// # Reporting
//
// Error() yields "<message>: (Domain: <domain>, HTTP status: <status>)".
// Details() appends every link of the cause chain and is what loggers should
// record. Package httpx turns an Error into an *http.Response or writes it to
// an http.ResponseWriter; package grpcx maps it onto gRPC statuses.
//
// Decoding never fails: the reporting path must not itself produce errors.
package httperr
