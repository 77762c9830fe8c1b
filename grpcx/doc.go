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

// Package grpcx carries httperr errors over gRPC.
//
// On the server side, UnaryServerInterceptor and StreamServerInterceptor turn
// an *httperr.Error returned by a handler into a gRPC status: the code is
// resolved from the HTTP status with an apis.Mapper, the status message is
// the decoded message, and a google.rpc.ErrorInfo detail carries the domain
// and the HTTP status. ServerOptions bundles these with logging and panic
// recovery from go-grpc-middleware.
//
// On the client side, FromError and UnaryClientInterceptor rebuild an
// *httperr.Error from such a status, so the HTTP status and domain survive
// the hop.
package grpcx
