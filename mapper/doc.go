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

// Package mapper provides deterministic, immutable mappings between the HTTP
// statuses carried by httperr errors and gRPC status codes.
//
// # Overview
//
// An httperr error names its HTTP status directly, so HTTP transports need no
// mapping at all. gRPC transports do: grpcx asks a Mapper which codes.Code
// reports a given HTTP status, and on the client side which HTTP status a
// received code stands for.
//
// # Resolution model
//
// HTTP status -> gRPC code:
//
//  1. exact override for the status;
//  2. per-status default (library or user-adjusted);
//  3. most specific class rule, e.g. "42x" before "4xx";
//  4. global fallback (codes.Unknown).
//
// gRPC code -> HTTP status: override, default, fallback (500).
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithGRPCOverride(409, codes.AlreadyExists),
//	    mapper.WithGRPCClass("42x", codes.ResourceExhausted),
//	)
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a status was resolved.
// It is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All inputs are copied during New. A Mapper can be shared freely across
// goroutines.
package mapper
