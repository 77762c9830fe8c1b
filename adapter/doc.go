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

// Package adapter converts *httperr.Error values into transport-neutral
// representations: google.rpc ErrorInfo and DebugInfo protobuf messages
// for gRPC status details, and apis.ErrorView for structured output.
//
// The conversions are pure and never fail. A nil error converts to a nil
// message or a zero view.
package adapter
