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
	"runtime"
	"strconv"
	"strings"
)

// maxTraceDepth bounds the number of frames captured per error.
const maxTraceDepth = 32

// Frame is a single call site of a Trace.
type Frame struct {
	Function string
	File     string
	Line     int
}

// String renders "function file:line".
func (f Frame) String() string {
	return f.Function + " " + f.File + ":" + strconv.Itoa(f.Line)
}

// Trace is the call stack at the point an Error was constructed, most recent
// call first. It is diagnostic only.
type Trace []Frame

// String renders one frame per line.
func (t Trace) String() string {
	var b strings.Builder
	for i, f := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.String())
	}
	return b.String()
}

// Strings renders each frame separately.
func (t Trace) Strings() []string {
	if len(t) == 0 {
		return nil
	}
	out := make([]string, len(t))
	for i, f := range t {
		out[i] = f.String()
	}
	return out
}

// captureTrace records the stack of its caller's caller, skipping skip
// further frames. runtime.Callers and captureTrace itself are always skipped.
func captureTrace(skip int) Trace {
	pc := make([]uintptr, maxTraceDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Trace, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return out
}
