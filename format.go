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
	"fmt"
	"io"
)

var _ fmt.Formatter = (*Error)(nil)

// Format implements fmt.Formatter:
//   - %v, %s: Error()
//   - %q:     quoted Error()
//   - %+v:    Details() followed by the captured trace
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Details())
			if e != nil && len(e.trace) > 0 {
				_, _ = io.WriteString(s, "\nstack:")
				for _, fr := range e.trace {
					_, _ = fmt.Fprintf(s, "\n  %s", fr)
				}
			}
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}
