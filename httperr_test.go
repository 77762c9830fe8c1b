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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/httperr/status"
)

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func TestWrap_Parts(t *testing.T) {
	_, cause := parseUint("certainly not a usize")
	e := Wrap(cause, "400:Input:That was NOT a usize!")

	msg, domain, st := e.Parts()
	if msg != "That was NOT a usize!" {
		t.Fatalf("message = %q", msg)
	}
	if domain != "Input" {
		t.Fatalf("domain = %q", domain)
	}
	if st != status.BadRequest {
		t.Fatalf("status = %d", st)
	}
	if e.Message() != msg || e.Domain() != domain || e.Status() != st {
		t.Fatal("accessors disagree with Parts")
	}
}

func TestMsg_Parts(t *testing.T) {
	e := New(Msg(403, "Input", "That was NOT a usize!"))
	msg, domain, st := e.Parts()
	if msg != "That was NOT a usize!" || domain != "Input" || st != status.Forbidden {
		t.Fatalf("Parts() = %q, %q, %d", msg, domain, st)
	}
	if e.Encoded() != "403:Input:That was NOT a usize!" {
		t.Fatalf("Encoded() = %q", e.Encoded())
	}
}

func TestMsgHelpers(t *testing.T) {
	if got := Msg(404, "Catalog", "gone"); got != "404:Catalog:gone" {
		t.Fatalf("Msg = %q", got)
	}
	if got := Msg(0, "", "x"); got != "500:unknown:x" {
		t.Fatalf("Msg defaults = %q", got)
	}
	if got := DomainMsg("Store", "write failed"); got != "500:Store:write failed" {
		t.Fatalf("DomainMsg = %q", got)
	}
	if got := Text("oops"); got != "500:unknown:oops" {
		t.Fatalf("Text = %q", got)
	}
}

func TestError_Display(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"400:Input:That was NOT a usize!", "That was NOT a usize!: (Domain: Input, HTTP status: 400 Bad Request)"},
		{"boom", "boom: (Domain: Internal, HTTP status: 500 Internal Server Error)"},
		{"Store:write failed", "write failed: (Domain: Store, HTTP status: 500 Internal Server Error)"},
		{"500::x", "x: (Domain: unknown, HTTP status: 500 Internal Server Error)"},
		{"", "<unknown>: (Domain: Internal, HTTP status: 500 Internal Server Error)"},
		{"599:Edge:upstream", "upstream: (Domain: Edge, HTTP status: 599 <unknown status code>)"},
	}
	for _, tt := range tests {
		if got := New(tt.in).Error(); got != tt.want {
			t.Fatalf("New(%q).Error() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetails_NoCause(t *testing.T) {
	e := New("404:Catalog:no such item")
	if e.Details() != e.Error() {
		t.Fatalf("Details() = %q, want %q", e.Details(), e.Error())
	}
}

func TestDetails_OneCause(t *testing.T) {
	cause := errors.New("connection refused")
	e := Wrap(cause, "503:Store:read failed")
	want := e.Error() + "\n[connection refused]"
	if got := e.Details(); got != want {
		t.Fatalf("Details() = %q, want %q", got, want)
	}
}

func TestDetails_WalksChain(t *testing.T) {
	_, cause := parseUint("certainly not a usize")
	e := Wrap(cause, "400:Input:That was NOT a usize!")

	want := "That was NOT a usize!: (Domain: Input, HTTP status: 400 Bad Request)" +
		"\n[strconv.ParseUint: parsing \"certainly not a usize\": invalid syntax]" +
		"\n[invalid syntax]"
	if got := e.Details(); got != want {
		t.Fatalf("Details() =\n%s\nwant\n%s", got, want)
	}
}

func TestDetails_NestedErrors(t *testing.T) {
	root := errors.New("disk full")
	inner := Wrap(root, "507:Store:cannot persist")
	outer := Wrap(fmt.Errorf("save order: %w", inner), "500:Orders:checkout failed")

	lines := strings.Split(outer.Details(), "\n")
	if len(lines) != 4 {
		t.Fatalf("Details() has %d lines, want 4:\n%s", len(lines), outer.Details())
	}
	if lines[1] != "[save order: "+inner.Error()+"]" {
		t.Fatalf("line 1 = %q", lines[1])
	}
	if lines[2] != "["+inner.Error()+"]" {
		t.Fatalf("line 2 = %q", lines[2])
	}
	if lines[3] != "[disk full]" {
		t.Fatalf("line 3 = %q", lines[3])
	}
}

func TestUnwrap_IsAs(t *testing.T) {
	root := errors.New("root")
	e := Wrap(root, "500:X:y")
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root || e.Cause() != root {
		t.Fatal("Unwrap failed")
	}

	var out *Error
	if !errors.As(fmt.Errorf("ctx: %w", e), &out) || out != e {
		t.Fatal("errors.As failed")
	}
}

func TestNew_NoCause(t *testing.T) {
	e := New("x")
	if e.Unwrap() != nil {
		t.Fatal("New must not have a cause")
	}
	if w := Wrap(nil, "x"); w.Unwrap() != nil {
		t.Fatal("Wrap(nil) must not have a cause")
	}
}

func TestErrorf_Wrapf(t *testing.T) {
	e := Errorf("%d:%s:item %d missing", 404, "Catalog", 7)
	if msg, domain, st := e.Parts(); msg != "item 7 missing" || domain != "Catalog" || st != status.NotFound {
		t.Fatalf("Errorf Parts() = %q, %q, %d", msg, domain, st)
	}

	root := errors.New("eof")
	w := Wrapf(root, "400:Input:field %q", "name")
	if w.Message() != `field "name"` || !errors.Is(w, root) {
		t.Fatalf("Wrapf = %v", w)
	}
}

func TestOptions(t *testing.T) {
	root := errors.New("root")
	e := New("x", WithCause(root))
	if e.Unwrap() != root {
		t.Fatal("WithCause not applied")
	}
	e = Wrap(errors.New("other"), "x", WithCause(root))
	if e.Unwrap() != root {
		t.Fatal("WithCause must take precedence over Wrap's error")
	}
	if New("x", WithCause(nil)).Unwrap() != nil {
		t.Fatal("WithCause(nil) must be ignored")
	}
	if New("x", WithoutTrace()).Trace() != nil {
		t.Fatal("WithoutTrace must disable capture")
	}
}

func TestNilReceiver(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" || e.Details() != "<nil>" {
		t.Fatal("nil receiver must render <nil>")
	}
}

func TestConcurrentReads(t *testing.T) {
	e := Wrap(errors.New("root"), "409:Store:version mismatch")
	want := e.Details()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if e.Details() != want || e.Status() != status.Conflict {
					t.Error("concurrent read mismatch")
					return
				}
			}
		}()
	}
	wg.Wait()
}
