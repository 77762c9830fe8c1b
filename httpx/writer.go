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
	"context"
	"io"
	"log/slog"
	"net/http"

	"dirpx.dev/httperr"
	"github.com/google/uuid"
)

// HeaderErrorID carries the id under which Writer logged an error.
const HeaderErrorID = "X-Error-Id"

// Writer writes errors to an http.ResponseWriter in the shape selected by
// Variant and logs them with Logger.
//
// The zero value writes Plain responses and logs to slog.Default().
type Writer struct {
	Variant Variant
	Logger  *slog.Logger
}

// Write reports err on rw. Errors that are not *httperr.Error anywhere in
// their chain are reported as 500 Internal Server Error. A nil err writes
// nothing.
//
// Every written error is logged with a fresh error id, which is also sent
// in the X-Error-Id header: 5xx statuses at Error level, others at Info.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, err error) {
	e := httperr.From(err)
	if e == nil {
		return
	}

	id := uuid.NewString()
	w.log(r, id, e)

	resp := w.Variant.Build(e)
	defer resp.Body.Close()

	h := rw.Header()
	for k, vs := range resp.Header {
		h[k] = vs
	}
	h.Set(HeaderErrorID, id)
	rw.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(rw, resp.Body)
}

func (w Writer) log(r *http.Request, id string, e *httperr.Error) {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	msg, domain, st := e.Parts()
	level := slog.LevelInfo
	if st.IsServerError() {
		level = slog.LevelError
	}

	ctx := context.Background()
	attrs := []slog.Attr{
		slog.String("error_id", id),
		slog.Int("status", st.Code()),
		slog.String("domain", domain),
		slog.String("message", msg),
		slog.String("details", e.Details()),
	}
	if r != nil {
		ctx = r.Context()
		attrs = append(attrs, slog.String("method", r.Method), slog.String("path", r.URL.Path))
	}
	logger.LogAttrs(ctx, level, "request failed", attrs...)
}
