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

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/httperr/apis"
	"dirpx.dev/httperr/httpx"
	"dirpx.dev/httperr/status"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "403:Input:That was NOT a usize!")
	require.NoError(t, err)
	assert.Equal(t, "message: That was NOT a usize!\ndomain:  Input\nstatus:  403 Forbidden\n", out)
}

func TestDecode_JSON(t *testing.T) {
	out, err := execute(t, "decode", "--json", "bad:Input:a:b")
	require.NoError(t, err)

	var v apis.ErrorView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, apis.ErrorView{Message: "a:b", Domain: "Input", Status: 500, StatusText: "Internal Server Error"}, v)
}

func TestEncode(t *testing.T) {
	out, err := execute(t, "encode", "--status", "404", "--domain", "Catalog", "no", "such", "item")
	require.NoError(t, err)
	assert.Equal(t, "404:Catalog:no such item\n", out)

	out, err = execute(t, "encode", "oops")
	require.NoError(t, err)
	assert.Equal(t, "500:unknown:oops\n", out)

	_, err = execute(t, "encode", "--status", "42", "x")
	assert.ErrorIs(t, err, status.ErrStatusInvalid)
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", "--variant", "json", "403:Input:That was NOT a usize!")
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 403 Forbidden\nContent-Type: application/json\n\n"+
		`{"message":"That was NOT a usize!","domain":"Input"}`+"\n", out)

	out, err = execute(t, "render", "--variant", "plain", "403:Input:x")
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 403 Forbidden\n\n", out)

	_, err = execute(t, "render", "--variant", "xml", "x")
	assert.ErrorIs(t, err, httpx.ErrVariantInvalid)
}

func TestExplain(t *testing.T) {
	out, err := execute(t, "explain", "404")
	require.NoError(t, err)
	assert.Equal(t, "status=\"404 Not Found\"\ngrpc: source=default -> NOTFOUND(5)\nhttp: source=default -> 404\n", out)

	path := filepath.Join(t.TempDir(), "httperr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mapper:\n  overrides:\n    \"404\": UNAVAILABLE\n"), 0o600))
	out, err = execute(t, "--config", path, "explain", "404")
	require.NoError(t, err)
	assert.Contains(t, out, "grpc: source=override -> UNAVAILABLE(14)")

	_, err = execute(t, "explain", "4xx")
	assert.ErrorIs(t, err, status.ErrStatusInvalid)
}

func TestMux(t *testing.T) {
	mux := newMux(httpx.Writer{
		Variant: httpx.String,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get("/parse?value=42")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42\n", rec.Body.String())

	rec = get("/parse?value=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "That was NOT a usize! (application domain: Input)", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(httpx.HeaderErrorID))

	rec = get("/fail?encoded=418:Teapot:short+and+stout")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout (application domain: Teapot)", rec.Body.String())
}
