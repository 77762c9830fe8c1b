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

package httpx_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/httperr"
	"dirpx.dev/httperr/httpx"
)

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func usizeError() *httperr.Error {
	return httperr.New("403:Input:That was NOT a usize!")
}

func TestResponse(t *testing.T) {
	resp := httpx.Response(usizeError())

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "403 Forbidden", resp.Status)
	assert.Empty(t, resp.Header)
	assert.Zero(t, resp.ContentLength)
	assert.Empty(t, readBody(t, resp))
}

func TestStringResponse(t *testing.T) {
	resp := httpx.StringResponse(usizeError())

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	body := readBody(t, resp)
	assert.Equal(t, "That was NOT a usize! (application domain: Input)", body)
	assert.Equal(t, int64(len(body)), resp.ContentLength)
}

func TestJSONResponse(t *testing.T) {
	resp := httpx.JSONResponse(usizeError())

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, `{"message":"That was NOT a usize!","domain":"Input"}`, readBody(t, resp))
}

func TestJSONResponse_NoEscaping(t *testing.T) {
	resp := httpx.JSONResponse(httperr.New(`400:Input:bad "quote"`))
	assert.Equal(t, `{"message":"bad "quote"","domain":"Input"}`, readBody(t, resp))
}

func TestResponses_Defaults(t *testing.T) {
	e := httperr.New("no structure here")

	for name, build := range map[string]func(*httperr.Error) *http.Response{
		"plain":  func(e *httperr.Error) *http.Response { return httpx.Response(e) },
		"string": func(e *httperr.Error) *http.Response { return httpx.StringResponse(e) },
		"json":   func(e *httperr.Error) *http.Response { return httpx.JSONResponse(e) },
	} {
		t.Run(name, func(t *testing.T) {
			resp := build(e)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			_ = readBody(t, resp)
		})
	}

	assert.Equal(t, "no structure here (application domain: Internal)", readBody(t, httpx.StringResponse(e)))
	assert.Equal(t, "599 <unknown status code>", httpx.Response(httperr.New("599:X:y")).Status)
	assert.Equal(t, "413 Payload Too Large", httpx.Response(httperr.New("413:Upload:too big")).Status)
}

func TestVariant(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want httpx.Variant
	}{
		{"plain", httpx.Plain},
		{"STRING", httpx.String},
		{"Json", httpx.JSON},
	} {
		v, err := httpx.ParseVariant(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v)
		assert.Equal(t, tt.want.String(), v.String())
	}

	_, err := httpx.ParseVariant("xml")
	assert.ErrorIs(t, err, httpx.ErrVariantInvalid)

	var v httpx.Variant
	require.NoError(t, v.UnmarshalText([]byte("json")))
	assert.Equal(t, httpx.JSON, v)
	b, err := httpx.String.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "string", string(b))

	_, err = httpx.Variant(9).MarshalText()
	assert.ErrorIs(t, err, httpx.ErrVariantInvalid)
	assert.Equal(t, "Variant(9)", httpx.Variant(9).String())
}

func TestVariant_Build(t *testing.T) {
	e := usizeError()
	assert.Equal(t, "text/plain", httpx.String.Build(e).Header.Get("Content-Type"))
	assert.Equal(t, "application/json", httpx.JSON.Build(e).Header.Get("Content-Type"))
	assert.Empty(t, httpx.Plain.Build(e).Header)
	assert.Empty(t, httpx.Variant(42).Build(e).Header)
}
