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

import "net/http"

// HandlerFunc is an http handler that reports failure by returning an
// error instead of writing it.
type HandlerFunc func(rw http.ResponseWriter, r *http.Request) error

// Handler adapts fn into an http.Handler; a non-nil error returned by fn is
// written with w.
//
//	mux.Handle("/items/{id}", httpx.Handler(w, func(rw http.ResponseWriter, r *http.Request) error {
//	    id, err := httperr.Result(strconv.Atoi(r.PathValue("id"))).Context("400:Input:bad item id")
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}))
func Handler(w Writer, fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := fn(rw, r); err != nil {
			w.Write(rw, r, err)
		}
	})
}
