// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// A request whose path matches a top-level route but whose method is not
// registered for it gets 404 Not Found instead of chi's 405, so unsupported
// methods do not reveal which paths exist. Routes inside mounted
// sub-routers are reported the same way.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		writeServiceError(w, r, errRouteNotFound, "method not allowed")
	}
}
