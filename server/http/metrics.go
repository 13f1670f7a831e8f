// Copyright 2023 The Owlgo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package owlhttp

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "owlgo_http_requests_total",
		Help: "Number of API requests served, by handler and status code.",
	}, []string{"handler", "code"})
	mRequestSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "owlgo_http_request_seconds",
		Help: "Time to serve an API request.",
	}, []string{"handler"})
)

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func instrument(name string, handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		timer := prometheus.NewTimer(mRequestSeconds.WithLabelValues(name))
		handler(sw, r)
		timer.ObserveDuration()
		mRequests.WithLabelValues(name, strconv.Itoa(sw.code)).Inc()
	}
}
