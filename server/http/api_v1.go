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

// Package owlhttp exposes an ontology and a reasoner over a JSON REST
// API.
package owlhttp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/julienschmidt/httprouter"
	"github.com/piprate/json-gold/ld"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/owlgraph/owlgo/olog"
	"github.com/owlgraph/owlgo/ontology"
	"github.com/owlgraph/owlgo/owl"
	"github.com/owlgraph/owlgo/parser"
	"github.com/owlgraph/owlgo/reasoner"
)

const prefix = "/api/v1"

const (
	hdrContentType    = "Content-Type"
	contentTypeJSON   = "application/json"
	contentTypeJSONLD = "application/ld+json"
)

// NewAPIv1 creates a new instance of APIv1 serving the given ontology
// through the given reasoner.
func NewAPIv1(o *ontology.Ontology, rsn reasoner.Interface, wrappers ...HandlerWrapper) *APIv1 {
	r := httprouter.New()
	api := &APIv1{onto: o, rsn: rsn}
	api.registerOn(r)
	var handler http.Handler = r
	for _, wrapper := range wrappers {
		handler = wrapper(handler)
	}
	api.handler = handler
	return api
}

// NewBoundAPIv1 creates a new instance of APIv1 bound to a given
// httprouter.Router.
func NewBoundAPIv1(o *ontology.Ontology, rsn reasoner.Interface, r *httprouter.Router) *APIv1 {
	api := &APIv1{onto: o, rsn: rsn, handler: r}
	api.registerOn(r)
	return api
}

type APIv1 struct {
	onto    *ontology.Ontology
	rsn     reasoner.Interface
	handler http.Handler

	// expressions
	ns       owl.IRI
	prefixes map[string]owl.IRI

	// query
	timeout time.Duration
}

// SetNamespace sets the default namespace for names in submitted class
// expressions.
func (api *APIv1) SetNamespace(ns owl.IRI) {
	api.ns = ns
}

// SetPrefixes sets extra prefix bindings for submitted class
// expressions.
func (api *APIv1) SetPrefixes(prefixes map[string]owl.IRI) {
	api.prefixes = prefixes
}

func (api *APIv1) SetQueryTimeout(dt time.Duration) {
	api.timeout = dt
}

func (api *APIv1) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.handler.ServeHTTP(w, r)
}

type HandlerWrapper func(http.Handler) http.Handler

func (api *APIv1) registerOn(r *httprouter.Router) {
	r.POST(prefix+"/instances", instrument("instances", api.ServeInstances))
	r.GET(prefix+"/classes", instrument("classes", api.ServeClasses))
	r.GET(prefix+"/individuals", instrument("individuals", api.ServeIndividuals))
	r.GET(prefix+"/object_properties", instrument("object_properties", api.ServeObjectProperties))
	r.GET(prefix+"/data_properties", instrument("data_properties", api.ServeDataProperties))
	r.GET(prefix+"/abox", instrument("abox", api.ServeABox))
	r.GET(prefix+"/tbox", instrument("tbox", api.ServeTBox))
	r.POST(prefix+"/infer_axioms", instrument("infer_axioms", api.ServeInferAxioms))
	r.GET(prefix+"/ontology", instrument("ontology", api.ServeOntology))
	r.GET("/health", instrument("health", api.ServeHealth))
	r.Handler("GET", "/metrics", promhttp.Handler())
}

// Config configures a standalone listener around an APIv1 handler.
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

const defaultTimeout = 30 * time.Second

// ListenAndServe runs a blocking HTTP server for the API.
func (api *APIv1) ListenAndServe(conf Config) error {
	if conf.ReadTimeout == 0 {
		conf.ReadTimeout = defaultTimeout
	}
	if conf.WriteTimeout == 0 {
		conf.WriteTimeout = defaultTimeout
	}
	addr := net.JoinHostPort(conf.Host, strconv.Itoa(conf.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      api,
		ReadTimeout:  conf.ReadTimeout,
		WriteTimeout: conf.WriteTimeout,
	}
	olog.Infof("listening on %s", addr)
	return srv.ListenAndServe()
}

func (api *APIv1) queryContext(r *http.Request) (ctx context.Context, cancel func()) {
	ctx = r.Context()
	if api.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, api.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	return ctx, cancel
}

const maxRequestSize = 1024 * 1024 // 1 MB

func decodeRequest(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	lr := io.LimitReader(r.Body, maxRequestSize).(*io.LimitedReader)
	data, err := io.ReadAll(lr)
	if err != nil && lr.N <= 0 {
		return errors.New("request is too large")
	} else if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func iris[T owl.Entity](entities []T) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, string(e.IRI()))
	}
	return out
}

func axiomStrings(axioms []owl.Axiom) []string {
	out := make([]string, 0, len(axioms))
	for _, ax := range axioms {
		out = append(out, ax.String())
	}
	return out
}

type instancesRequest struct {
	ClassIRI   string `json:"class_iri"`
	Expression string `json:"expression"`
	Syntax     string `json:"syntax"`
	Direct     bool   `json:"direct"`
}

func (api *APIv1) classExpression(req instancesRequest) (owl.ClassExpression, error) {
	if req.ClassIRI != "" {
		return owl.Class(req.ClassIRI), nil
	}
	if req.Expression == "" {
		return nil, errors.New("class_iri or expression is required")
	}
	p := parser.Parser{Namespace: api.ns, Prefixes: api.prefixes}
	switch req.Syntax {
	case "", "dl":
		return p.ParseDL(req.Expression)
	case "manchester":
		return p.ParseManchester(req.Expression)
	default:
		return nil, errors.New("unknown expression syntax: " + req.Syntax)
	}
}

func (api *APIv1) ServeInstances(w http.ResponseWriter, r *http.Request) {
	var req instancesRequest
	if err := decodeRequest(r, &req); err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	ce, err := api.classExpression(req)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	if olog.V(1) {
		olog.Infof("instances query: %s", ce)
	}
	instances, err := api.rsn.Instances(ce, req.Direct)
	if err != nil {
		jsonResponse(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, map[string]interface{}{"instances": iris(instances)})
}

func (api *APIv1) ServeClasses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"classes": iris(api.onto.Classes())})
}

func (api *APIv1) ServeIndividuals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"individuals": iris(api.onto.Individuals())})
}

func (api *APIv1) ServeObjectProperties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"object_properties": iris(api.onto.ObjectProperties())})
}

func (api *APIv1) ServeDataProperties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"data_properties": iris(api.onto.DataProperties())})
}

func (api *APIv1) ServeABox(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"abox": axiomStrings(api.onto.ABox())})
}

func (api *APIv1) ServeTBox(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"tbox": axiomStrings(api.onto.TBox())})
}

type inferRequest struct {
	InferenceType string `json:"inference_type"`
}

func (api *APIv1) ServeInferAxioms(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.queryContext(r)
	defer cancel()
	var req inferRequest
	if err := decodeRequest(r, &req); err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	if req.InferenceType == "" {
		jsonResponse(w, http.StatusBadRequest, "inference_type is required")
		return
	}
	types, err := reasoner.ParseInferenceTypes([]string{req.InferenceType})
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	axioms, err := reasoner.Infer(ctx, api.rsn, types)
	if err != nil {
		jsonResponse(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, map[string]interface{}{"inferred_axioms": axiomStrings(axioms)})
}

func compactContext(onto *ontology.Ontology) map[string]interface{} {
	ctx := map[string]interface{}{
		"owl":  owl.NamespaceOWL,
		"rdf":  owl.NamespaceRDF,
		"rdfs": owl.NamespaceRDFS,
		"xsd":  owl.NamespaceXSD,
	}
	if iri := onto.IRI(); iri != "" {
		ctx["@base"] = string(iri)
	}
	return ctx
}

func (api *APIv1) ServeOntology(w http.ResponseWriter, r *http.Request) {
	dataset := ld.NewRDFDataset()
	for _, q := range api.onto.Quads() {
		s, err := jsonld.ToNode(q.Subject)
		if err != nil {
			jsonResponse(w, http.StatusInternalServerError, err)
			return
		}
		p, err := jsonld.ToNode(q.Predicate)
		if err != nil {
			jsonResponse(w, http.StatusInternalServerError, err)
			return
		}
		// Native values (quad.Int, quad.Bool, quad.Time) carry their
		// datatype through TypedString; ToNode rejects them directly.
		obj := q.Object
		if ts, ok := obj.(quad.TypedStringer); ok {
			obj = ts.TypedString()
		}
		o, err := jsonld.ToNode(obj)
		if err != nil {
			jsonResponse(w, http.StatusInternalServerError, err)
			return
		}
		dataset.Graphs["@default"] = append(dataset.Graphs["@default"], ld.NewQuad(s, p, o, "@default"))
	}
	opts := ld.NewJsonLdOptions("")
	doc, err := ld.NewJsonLdApi().FromRDF(dataset, opts)
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, err)
		return
	}
	compacted, err := ld.NewJsonLdProcessor().Compact(doc, compactContext(api.onto), opts)
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set(hdrContentType, contentTypeJSONLD)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(compacted)
}

func (api *APIv1) ServeHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":   "ok",
		"ontology": string(api.onto.IRI()),
		"axioms":   api.onto.Len(),
	})
}
