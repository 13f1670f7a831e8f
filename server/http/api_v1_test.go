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
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/owlgraph/owlgo/ontology"
	"github.com/owlgraph/owlgo/owl"
	"github.com/owlgraph/owlgo/reasoner"
)

const ns = "http://example.com/family#"

var (
	person = owl.Class(ns + "person")
	male   = owl.Class(ns + "male")
	female = owl.Class(ns + "female")

	hasChild = owl.ObjectProperty(ns + "hasChild")
	hasAge   = owl.DataProperty(ns + "hasAge")

	anna   = owl.NamedIndividual(ns + "anna")
	heinz  = owl.NamedIndividual(ns + "heinz")
	markus = owl.NamedIndividual(ns + "markus")
)

func familyOntology() *ontology.Ontology {
	o := ontology.New(owl.IRI("http://example.com/family"))
	o.Add(
		owl.Declaration{Entity: person},
		owl.Declaration{Entity: male},
		owl.Declaration{Entity: female},
		owl.Declaration{Entity: hasChild},
		owl.Declaration{Entity: hasAge},
		owl.SubClassOf{Sub: male, Super: person},
		owl.SubClassOf{Sub: female, Super: person},
		owl.ClassAssertion{Class: female, Individual: anna},
		owl.ClassAssertion{Class: male, Individual: heinz},
		owl.ClassAssertion{Class: male, Individual: markus},
		owl.ObjectPropertyAssertion{Property: hasChild, Subject: markus, Object: anna},
		owl.ObjectPropertyAssertion{Property: hasChild, Subject: anna, Object: heinz},
		owl.DataPropertyAssertion{Property: hasAge, Subject: markus, Value: owl.IntLiteral(60)},
	)
	return o
}

func makeServerV1(t testing.TB) (string, *APIv1, func()) {
	o := familyOntology()
	api := NewAPIv1(o, reasoner.NewStructural(o))
	api.SetNamespace(owl.IRI(ns))
	srv := httptest.NewServer(api)
	return srv.URL, api, srv.Close
}

func getJSON(t testing.TB, url string, out interface{}) int {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	err = json.NewDecoder(resp.Body).Decode(out)
	require.NoError(t, err)
	return resp.StatusCode
}

func postJSON(t testing.TB, url string, body, out interface{}) int {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, contentTypeJSON, bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	err = json.NewDecoder(resp.Body).Decode(out)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestV1Signature(t *testing.T) {
	addr, _, closer := makeServerV1(t)
	defer closer()

	var classes struct {
		Classes []string `json:"classes"`
	}
	code := getJSON(t, addr+"/api/v1/classes", &classes)
	require.Equal(t, http.StatusOK, code)
	require.ElementsMatch(t, []string{string(person), string(male), string(female)}, classes.Classes)

	var inds struct {
		Individuals []string `json:"individuals"`
	}
	code = getJSON(t, addr+"/api/v1/individuals", &inds)
	require.Equal(t, http.StatusOK, code)
	require.ElementsMatch(t, []string{string(anna), string(heinz), string(markus)}, inds.Individuals)

	var objProps struct {
		ObjectProperties []string `json:"object_properties"`
	}
	code = getJSON(t, addr+"/api/v1/object_properties", &objProps)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{string(hasChild)}, objProps.ObjectProperties)

	var dataProps struct {
		DataProperties []string `json:"data_properties"`
	}
	code = getJSON(t, addr+"/api/v1/data_properties", &dataProps)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{string(hasAge)}, dataProps.DataProperties)
}

func TestV1Instances(t *testing.T) {
	addr, _, closer := makeServerV1(t)
	defer closer()

	var out struct {
		Instances []string `json:"instances"`
	}
	code := postJSON(t, addr+"/api/v1/instances", map[string]string{
		"class_iri": string(male),
	}, &out)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{string(heinz), string(markus)}, out.Instances)

	out.Instances = nil
	code = postJSON(t, addr+"/api/v1/instances", map[string]string{
		"expression": "∃hasChild.⊤",
	}, &out)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{string(anna), string(markus)}, out.Instances)

	out.Instances = nil
	code = postJSON(t, addr+"/api/v1/instances", map[string]string{
		"expression": "hasChild some female",
		"syntax":     "manchester",
	}, &out)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{string(markus)}, out.Instances)
}

func TestV1InstancesErrors(t *testing.T) {
	addr, _, closer := makeServerV1(t)
	defer closer()

	var out struct {
		Error string `json:"error"`
	}
	code := postJSON(t, addr+"/api/v1/instances", map[string]string{}, &out)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, out.Error, "class_iri or expression")

	out.Error = ""
	code = postJSON(t, addr+"/api/v1/instances", map[string]string{
		"expression": "male",
		"syntax":     "krss",
	}, &out)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, out.Error, "unknown expression syntax")

	out.Error = ""
	code = postJSON(t, addr+"/api/v1/instances", map[string]string{
		"expression": "male ⊔",
	}, &out)
	require.Equal(t, http.StatusBadRequest, code)
	require.NotEmpty(t, out.Error)
}

func TestV1Boxes(t *testing.T) {
	addr, _, closer := makeServerV1(t)
	defer closer()

	var abox struct {
		ABox []string `json:"abox"`
	}
	code := getJSON(t, addr+"/api/v1/abox", &abox)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, abox.ABox, 6)
	require.Contains(t, abox.ABox, owl.ClassAssertion{Class: male, Individual: markus}.String())

	var tbox struct {
		TBox []string `json:"tbox"`
	}
	code = getJSON(t, addr+"/api/v1/tbox", &tbox)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, tbox.TBox, owl.SubClassOf{Sub: male, Super: person}.String())
	for _, s := range tbox.TBox {
		require.NotContains(t, s, "Assertion")
	}
}

func TestV1InferAxioms(t *testing.T) {
	addr, _, closer := makeServerV1(t)
	defer closer()

	var out struct {
		InferredAxioms []string `json:"inferred_axioms"`
	}
	code := postJSON(t, addr+"/api/v1/infer_axioms", map[string]string{
		"inference_type": "subclass",
	}, &out)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, out.InferredAxioms, owl.SubClassOf{Sub: male, Super: person}.String())

	out.InferredAxioms = nil
	code = postJSON(t, addr+"/api/v1/infer_axioms", map[string]string{
		"inference_type": "all",
	}, &out)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, out.InferredAxioms, owl.ClassAssertion{Class: person, Individual: markus}.String())

	var errOut struct {
		Error string `json:"error"`
	}
	code = postJSON(t, addr+"/api/v1/infer_axioms", map[string]string{
		"inference_type": "bogus",
	}, &errOut)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, errOut.Error, "unknown inference type")
}

func TestV1Ontology(t *testing.T) {
	addr, _, closer := makeServerV1(t)
	defer closer()

	resp, err := http.Get(addr + "/api/v1/ontology")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, contentTypeJSONLD, resp.Header.Get(hdrContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &doc))
	require.Contains(t, doc, "@context")

	// Native literals (the hasAge integer) must serialize, not 500.
	require.Contains(t, string(body), `"60"`)
}

func TestV1Health(t *testing.T) {
	addr, _, closer := makeServerV1(t)
	defer closer()

	var out struct {
		Status   string `json:"status"`
		Ontology string `json:"ontology"`
		Axioms   int    `json:"axioms"`
	}
	code := getJSON(t, addr+"/health", &out)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", out.Status)
	require.Equal(t, "http://example.com/family", out.Ontology)
	require.Equal(t, 13, out.Axioms)
}

func TestV1Metrics(t *testing.T) {
	addr, _, closer := makeServerV1(t)
	defer closer()

	var out struct {
		Status string `json:"status"`
	}
	getJSON(t, addr+"/health", &out)

	resp, err := http.Get(addr + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(data), "owlgo_http_requests_total")
}

func TestV1Wrappers(t *testing.T) {
	o := familyOntology()
	var seen []string
	wrapper := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, r.URL.Path)
			h.ServeHTTP(w, r)
		})
	}
	api := NewAPIv1(o, reasoner.NewStructural(o), wrapper)
	srv := httptest.NewServer(api)
	defer srv.Close()

	var out struct {
		Status string `json:"status"`
	}
	code := getJSON(t, srv.URL+"/health", &out)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"/health"}, seen)
}
