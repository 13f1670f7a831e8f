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

package ontology

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/jsonld"
	_ "github.com/cayleygraph/quad/nquads"

	"github.com/owlgraph/owlgo/internal/decompressor"
	"github.com/owlgraph/owlgo/olog"
)

// DefaultFormat is used when neither an explicit format name nor a
// known file extension selects one.
const DefaultFormat = "nquads"

// FormatFor resolves a quad format from an explicit name, falling back
// to the extension of path and then to DefaultFormat.
func FormatFor(path, name string) (*quad.Format, error) {
	if name != "" {
		f := quad.FormatByName(name)
		if f == nil {
			return nil, fmt.Errorf("unknown quad format %q", name)
		}
		return f, nil
	}
	ext := filepath.Ext(path)
	for _, suffix := range []string{".gz", ".bz2"} {
		if ext == suffix {
			ext = filepath.Ext(strings.TrimSuffix(path, suffix))
		}
	}
	if f := quad.FormatByExt(ext); f != nil {
		return f, nil
	}
	return quad.FormatByName(DefaultFormat), nil
}

// Load fetches an ontology from a local path or an http(s) URL,
// transparently decompressing gzip and bzip2 payloads. An empty
// formatName selects the format by file extension.
func Load(path, formatName string) (*Ontology, error) {
	format, err := FormatFor(path, formatName)
	if err != nil {
		return nil, err
	}
	var r io.Reader
	u, err := url.Parse(path)
	if err != nil || u.Scheme == "file" || u.Scheme == "" {
		// Don't alter relative URL path or non-URL path parameter.
		if u != nil && u.Scheme != "" && err == nil {
			// Recovery heuristic for mistyping "file://path/to/file".
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open file %q: %v", path, err)
		}
		defer f.Close()
		r = f
	} else {
		res, err := http.Get(path)
		if err != nil {
			return nil, fmt.Errorf("could not get resource <%s>: %v", u, err)
		}
		defer res.Body.Close()
		r = res.Body
	}
	r, err = decompressor.New(r)
	if err != nil {
		if err == io.EOF {
			return New(""), nil
		}
		return nil, err
	}
	onto, err := Read(r, format)
	if err != nil {
		return nil, fmt.Errorf("could not load %q: %v", path, err)
	}
	olog.Infof("loaded %d axioms from %q", onto.Len(), path)
	return onto, nil
}

// Read decodes an ontology from r using the given quad format.
func Read(r io.Reader, format *quad.Format) (*Ontology, error) {
	if format == nil || format.Reader == nil {
		return nil, fmt.Errorf("format does not support reading")
	}
	qr := format.Reader(r)
	defer qr.Close()
	quads, err := quad.ReadAll(qr)
	if err != nil {
		return nil, err
	}
	return FromQuads(quads)
}

// Write encodes the ontology to w using the given quad format.
func (o *Ontology) Write(w io.Writer, format *quad.Format) error {
	if format == nil || format.Writer == nil {
		return fmt.Errorf("format does not support writing")
	}
	qw := format.Writer(w)
	for _, q := range o.Quads() {
		if err := qw.WriteQuad(q); err != nil {
			qw.Close()
			return err
		}
	}
	return qw.Close()
}

// Save writes the ontology to path. An empty formatName selects the
// format by file extension.
func (o *Ontology) Save(path, formatName string) error {
	format, err := FormatFor(path, formatName)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file %q: %v", path, err)
	}
	if err := o.Write(f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	olog.Infof("saved %d axioms to %q", o.Len(), path)
	return nil
}
