// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesrp_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// fakeES is a tiny in-process imitation of the Elasticsearch document
// APIs which the places repository uses. Documents are kept in their
// indexing order, so search results follow that order.
type fakeES struct {
	mutex   sync.Mutex
	indices map[string]string // index name -> mapping
	ids     []string
	docs    map[string]map[string]any
	reqs    []string
}

func newFakeES() (*fakeES, *httptest.Server) {
	f := &fakeES{
		indices: make(map[string]string),
		docs:    make(map[string]map[string]any),
	}
	return f, httptest.NewServer(f)
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.reqs = append(f.reqs, r.Method+" "+r.URL.Path)
	w.Header().Set("Content-Type", "application/json")
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	body, _ := io.ReadAll(r.Body)
	switch {
	case len(parts) == 1 && r.Method == http.MethodHead:
		if _, ok := f.indices[parts[0]]; !ok {
			w.WriteHeader(http.StatusNotFound)
		}
	case len(parts) == 1 && r.Method == http.MethodPut:
		f.indices[parts[0]] = string(body)
		f.reply(w, http.StatusOK, map[string]any{
			"acknowledged": true, "index": parts[0],
		})
	case len(parts) == 2 && parts[1] == "_search":
		f.search(w, parts[0], body)
	case len(parts) == 3 && parts[1] == "_update":
		f.update(w, parts[0], parts[2], body)
	case len(parts) == 3 && (parts[1] == "_doc" || parts[1] == "_create"):
		f.doc(w, r.Method, parts[0], parts[2], body)
	default:
		f.reply(w, http.StatusBadRequest, map[string]any{
			"error":  map[string]any{"type": "unexpected_request"},
			"status": http.StatusBadRequest,
		})
	}
}

func (f *fakeES) doc(
	w http.ResponseWriter, method, index, id string, body []byte,
) {
	d, found := f.docs[id]
	switch method {
	case http.MethodPut, http.MethodPost:
		var src map[string]any
		if err := json.Unmarshal(body, &src); err != nil {
			f.reply(w, http.StatusBadRequest, map[string]any{
				"error":  map[string]any{"type": "parse_exception"},
				"status": http.StatusBadRequest,
			})
			return
		}
		if !found {
			f.ids = append(f.ids, id)
		}
		f.docs[id] = src
		f.reply(w, http.StatusCreated, map[string]any{
			"_index": index, "_id": id, "result": "created",
		})
	case http.MethodGet:
		if !found {
			f.reply(w, http.StatusNotFound, map[string]any{
				"_index": index, "_id": id, "found": false,
			})
			return
		}
		f.reply(w, http.StatusOK, map[string]any{
			"_index": index, "_id": id, "found": true, "_source": d,
		})
	case http.MethodDelete:
		if !found {
			f.reply(w, http.StatusNotFound, map[string]any{
				"_index": index, "_id": id, "result": "not_found",
			})
			return
		}
		delete(f.docs, id)
		for i, x := range f.ids {
			if x == id {
				f.ids = append(f.ids[:i], f.ids[i+1:]...)
				break
			}
		}
		f.reply(w, http.StatusOK, map[string]any{
			"_index": index, "_id": id, "result": "deleted",
		})
	}
}

func (f *fakeES) update(
	w http.ResponseWriter, index, id string, body []byte,
) {
	d, found := f.docs[id]
	if !found {
		f.reply(w, http.StatusNotFound, map[string]any{
			"error": map[string]any{
				"type":   "document_missing_exception",
				"reason": "[" + id + "]: document missing",
			},
			"status": http.StatusNotFound,
		})
		return
	}
	var req struct {
		Doc map[string]any `json:"doc"`
	}
	_ = json.Unmarshal(body, &req)
	for k, v := range req.Doc {
		d[k] = v
	}
	f.reply(w, http.StatusOK, map[string]any{
		"_index": index, "_id": id, "result": "updated",
	})
}

func (f *fakeES) search(w http.ResponseWriter, index string, body []byte) {
	if _, ok := f.indices[index]; !ok {
		f.reply(w, http.StatusNotFound, map[string]any{
			"error":  map[string]any{"type": "index_not_found_exception"},
			"status": http.StatusNotFound,
		})
		return
	}
	var req struct {
		Query struct {
			Term map[string]any `json:"term"`
		} `json:"query"`
		Size int `json:"size"`
	}
	_ = json.Unmarshal(body, &req)
	creator := ""
	if v, ok := req.Query.Term["creator"]; ok {
		switch t := v.(type) {
		case string:
			creator = t
		case map[string]any:
			creator, _ = t["value"].(string)
		}
	}
	hits := []map[string]any{}
	for _, id := range f.ids {
		if f.docs[id]["creator"] != creator {
			continue
		}
		if req.Size > 0 && len(hits) == req.Size {
			break
		}
		hits = append(hits, map[string]any{
			"_index": index, "_id": id, "_source": f.docs[id],
		})
	}
	f.reply(w, http.StatusOK, map[string]any{
		"took": 1,
		"hits": map[string]any{
			"total": map[string]any{"value": len(hits), "relation": "eq"},
			"hits":  hits,
		},
	})
}

func (f *fakeES) reply(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
