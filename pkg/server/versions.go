// Copyright (c) 2026, the modelver authors.
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

package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/modelver/modelver/pkg/errors"
	"github.com/modelver/modelver/pkg/serializer"
	"github.com/modelver/modelver/pkg/version"
)

// VersionEntry is the API representation of one stored version.
type VersionEntry struct {
	Version string `json:"version"`
	Path    string `json:"path"`
}

// VersionListResponse is the body of GET /v1/versions.
type VersionListResponse struct {
	Versions []VersionEntry `json:"versions"`
	Count    int            `json:"count"`
}

// AddVersionRequest is the body of POST /v1/versions. Exactly one of
// Version or Bump must be set: an explicit version string, or a bump kind
// (major, minor, patch) applied to the latest version.
type AddVersionRequest struct {
	Version string `json:"version,omitempty"`
	Bump    string `json:"bump,omitempty"`
}

// handleVersions routes /v1/versions by method.
func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListVersions(w, r)
	case http.MethodPost:
		s.handleAddVersion(w, r)
	default:
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
	}
}

func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	history, err := s.store.History()
	if err != nil {
		slog.Error("failed to read version history", "error", err)
		s.writeStoreError(w, r, err)
		return
	}

	resp := VersionListResponse{
		Versions: make([]VersionEntry, 0, len(history)),
		Count:    len(history),
	}
	for _, v := range history {
		resp.Versions = append(resp.Versions, s.entry(v))
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddVersion(w http.ResponseWriter, r *http.Request) {
	var req AddVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid request body", false, nil)
		return
	}

	if (req.Version == "") == (req.Bump == "") {
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Exactly one of version or bump is required", false, nil)
		return
	}

	var (
		v   version.Version
		err error
	)
	if req.Version != "" {
		v, err = s.store.AddString(req.Version)
	} else {
		var kind version.Kind
		kind, err = version.ParseKind(req.Bump)
		if err == nil {
			v, err = s.store.Create(kind)
		}
	}
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	slog.Info("version added via api",
		"version", v.String(),
		"requestID", r.Context().Value(contextKeyRequestID))

	serializer.RespondJSON(w, http.StatusCreated, s.entry(v))
}

// handleLatest handles GET /v1/versions/latest.
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	latest, err := s.store.Latest()
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, s.entry(latest))
}

func (s *Server) entry(v version.Version) VersionEntry {
	return VersionEntry{
		Version: v.String(),
		Path:    s.store.Path(v),
	}
}
