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
	stderr "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/modelver/modelver/pkg/errors"
	"github.com/modelver/modelver/pkg/serializer"
	"github.com/modelver/modelver/pkg/store"
	"github.com/modelver/modelver/pkg/version"
)

// ErrorResponse is the JSON body returned for every API error.
type ErrorResponse struct {
	Code      errors.ErrorCode       `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"requestId"`
	Timestamp time.Time              `json:"timestamp"`
	Retryable bool                   `json:"retryable"`
}

// writeError writes error response
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]interface{}) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// writeStoreError maps store and version sentinels to HTTP responses.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case stderr.Is(err, store.ErrVersionExists):
		s.writeError(w, r, http.StatusConflict, errors.ErrCodeVersionExists,
			err.Error(), false, nil)
	case stderr.Is(err, store.ErrNoVersions):
		s.writeError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			err.Error(), false, nil)
	case stderr.Is(err, version.ErrInvalidVersion), stderr.Is(err, version.ErrUnknownKind):
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidVersion,
			err.Error(), false, nil)
	default:
		s.writeError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
			"Internal server error", true, nil)
	}
}
