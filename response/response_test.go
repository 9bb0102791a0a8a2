package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cydxin/party-sdk/service"
)

func TestFromError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"party full", service.ErrPartyFull, http.StatusBadRequest, CodePartyFull},
		{"self join", service.ErrSelfJoinDenied, http.StatusBadRequest, CodeSelfJoinDenied},
		{"closed", service.ErrPartyClosed, http.StatusBadRequest, CodePartyClosed},
		{"duplicate", service.ErrAlreadyJoined, http.StatusBadRequest, CodeAlreadyJoined},
		{"invalid param", service.ErrInvalidParam, http.StatusBadRequest, CodeParamError},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, CodePermissionDeny},
		{"not found", service.ErrNotFound, http.StatusNotFound, CodeNotFound},
		{"wrapped", fmt.Errorf("join: %w", service.ErrPartyFull), http.StatusBadRequest, CodePartyFull},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, CodeInternalError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := FromError(tc.err)
			if status != tc.wantStatus {
				t.Fatalf("status=%d want %d", status, tc.wantStatus)
			}
			if resp.Code != tc.wantCode {
				t.Fatalf("code=%d want %d", resp.Code, tc.wantCode)
			}
		})
	}
}

func TestFromError_HidesInternalDetail(t *testing.T) {
	_, resp := FromError(errors.New("dial tcp 10.0.0.1:3306: connection refused"))
	if resp.Msg != "internal error" {
		t.Fatalf("msg=%q", resp.Msg)
	}
}

func TestWriteJSONWithStatus(t *testing.T) {
	w := httptest.NewRecorder()
	Error(CodeTokenInvalid, "missing token").WriteJSONWithStatus(w, http.StatusUnauthorized)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type=%q", ct)
	}
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != CodeTokenInvalid || body.Msg != "missing token" {
		t.Fatalf("body=%+v", body)
	}
}
