package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	Title    string `json:"title" validate:"notblank,max=200"`
	Audience string `json:"audience" validate:"omitempty,audience"`
}

func TestDecodeValidAccepts(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Exams","audience":"Students"}`))
	rec := httptest.NewRecorder()

	var payload samplePayload
	ok := DecodeValid(rec, req, &payload)

	assert.True(t, ok)
	assert.Equal(t, "Exams", payload.Title)
}

func TestDecodeValidRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		code string
		text string
	}{
		{"blank title", `{"title":"  "}`, "invalid_request", "title cannot be blank"},
		{"bad audience", `{"title":"x","audience":"alumni"}`, "invalid_audience", "audience must be all, students or faculty"},
		{"unknown field", `{"title":"x","extra":1}`, "invalid_json", "invalid json body"},
		{"trailing object", `{"title":"x"}{"title":"y"}`, "invalid_json", "invalid json body"},
		{"oversized body", `{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`, "invalid_json", "invalid json body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			var payload samplePayload
			ok := DecodeValid(rec, req, &payload)

			assert.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.code)
			assert.Contains(t, rec.Body.String(), tc.text)
		})
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID(" 3F2504E0-4F89-11D3-9A0C-0305E82C3301 ")
	assert.True(t, ok)
	assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", id)

	_, ok = ParseID("missing")
	assert.False(t, ok)
}
