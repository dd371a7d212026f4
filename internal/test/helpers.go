// Package test provides helpers for the API tests.
package test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"reflect"
	"testing"

	"github.com/paisaflow/backend/internal/config"
	"github.com/paisaflow/backend/internal/router"
	"github.com/stretchr/testify/assert"
)

// Request is a helper method to simplify making a HTTP request for tests.
//
// The request is served by a fresh router with the default settings and
// a temporary upload directory.
func Request(t *testing.T, method, url, body string, headers ...map[string]string) httptest.ResponseRecorder {
	byteStr := []byte(body)

	os.Setenv("LOG_FORMAT", "human")

	loader, err := config.NewLoader("")
	if err != nil {
		assert.FailNow(t, "Settings could not be initialized")
	}

	r, err := router.Router(loader, t.TempDir())
	if err != nil {
		assert.FailNow(t, "Router could not be initialized")
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, bytes.NewBuffer(byteStr))

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

func AssertHTTPStatus(t *testing.T, expected int, r *httptest.ResponseRecorder) {
	assert.Equal(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target interface{}) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}

// LoadTestFile loads a test file from the testdata directory.
//
// File contents are returned as a buffer and a map for the HTTP request headers.
func LoadTestFile(t *testing.T, filePath string) (*bytes.Buffer, map[string]string) {
	path := path.Join("testdata", filePath)
	body := new(bytes.Buffer)

	mw := multipart.NewWriter(body)

	file, err := os.Open(path)
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	w, err := mw.CreateFormFile("file", filePath)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	if _, err := io.Copy(w, file); err != nil {
		assert.Fail(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
