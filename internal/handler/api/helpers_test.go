//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
)

var errDBConnectionLost = errors.New("database connection lost")

func jsonDecode(rec *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(rec.Body.Bytes(), target)
}
