package kitcache

import (
	"encoding/json"
	"net/http"
)

// Entry is a cached upstream response: status, headers as generated at
// fetch time (including the Date header set at cache-write time), and a
// snapshot of the body.
type Entry struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

func (e Entry) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func DecodeEntry(b []byte) (Entry, error) {
	var e Entry
	err := json.Unmarshal(b, &e)
	return e, err
}
