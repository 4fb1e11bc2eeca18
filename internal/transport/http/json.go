package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

type tokenRequestJSON struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponseJSON struct {
	Token      string `json:"token"`
	Expiration string `json:"expiration"`
}

type readingJSON struct {
	CustomerID int32  `json:"customerId"`
	Value      int32  `json:"value"`
	Time       string `json:"time"`
}

type addReadingsRequestJSON struct {
	Readings []readingJSON `json:"readings"`
	Status   string        `json:"status,omitempty"`
	Notes    string        `json:"notes,omitempty"`
}

type addReadingsResponseJSON struct {
	Status string `json:"status"`
}

type apiErrorJSON struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	RequestID string            `json:"requestId,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseRFC3339(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, errors.New("time is required")
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		// allow nano timestamps too (RFC3339Nano is a superset)
		t2, err2 := time.Parse(time.RFC3339Nano, v)
		if err2 != nil {
			return time.Time{}, err
		}
		t = t2
	}
	return t.UTC(), nil
}
