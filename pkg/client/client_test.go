package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// idle keep-alive connections held by the default transport
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.CloseClientConnections()
		srv.Close()
	})
	return srv, New(srv.URL+"/api", WithHTTPClient(srv.Client()))
}

func TestFetchAll(t *testing.T) {
	var gotPath string
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"AssessmentID":2},{"AssessmentID":1}]`))
	})

	resp, err := c.Resource("AssessmentProfile").FetchAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if gotPath != "/api/AssessmentProfile/" {
		t.Errorf("Path = %q, want /api/AssessmentProfile/", gotPath)
	}
	if resp.Status != http.StatusOK {
		t.Errorf("Status = %d", resp.Status)
	}

	var rows []map[string]any
	if err := resp.Decode(&rows); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(rows) != 2 || rows[0]["AssessmentID"] != 2.0 {
		t.Errorf("Rows = %v", rows)
	}
}

func TestFetchAllWithQuery(t *testing.T) {
	var gotQuery string
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	query := url.Values{"assessmentId": []string{"12"}}
	if _, err := c.Resource("Photo").FetchAll(context.Background(), query); err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if gotQuery != "assessmentId=12" {
		t.Errorf("Query = %q", gotQuery)
	}
}

func TestFetchByID(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/AssessmentProfile/7" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"AssessmentID":7,"District":"Yolo"}`))
	})

	resp, err := c.Resource("AssessmentProfile").FetchByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("FetchByID failed: %v", err)
	}

	var row map[string]any
	if err := resp.Decode(&row); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if row["District"] != "Yolo" {
		t.Errorf("District = %v", row["District"])
	}
}

func TestCreateSendsJSONBody(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Invalid body: %v", err)
		}
		if body["District"] != "Sacramento" {
			t.Errorf("Body = %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"AssessmentID":1,"District":"Sacramento"}`))
	})

	resp, err := c.Resource("AssessmentProfile").Create(context.Background(),
		map[string]any{"District": "Sacramento"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if resp.Status != http.StatusCreated {
		t.Errorf("Status = %d, want 201", resp.Status)
	}
}

func TestNonOKRaisesAPIError(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"unknown field \"Bogus\""}`))
	})

	_, err := c.Resource("AssessmentProfile").Create(context.Background(),
		map[string]any{"Bogus": 1})
	if err == nil {
		t.Fatal("Expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d", apiErr.Status)
	}
	var body map[string]string
	if err := json.Unmarshal(apiErr.Data, &body); err != nil {
		t.Fatalf("Error body should be parsed JSON: %v", err)
	}
	if body["error"] == "" {
		t.Error("Error body should carry the server message")
	}
}

func TestTextResponseClassification(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("pong"))
	})

	resp, err := c.Resource("AssessmentProfile").FetchAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if resp.Text != "pong" {
		t.Errorf("Text = %q", resp.Text)
	}
	if len(resp.Data) != 0 {
		t.Errorf("Data should be empty for text responses, got %q", resp.Data)
	}
}

func TestLogin(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Login" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		w.Header().Set("Content-Type", "application/json")
		if creds["username"] == "admin" && creds["password"] == "pass" {
			w.Write([]byte(`{"ok":true}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false}`))
	})

	if err := c.Login(context.Background(), "admin", "pass"); err != nil {
		t.Errorf("Valid login failed: %v", err)
	}

	err := c.Login(context.Background(), "admin", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Invalid login should raise a 401 APIError, got %v", err)
	}
}

func TestBaseURLNormalization(t *testing.T) {
	c := New("http://example.test/api/")
	if c.baseURL != "http://example.test/api" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}
