package wikipedia

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// apiCall is one request received by the fake API
type apiCall struct {
	Language string
	Form     url.Values
}

// fakeAPI is an httptest server standing in for <lang>.wikipedia.org.
// The language is the first path segment of the request URL.
type fakeAPI struct {
	server  *httptest.Server
	mu      sync.Mutex
	calls   []apiCall
	respond func(call apiCall) interface{}
}

func newFakeAPI(t *testing.T, respond func(call apiCall) interface{}) *fakeAPI {
	t.Helper()
	f := &fakeAPI{respond: respond}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		call := apiCall{
			Language: strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)[0],
			Form:     r.PostForm,
		}
		f.mu.Lock()
		f.calls = append(f.calls, call)
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.respond(call))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) client(opts ...ClientOption) *Client {
	base := []ClientOption{
		WithAPIURL(f.server.URL + "/%s/w/api.php"),
		WithLogger(discardLogger()),
	}
	return NewClient(append(base, opts...)...)
}

func (f *fakeAPI) Calls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// obj is shorthand for JSON objects in fake responses
type obj = map[string]interface{}

// arr is shorthand for JSON arrays in fake responses
type arr = []interface{}

// decode round-trips a Go literal through JSON so it has the shapes
// encoding/json produces (float64 numbers, []interface{} arrays)
func decode(t *testing.T, v interface{}) Response {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Response
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}
