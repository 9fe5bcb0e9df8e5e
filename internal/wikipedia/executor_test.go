package wikipedia

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
)

func TestExecute_EncodesNonASCIIAsUTF8(t *testing.T) {
	titles := []string{
		"Zürich",
		"東京",
		"Москва",
		"Ελλάδα",
		"Café & Crème",
		"100% pure",
		"a+b=c",
		"🙂 emoji",
	}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			var rawBody string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				rawBody = string(b)
				_, _ = w.Write([]byte(`{}`))
			}))
			defer server.Close()

			c := NewClient(WithAPIURL(server.URL), WithLogger(discardLogger()))
			req := NewRequest(ActionQuery, url.Values{"titles": {title}}, "en")
			if _, err := c.Execute(context.Background(), req); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}

			parsed, err := url.ParseQuery(rawBody)
			if err != nil {
				t.Fatalf("body is not valid form encoding: %v", err)
			}
			if got := parsed.Get("titles"); got != title {
				t.Errorf("decoded title = %q, want %q", got, title)
			}
			for _, r := range rawBody {
				if r > 127 {
					t.Fatalf("raw body contains non-ASCII rune %q: %s", r, rawBody)
				}
			}
		})
	}
}

func TestExecute_SetsActionAndFormat(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} { return obj{} })
	c := api.client()

	req := NewRequest(ActionParse, url.Values{"page": {"Go"}}, "de")
	if _, err := c.Execute(context.Background(), req); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	calls := api.Calls()
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	form := calls[0].Form
	if form.Get("action") != "parse" {
		t.Errorf("action = %q, want parse", form.Get("action"))
	}
	if form.Get("format") != "json" {
		t.Errorf("format = %q, want json", form.Get("format"))
	}
	if form.Get("page") != "Go" {
		t.Errorf("page = %q, want Go", form.Get("page"))
	}
	if calls[0].Language != "de" {
		t.Errorf("language = %q, want de", calls[0].Language)
	}
}

func TestExecute_EmptyLanguageUsesDefault(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} { return obj{} })

	tests := []struct {
		name string
		opts []ClientOption
		want string
	}{
		{"built-in default", nil, "en"},
		{"configured default", []ClientOption{WithDefaultLanguage("sv")}, "sv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(api.Calls())
			c := api.client(tt.opts...)
			if _, err := c.Execute(context.Background(), NewRequest(ActionQuery, nil, "")); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			calls := api.Calls()
			if got := calls[before].Language; got != tt.want {
				t.Errorf("language = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecute_PassesThroughArrays(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return arr{"go", arr{"Go", "Gopher"}, arr{"", ""}, arr{"u1", "u2"}}
	})

	got, err := api.client().Execute(context.Background(), NewRequest(ActionOpenSearch, url.Values{"search": {"go"}}, "en"))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	list, ok := got.([]interface{})
	if !ok || len(list) != 4 {
		t.Fatalf("got %#v, want 4-element array", got)
	}
}

func TestExecute_APIError(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return obj{"error": obj{"code": "badvalue", "info": "Unrecognized value for parameter \"action\""}}
	})

	_, err := api.client().Execute(context.Background(), NewRequest(ActionQuery, nil, "en"))
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*apierrors.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != "badvalue" {
		t.Errorf("code = %q, want badvalue", apiErr.Code)
	}
}

func TestExecute_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<!DOCTYPE html><html>maintenance</html>`))
	}))
	defer server.Close()

	c := NewClient(WithAPIURL(server.URL), WithLogger(discardLogger()))
	_, err := c.Execute(context.Background(), NewRequest(ActionQuery, nil, "en"))
	if !apierrors.IsDecode(err) {
		t.Errorf("expected DecodeError, got %v", err)
	}
}

func TestExecute_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(WithAPIURL(server.URL), WithLogger(discardLogger()))
	_, err := c.Execute(context.Background(), NewRequest(ActionQuery, nil, "en"))
	if !apierrors.IsTransport(err) {
		t.Errorf("expected TransportError, got %v", err)
	}
}

func TestExecute_UnknownLanguageHost(t *testing.T) {
	c := NewClient(
		WithAPIURL("http://%s.invalid/w/api.php"),
		WithLogger(discardLogger()),
	)
	_, err := c.Execute(context.Background(), NewRequest(ActionQuery, nil, "xx"))
	if !apierrors.IsTransport(err) {
		t.Errorf("expected TransportError for unresolvable host, got %v", err)
	}
}

func TestQuery_RejectsNonObject(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} { return arr{1, 2} })

	_, err := api.client().query(context.Background(), NewRequest(ActionQuery, nil, "en"))
	if !apierrors.IsUnexpectedShape(err) {
		t.Errorf("expected UnexpectedResponseShapeError, got %v", err)
	}
}

func TestRequest_WithContinuationDoesNotMutate(t *testing.T) {
	params := url.Values{"list": {"categorymembers"}}
	req := NewRequest(ActionQuery, params, "en")

	next := req.WithContinuation(map[string]string{"cmcontinue": "page|123", "continue": "-||"})

	if req.Params.Get("cmcontinue") != "" {
		t.Error("original request was modified")
	}
	if next.Params.Get("cmcontinue") != "page|123" {
		t.Errorf("cmcontinue = %q, want page|123", next.Params.Get("cmcontinue"))
	}
	if next.Params.Get("list") != "categorymembers" {
		t.Error("base parameters were lost")
	}

	params.Set("list", "changed")
	if req.Params.Get("list") != "categorymembers" {
		t.Error("NewRequest did not copy params")
	}
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		template string
		lang     string
		want     string
	}{
		{DefaultAPIURL, "en", "https://en.wikipedia.org/w/api.php"},
		{DefaultAPIURL, "zh-min-nan", "https://zh-min-nan.wikipedia.org/w/api.php"},
		{"http://localhost:8080/api", "fr", "http://localhost:8080/api"},
	}

	for _, tt := range tests {
		c := NewClient(WithAPIURL(tt.template))
		if got := c.endpoint(tt.lang); got != tt.want {
			t.Errorf("endpoint(%q) with %q = %q, want %q", tt.lang, tt.template, got, tt.want)
		}
	}
}
