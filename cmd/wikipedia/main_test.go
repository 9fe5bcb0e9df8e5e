package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const einsteinWikitext = "Lead with [[Physics|science]].\n== Life ==\nBorn in [[Ulm]]."

func newWikiServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("action") == "opensearch" {
			_, _ = w.Write([]byte(`["Ein",["Einstein"],["Physicist"],["https://en.wikipedia.org/wiki/Einstein"]]`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"query": map[string]any{"pages": map[string]any{"736": map[string]any{
				"pageid": 736, "title": "Albert Einstein",
				"revisions": []any{map[string]any{"revid": 99, "*": einsteinWikitext}},
			}}},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmdHasSubcommands(t *testing.T) {
	want := []string{"search", "wikitext", "html", "langlinks", "article", "categories", "members", "views", "sections", "links"}
	cmd := newRootCmd()
	for _, name := range want {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("subcommand %q not found", name)
		}
	}
}

func TestLinksCommand(t *testing.T) {
	server := newWikiServer(t)

	out, err := execute(t, "links", "Albert Einstein", "--api-url", server.URL+"/%s/w/api.php")
	if err != nil {
		t.Fatalf("links failed: %v\n%s", err, out)
	}

	var result struct {
		Links map[string]string `json:"links"`
		Count int               `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if result.Count != 2 || result.Links["science"] != "Physics" || result.Links["Ulm"] != "Ulm" {
		t.Errorf("unexpected links: %+v", result)
	}
}

func TestSectionsCommandHeadersOnly(t *testing.T) {
	server := newWikiServer(t)

	out, err := execute(t, "sections", "Albert Einstein", "--headers-only", "--api-url", server.URL+"/%s/w/api.php")
	if err != nil {
		t.Fatalf("sections failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"Life"`) {
		t.Errorf("output missing Life header:\n%s", out)
	}
	if strings.Contains(out, "Born in") {
		t.Errorf("headers-only output contains section body:\n%s", out)
	}
}

func TestSearchCommand(t *testing.T) {
	server := newWikiServer(t)

	out, err := execute(t, "search", "Ein", "-l", "en", "--api-url", server.URL+"/%s/w/api.php")
	if err != nil {
		t.Fatalf("search failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"Einstein"`) {
		t.Errorf("output missing suggestion:\n%s", out)
	}
}

func TestViewsCommandRequiresFrom(t *testing.T) {
	if _, err := execute(t, "views", "Einstein"); err == nil {
		t.Error("expected an error without --from")
	}
}

func TestArticleCommandRequiresTarget(t *testing.T) {
	if _, err := execute(t, "article", "Einstein"); err == nil {
		t.Error("expected an error without --to")
	}
}

func TestInvalidLanguageIsRejected(t *testing.T) {
	server := newWikiServer(t)

	if _, err := execute(t, "wikitext", "Einstein", "-l", "EN", "--api-url", server.URL+"/%s/w/api.php"); err == nil {
		t.Error("expected a validation error for an uppercase language code")
	}
}
