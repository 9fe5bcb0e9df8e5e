package wikipedia

import (
	"context"
	"reflect"
	"testing"

	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
	"github.com/olgasafonova/wikipedia-mcp-server/internal/markup"
)

const sampleWikitext = "Lead with [[Physics|science]].\n== Life ==\nBorn in [[Ulm]].\n=== Later ===\nMoved to [[Princeton, New Jersey|Princeton]]."

func wikitextAPI(t *testing.T) *fakeAPI {
	return newFakeAPI(t, func(call apiCall) interface{} {
		return obj{"query": obj{"pages": obj{"736": obj{
			"pageid": 736, "title": "Albert Einstein",
			"revisions": arr{obj{"revid": 99, "*": sampleWikitext}},
		}}}}
	})
}

func TestSearchMCP(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return arr{"Ein", arr{"Einstein"}, arr{"Physicist"}, arr{"https://de.wikipedia.org/wiki/Einstein"}}
	})

	result, err := api.client().SearchMCP(context.Background(), SearchArgs{Query: "Ein", Language: "de"})
	if err != nil {
		t.Fatalf("SearchMCP failed: %v", err)
	}
	if result.Language != "de" || len(result.Suggestions) != 1 || result.Suggestions[0].Title != "Einstein" {
		t.Errorf("unexpected result: %+v", result)
	}
	if got := api.Calls()[0].Form.Get("limit"); got != "10" {
		t.Errorf("limit = %q, want default 10", got)
	}
}

func TestSearchMCP_Validation(t *testing.T) {
	c := NewClient(WithAPIURL("http://unused.invalid/%s"))

	tests := []SearchArgs{
		{Query: ""},
		{Query: "ok", Language: "EN"},
		{Query: "ok", Limit: -1},
		{Query: "ok", Limit: 501},
	}
	for _, args := range tests {
		if _, err := c.SearchMCP(context.Background(), args); !apierrors.IsValidation(err) {
			t.Errorf("SearchMCP(%+v) error = %v, want ValidationError", args, err)
		}
	}
}

func TestGetWikitextMCP(t *testing.T) {
	api := wikitextAPI(t)

	result, err := api.client().GetWikitextMCP(context.Background(), GetWikitextArgs{Title: "Albert Einstein"})
	if err != nil {
		t.Fatalf("GetWikitextMCP failed: %v", err)
	}
	if result.Wikitext != sampleWikitext || result.RevisionID != 99 || result.Language != "en" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestGetHTMLMCP_Formats(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return obj{"parse": obj{"revid": 3, "text": obj{"*": "<p>Hello <b>world</b></p>"}}}
	})
	c := api.client()

	htmlResult, err := c.GetHTMLMCP(context.Background(), GetHTMLArgs{Title: "Hello"})
	if err != nil {
		t.Fatalf("GetHTMLMCP failed: %v", err)
	}
	if htmlResult.HTML != "<p>Hello <b>world</b></p>" || htmlResult.Text != "" {
		t.Errorf("html format result: %+v", htmlResult)
	}

	textResult, err := c.GetHTMLMCP(context.Background(), GetHTMLArgs{Title: "Hello", Format: FormatText})
	if err != nil {
		t.Fatalf("GetHTMLMCP failed: %v", err)
	}
	if textResult.Text != "Hello world" || textResult.HTML != "" {
		t.Errorf("text format result: %+v", textResult)
	}

	if _, err := c.GetHTMLMCP(context.Background(), GetHTMLArgs{Title: "Hello", Format: "pdf"}); !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError for bad format, got %v", err)
	}
}

func TestGetHTMLMCP_NotFound(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return obj{"error": obj{"code": "missingtitle", "info": "missing"}}
	})

	_, err := api.client().GetHTMLMCP(context.Background(), GetHTMLArgs{Title: "Nope"})
	if !apierrors.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestGetArticleInLanguageMCP_Unsupported(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return obj{"query": obj{"pages": obj{"1": obj{"pageid": 1, "title": "Kvass"}}}}
	})

	result, err := api.client().GetArticleInLanguageMCP(context.Background(), GetArticleInLanguageArgs{
		Title:          "Kvass",
		TargetLanguage: "fi",
	})
	if err != nil {
		t.Fatalf("unsupported language should not be an error: %v", err)
	}
	if result.Supported {
		t.Error("Supported = true, want false")
	}
	if result.Message == "" {
		t.Error("expected explanatory message")
	}
}

func TestGetArticleInLanguageMCP_Supported(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		if call.Form.Get("action") == "query" {
			return obj{"query": obj{"pages": obj{"1": obj{"pageid": 1, "title": "Cat",
				"langlinks": arr{obj{"lang": "fr", "*": "Chat"}}}}}}
		}
		return obj{"parse": obj{"revid": 11, "text": obj{"*": "<p>Le chat</p>"}}}
	})

	result, err := api.client().GetArticleInLanguageMCP(context.Background(), GetArticleInLanguageArgs{
		Title:          "Cat",
		SourceLanguage: "en",
		TargetLanguage: "fr",
		Format:         FormatText,
	})
	if err != nil {
		t.Fatalf("GetArticleInLanguageMCP failed: %v", err)
	}
	if !result.Supported || result.Title != "Chat" || result.Text != "Le chat" || result.SourceTitle != "Cat" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestGetArticleInLanguageMCP_RequiresTarget(t *testing.T) {
	c := NewClient(WithAPIURL("http://unused.invalid/%s"))
	_, err := c.GetArticleInLanguageMCP(context.Background(), GetArticleInLanguageArgs{Title: "Cat"})
	if !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestGetLanguageLinksMCP(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return obj{"query": obj{"pages": obj{"1": obj{"pageid": 1, "title": "Cat",
			"langlinks": arr{obj{"lang": "fr", "*": "Chat"}, obj{"lang": "de", "*": "Katze"}}}}}}
	})

	result, err := api.client().GetLanguageLinksMCP(context.Background(), GetLanguageLinksArgs{Title: "Cat", Limit: 50})
	if err != nil {
		t.Fatalf("GetLanguageLinksMCP failed: %v", err)
	}
	if result.Count != 2 || result.Links["de"] != "Katze" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestGetLanguageLinksBatchMCP(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return obj{"query": obj{
			"normalized": arr{obj{"from": "cat", "to": "Cat"}},
			"pages": obj{"1": obj{"pageid": 1, "title": "Cat",
				"langlinks": arr{obj{"lang": "fr", "*": "Chat"}}}},
		}}
	})

	result, err := api.client().GetLanguageLinksBatchMCP(context.Background(), GetLanguageLinksBatchArgs{Titles: []string{"cat"}})
	if err != nil {
		t.Fatalf("GetLanguageLinksBatchMCP failed: %v", err)
	}
	if result.Links["cat"]["fr"] != "Chat" {
		t.Errorf("unexpected result: %+v", result)
	}

	if _, err := api.client().GetLanguageLinksBatchMCP(context.Background(), GetLanguageLinksBatchArgs{}); !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError for empty titles, got %v", err)
	}
}

func TestListCategoryMembersMCP_DefaultLimit(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		members := make([]string, 500)
		for i := range members {
			members[i] = "M"
		}
		return itemsResponse(members, "more")
	})

	result, err := api.client().ListCategoryMembersMCP(context.Background(), ListCategoryMembersArgs{Category: "Cats"})
	if err != nil {
		t.Fatalf("ListCategoryMembersMCP failed: %v", err)
	}
	if result.Count != defaultMembersLimit || len(result.Members) != defaultMembersLimit {
		t.Errorf("count = %d, want %d", result.Count, defaultMembersLimit)
	}
	if result.Category != "Category:Cats" {
		t.Errorf("category = %q, want Category:Cats", result.Category)
	}
}

func TestListCategoriesMCP(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return obj{"query": obj{"pages": obj{"1": obj{"title": "Cat",
			"categories": arr{obj{"title": "Category:Felines"}}}}}}
	})

	result, err := api.client().ListCategoriesMCP(context.Background(), ListCategoriesArgs{Title: "Cat"})
	if err != nil {
		t.Fatalf("ListCategoriesMCP failed: %v", err)
	}
	if result.Count != 1 || result.Categories[0] != "Category:Felines" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestGetSectionsMCP(t *testing.T) {
	api := wikitextAPI(t)
	c := api.client()

	result, err := c.GetSectionsMCP(context.Background(), GetSectionsArgs{Title: "Albert Einstein"})
	if err != nil {
		t.Fatalf("GetSectionsMCP failed: %v", err)
	}
	if len(result.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(result.Sections))
	}
	if result.Sections[1].Header != "Life" || result.Sections[2].Level != 3 {
		t.Errorf("unexpected sections: %+v", result.Sections)
	}

	headersOnly, err := c.GetSectionsMCP(context.Background(), GetSectionsArgs{Title: "Albert Einstein", HeadersOnly: true})
	if err != nil {
		t.Fatalf("GetSectionsMCP failed: %v", err)
	}
	want := []markup.Section{{Header: "Life", Level: 2}, {Header: "Later", Level: 3}}
	if !reflect.DeepEqual(headersOnly.Sections, want) {
		t.Errorf("headers only = %+v, want %+v", headersOnly.Sections, want)
	}
}

func TestGetLinksMCP(t *testing.T) {
	api := wikitextAPI(t)
	c := api.client()

	result, err := c.GetLinksMCP(context.Background(), GetLinksArgs{Title: "Albert Einstein"})
	if err != nil {
		t.Fatalf("GetLinksMCP failed: %v", err)
	}
	want := map[string]string{"science": "Physics", "Ulm": "Ulm", "Princeton": "Princeton, New Jersey"}
	if !reflect.DeepEqual(result.Links, want) {
		t.Errorf("links = %v, want %v", result.Links, want)
	}

	ordered, err := c.GetLinksMCP(context.Background(), GetLinksArgs{Title: "Albert Einstein", Ordered: true})
	if err != nil {
		t.Fatalf("GetLinksMCP failed: %v", err)
	}
	if ordered.Count != 3 || ordered.Pairs[0].Target != "Physics" || ordered.Links != nil {
		t.Errorf("unexpected ordered result: %+v", ordered)
	}
}
