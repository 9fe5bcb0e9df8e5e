package wikipedia

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

func TestListCategoryMembers_TruncatesWithoutExtraRequests(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		members := make([]string, 500)
		for i := range members {
			members[i] = fmt.Sprintf("Member %d", i)
		}
		return itemsResponse(members, "always-more")
	})

	got, err := api.client().ListCategoryMembers(context.Background(), "Physics", "en", 10)
	if err != nil {
		t.Fatalf("ListCategoryMembers failed: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("members = %d, want exactly 10", len(got))
	}
	if got[0] != "Member 0" || got[9] != "Member 9" {
		t.Errorf("unexpected members: %v", got)
	}

	calls := api.Calls()
	if len(calls) != 1 {
		t.Errorf("requests = %d, want 1", len(calls))
	}
	form := calls[0].Form
	if form.Get("cmtitle") != "Category:Physics" {
		t.Errorf("cmtitle = %q, want Category:Physics", form.Get("cmtitle"))
	}
	if form.Get("cmlimit") != "10" {
		t.Errorf("cmlimit = %q, want 10", form.Get("cmlimit"))
	}
	if form.Get("list") != "categorymembers" {
		t.Errorf("list = %q, want categorymembers", form.Get("list"))
	}
}

func TestListCategoryMembers_PerRequestCap(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		members := make([]string, 500)
		for i := range members {
			members[i] = fmt.Sprintf("M%d", i)
		}
		token := ""
		if call.Form.Get("cmcontinue") == "" {
			token = "second"
		}
		return itemsResponse(members, token)
	})

	got, err := api.client().ListCategoryMembers(context.Background(), "Category:Big", "en", 700)
	if err != nil {
		t.Fatalf("ListCategoryMembers failed: %v", err)
	}
	if len(got) != 700 {
		t.Errorf("members = %d, want 700", len(got))
	}

	calls := api.Calls()
	if len(calls) != 2 {
		t.Fatalf("requests = %d, want 2", len(calls))
	}
	for i, call := range calls {
		if call.Form.Get("cmlimit") != "500" {
			t.Errorf("request %d cmlimit = %q, want 500", i, call.Form.Get("cmlimit"))
		}
	}
	if calls[1].Form.Get("cmcontinue") != "second" {
		t.Errorf("second request cmcontinue = %q, want second", calls[1].Form.Get("cmcontinue"))
	}
}

func TestListCategoryMembers_Unbounded(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		if call.Form.Get("cmcontinue") == "" {
			return itemsResponse([]string{"a", "b"}, "t")
		}
		return itemsResponse([]string{"c"}, "")
	})

	got, err := api.client().ListCategoryMembers(context.Background(), "Small", "en", 0)
	if err != nil {
		t.Fatalf("ListCategoryMembers failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("members = %v", got)
	}
	if api.Calls()[0].Form.Get("cmlimit") != "500" {
		t.Errorf("cmlimit = %q, want 500", api.Calls()[0].Form.Get("cmlimit"))
	}
}

func TestListCategories(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		if call.Form.Get("clcontinue") == "" {
			return obj{
				"continue": obj{"clcontinue": "736|Physicists", "continue": "||"},
				"query": obj{"pages": obj{"736": obj{"pageid": 736, "title": "Albert Einstein",
					"categories": arr{obj{"ns": 14, "title": "Category:1879 births"}, obj{"ns": 14, "title": "Category:German physicists"}}}}},
			}
		}
		return obj{
			"query": obj{"pages": obj{"736": obj{"pageid": 736, "title": "Albert Einstein",
				"categories": arr{obj{"ns": 14, "title": "Category:Physicists"}}}}},
		}
	})

	got, err := api.client().ListCategories(context.Background(), "Albert Einstein", "en", 0)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	want := []string{"Category:1879 births", "Category:German physicists", "Category:Physicists"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("categories = %v, want %v", got, want)
	}

	first := api.Calls()[0].Form
	if first.Get("prop") != "categories" || first.Get("cllimit") != "max" {
		t.Errorf("unexpected parameters: %v", first)
	}
}

func TestListCategories_Limit(t *testing.T) {
	api := newFakeAPI(t, func(call apiCall) interface{} {
		return obj{
			"continue": obj{"clcontinue": "more"},
			"query": obj{"pages": obj{"1": obj{"title": "X",
				"categories": arr{obj{"title": "Category:A"}, obj{"title": "Category:B"}}}}},
		}
	})

	got, err := api.client().ListCategories(context.Background(), "X", "en", 1)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Category:A"}) {
		t.Errorf("categories = %v", got)
	}
	if n := len(api.Calls()); n != 1 {
		t.Errorf("requests = %d, want 1", n)
	}
}

func TestNormalizeCategoryName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Physics", "Category:Physics"},
		{"  Physics  ", "Category:Physics"},
		{"Category:Physics", "Category:Physics"},
		{"Kategorie:Physik", "Kategorie:Physik"},
	}

	for _, tt := range tests {
		if got := normalizeCategoryName(tt.input); got != tt.want {
			t.Errorf("normalizeCategoryName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
