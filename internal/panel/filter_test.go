package panel

import (
	"reflect"
	"testing"
)

func TestFilterBlankQueryReturnsInput(t *testing.T) {
	items := records("a", "b", "c")
	for _, query := range []string{"", "   ", "\t"} {
		got := Filter(items, query)
		if len(got) != len(items) {
			t.Fatalf("query %q: expected full list, got %d items", query, len(got))
		}
		if &got[0] != &items[0] {
			t.Fatalf("query %q: expected the input slice itself", query)
		}
	}
}

// Scenario: filtering [gmail, slack] by "gm" keeps only gmail.
func TestFilterSubstring(t *testing.T) {
	items := []testRecord{
		{id: "gmail", name: "Gmail"},
		{id: "slack", name: "Slack"},
	}
	got := Filter(items, "gm")
	if len(got) != 1 || got[0].id != "gmail" {
		t.Fatalf("expected only gmail, got %#v", got)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	items := []testRecord{
		{id: "gmail", name: "Gmail"},
		{id: "slack", name: "Slack"},
	}
	upper := Filter(items, "GM")
	lower := Filter(items, "gm")
	if !reflect.DeepEqual(upper, lower) {
		t.Fatalf("expected case-insensitive match: %#v vs %#v", upper, lower)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	items := []testRecord{
		{id: "1", name: "alpha one"},
		{id: "2", name: "beta"},
		{id: "3", name: "alpha three"},
		{id: "4", name: "alpha four"},
	}
	got := Filter(items, "alpha")
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	for i, want := range []string{"1", "3", "4"} {
		if got[i].id != want {
			t.Fatalf("expected order preserved, got %#v", got)
		}
	}
}

func TestFilterEmptyFieldsNeverMatch(t *testing.T) {
	items := []testRecord{{id: "", name: ""}}
	if got := Filter(items, "x"); len(got) != 0 {
		t.Fatalf("expected no match for empty fields, got %#v", got)
	}
}

func TestFuzzyMatchFallsWithinSubstringSuperset(t *testing.T) {
	fields := []string{"Gmail integration"}
	if !FuzzyMatch(fields, "gml") {
		t.Fatal("expected fuzzy match for subsequence")
	}
	if SubstringMatch(fields, "gml") {
		t.Fatal("substring matcher must not match a bare subsequence")
	}
}

func TestVisibleSectionsPartitions(t *testing.T) {
	s := New[testRecord]("even", "odd")
	s = Apply(s, FetchSuccess([]testRecord{
		{id: "0", name: "zero"},
		{id: "1", name: "one"},
		{id: "2", name: "two"},
		{id: "3", name: "three"},
	}))

	bySection := func(r testRecord) int {
		if (int(r.id[0]-'0'))%2 == 0 {
			return 0
		}
		return 1
	}

	visible := VisibleSections(s, bySection, SubstringMatch)
	if len(visible) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(visible))
	}
	if len(visible[0]) != 2 || len(visible[1]) != 2 {
		t.Fatalf("unexpected partition %#v", visible)
	}

	s.Query = "t"
	visible = VisibleSections(s, bySection, SubstringMatch)
	if len(visible[0]) != 1 || visible[0][0].id != "2" {
		t.Fatalf("expected filtered even section [two], got %#v", visible[0])
	}
	if len(visible[1]) != 1 || visible[1][0].id != "3" {
		t.Fatalf("expected filtered odd section [three], got %#v", visible[1])
	}
}

func TestVisibleSectionsDropsOutOfRange(t *testing.T) {
	s := New[testRecord]("only")
	s = Apply(s, FetchSuccess(records("a", "b")))
	visible := VisibleSections(s, func(testRecord) int { return 7 }, nil)
	if len(visible[0]) != 0 {
		t.Fatalf("expected out-of-range items dropped, got %#v", visible[0])
	}
}
