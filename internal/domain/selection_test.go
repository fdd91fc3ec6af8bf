package domain

import (
	"encoding/json"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"visited", StatusVisited, false},
		{"plan", StatusPlan, false},
		{"reset", StatusReset, false},
		{"", "", true},
		{"Visited", "", true},
		{"deleted", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q) expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusUnmarshalRejectsUnknown(t *testing.T) {
	var s Status
	if err := json.Unmarshal([]byte(`"maybe"`), &s); err == nil {
		t.Fatal("expected unmarshal of unknown status to fail")
	}
	if err := json.Unmarshal([]byte(`"plan"`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != StatusPlan {
		t.Errorf("got %q, want plan", s)
	}
}

func TestUpsertNeverDuplicates(t *testing.T) {
	var list SelectionList
	ops := []struct {
		country string
		status  Status
	}{
		{"France", StatusVisited},
		{"Japan", StatusPlan},
		{"France", StatusPlan},
		{"Japan", StatusVisited},
		{"Brazil", StatusPlan},
		{"France", StatusVisited},
	}

	for _, op := range ops {
		list = list.Upsert(op.country, op.status)
		seen := map[string]int{}
		for _, sel := range list {
			seen[sel.Country]++
		}
		for country, n := range seen {
			if n > 1 {
				t.Fatalf("country %q appears %d times after upsert(%q, %q)", country, n, op.country, op.status)
			}
		}
	}
}

func TestUpsertUpdateKeepsPosition(t *testing.T) {
	var list SelectionList
	list = list.Upsert("France", StatusVisited)
	list = list.Upsert("Japan", StatusPlan)
	list = list.Upsert("France", StatusPlan)

	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Country != "France" || list[0].Status != StatusPlan {
		t.Errorf("entry 0 = %+v, want France/plan in original position", list[0])
	}
	if list[1].Country != "Japan" {
		t.Errorf("entry 1 = %+v, want Japan", list[1])
	}
}

// The scenario straight from the product behavior: mark France visited,
// plan Japan, then reset France.
func TestUpsertScenario(t *testing.T) {
	var list SelectionList

	list = list.Upsert("France", StatusVisited)
	want := SelectionList{{Country: "France", Status: StatusVisited}}
	assertListEqual(t, list, want)

	list = list.Upsert("Japan", StatusPlan)
	want = append(want, CountrySelection{Country: "Japan", Status: StatusPlan})
	assertListEqual(t, list, want)

	list = list.Upsert("France", StatusReset)
	want = SelectionList{{Country: "Japan", Status: StatusPlan}}
	assertListEqual(t, list, want)
}

func TestUpsertResetOnAbsentCountry(t *testing.T) {
	list := SelectionList{{Country: "Japan", Status: StatusPlan}}
	got := list.Upsert("France", StatusReset)
	assertListEqual(t, got, list)
}

func TestNormalize(t *testing.T) {
	in := SelectionList{
		{Country: "France", Status: StatusVisited},
		{Country: "France", Status: StatusPlan},
		{Country: "", Status: StatusPlan},
		{Country: "Japan", Status: StatusReset},
		{Country: "Brazil", Status: StatusPlan},
	}
	want := SelectionList{
		{Country: "France", Status: StatusVisited},
		{Country: "Brazil", Status: StatusPlan},
	}
	assertListEqual(t, in.Normalize(), want)
}

func TestUpsertDoesNotMutateReceiver(t *testing.T) {
	orig := SelectionList{{Country: "France", Status: StatusVisited}}
	_ = orig.Upsert("France", StatusPlan)
	if orig[0].Status != StatusVisited {
		t.Errorf("receiver mutated: %+v", orig[0])
	}
}

func assertListEqual(t *testing.T, got, want SelectionList) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("list length = %d, want %d (%+v vs %+v)", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
