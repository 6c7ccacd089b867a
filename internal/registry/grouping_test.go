package registry

import (
	"reflect"
	"testing"
)

func TestGroups_PrefixGrouping(t *testing.T) {
	names := []string{"default", "web:api", "web:ui", "tools"}
	groups := Groups(names, 1) // web:api active

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	ungrouped := groups[0]
	if !ungrouped.Ungrouped || ungrouped.Heading != UngroupedHeading {
		t.Errorf("expected ungrouped bucket first, got %+v", ungrouped)
	}
	if ungrouped.Active {
		t.Error("ungrouped bucket should not be marked active")
	}
	wantUngrouped := []string{"default", "tools"}
	for i, entry := range ungrouped.Entries {
		if entry.Name != wantUngrouped[i] {
			t.Errorf("ungrouped entry %d = %q, want %q", i, entry.Name, wantUngrouped[i])
		}
	}

	web := groups[1]
	if web.Heading != "WEB" {
		t.Errorf("expected heading WEB, got %q", web.Heading)
	}
	if !web.Active {
		t.Error("expected WEB group to be marked active")
	}
	if len(web.Entries) != 2 {
		t.Fatalf("expected 2 WEB entries, got %d", len(web.Entries))
	}
	if web.Entries[0].Name != "api" || !web.Entries[0].Active {
		t.Errorf("expected api active, got %+v", web.Entries[0])
	}
	if web.Entries[1].Name != "ui" || web.Entries[1].Active {
		t.Errorf("expected ui inactive, got %+v", web.Entries[1])
	}
	if web.Entries[0].Index != 2 || web.Entries[1].Index != 3 {
		t.Errorf("expected 1-based registry indices 2 and 3, got %d and %d",
			web.Entries[0].Index, web.Entries[1].Index)
	}
}

func TestGroups_Deterministic(t *testing.T) {
	names := []string{"default", "web:api", "web:ui", "tools"}

	first := Groups(names, 1)
	second := Groups(names, 1)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical renderings, got %+v vs %+v", first, second)
	}
}

func TestGroups_PrefixCaseFolded(t *testing.T) {
	names := []string{"Web:api", "web:ui"}
	groups := Groups(names, 0)

	if len(groups) != 1 {
		t.Fatalf("expected a single group for case-variant prefixes, got %d", len(groups))
	}
	if groups[0].Heading != "WEB" {
		t.Errorf("expected heading WEB, got %q", groups[0].Heading)
	}
	if len(groups[0].Entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(groups[0].Entries))
	}
}

func TestGroups_GroupOrderByFirstOccurrence(t *testing.T) {
	names := []string{"b:one", "a:one", "b:two"}
	groups := Groups(names, 0)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Heading != "B" || groups[1].Heading != "A" {
		t.Errorf("expected group order B, A; got %q, %q", groups[0].Heading, groups[1].Heading)
	}
	if len(groups[0].Entries) != 2 {
		t.Errorf("expected both b entries in one group, got %d", len(groups[0].Entries))
	}
}

func TestGroups_NoUngroupedBucketWhenEmpty(t *testing.T) {
	groups := Groups([]string{"web:api"}, 0)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Ungrouped {
		t.Error("expected no ungrouped bucket when every name has a prefix")
	}
}

func TestGroups_OnlyFirstColonSplits(t *testing.T) {
	groups := Groups([]string{"web:api:v2"}, 0)

	if groups[0].Heading != "WEB" {
		t.Errorf("expected heading WEB, got %q", groups[0].Heading)
	}
	if groups[0].Entries[0].Name != "api:v2" {
		t.Errorf("expected child name api:v2, got %q", groups[0].Entries[0].Name)
	}
}
