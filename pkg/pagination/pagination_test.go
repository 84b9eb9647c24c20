package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	n := Params{}.Normalize()
	if n.Page != 1 || n.Limit != DefaultLimit {
		t.Fatalf("unexpected defaults: %+v", n)
	}

	n = Params{Page: -3, Limit: 500}.Normalize()
	if n.Page != 1 {
		t.Fatalf("negative page should normalize to 1, got %d", n.Page)
	}
	if n.Limit != MaxLimit {
		t.Fatalf("limit should be capped at %d, got %d", MaxLimit, n.Limit)
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 10}).Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(Params{Page: 2, Limit: 10}, 35)
	if meta.Current != 2 {
		t.Fatalf("unexpected current page %d", meta.Current)
	}
	if meta.Pages != 4 {
		t.Fatalf("expected 4 pages, got %d", meta.Pages)
	}
	if meta.Total != 35 {
		t.Fatalf("unexpected total %d", meta.Total)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Fatalf("expected both neighbors on middle page: %+v", meta)
	}

	first := BuildMeta(Params{Page: 1, Limit: 10}, 35)
	if first.HasPrev {
		t.Fatalf("first page should have no previous")
	}
	last := BuildMeta(Params{Page: 4, Limit: 10}, 35)
	if last.HasNext {
		t.Fatalf("last page should have no next")
	}

	empty := BuildMeta(Params{Page: 1, Limit: 10}, 0)
	if empty.Pages != 1 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty result meta should be a single empty page: %+v", empty)
	}

	beyond := BuildMeta(Params{Page: 5, Limit: 10}, 15)
	if !beyond.HasPrev {
		t.Fatalf("a page past the end still has previous pages: %+v", beyond)
	}
	if beyond.HasNext {
		t.Fatalf("a page past the end has no next page: %+v", beyond)
	}
}
