package engine

import "testing"

func TestPayloadReplaceAndAppend(t *testing.T) {
	db := newTestDB(t)

	if err := db.PayloadReplace("hello world"); err != nil {
		t.Fatalf("PayloadReplace: %v", err)
	}
	got, err := db.Payload()
	if err != nil {
		t.Fatalf("Payload: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("Payload() = %q, want %q", got, "hello world")
	}

	if err := db.PayloadAppend("second line"); err != nil {
		t.Fatalf("PayloadAppend: %v", err)
	}
	got, err = db.Payload()
	if err != nil {
		t.Fatalf("Payload: %v", err)
	}
	if want := "hello world\nsecond line"; got != want {
		t.Fatalf("Payload() = %q, want %q", got, want)
	}
}

func TestInfoMtimeUpdatesOnReplace(t *testing.T) {
	db := newTestDB(t)
	before, err := db.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if err := db.PayloadReplace("updated"); err != nil {
		t.Fatalf("PayloadReplace: %v", err)
	}
	after, err := db.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if after.Mtime.Before(before.Mtime) {
		t.Fatalf("mtime went backwards: before=%v after=%v", before.Mtime, after.Mtime)
	}
}

func TestHistoryRecordsNavigation(t *testing.T) {
	db := newTestDB(t)
	if _, err := db.Push("alpha", "a"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	hist, err := db.History(-1)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	want := []string{"root/alpha", "root"}
	if len(hist) != len(want) {
		t.Fatalf("History() = %v, want %v", hist, want)
	}
	for i := range want {
		if hist[i] != want[i] {
			t.Fatalf("History()[%d] = %q, want %q", i, hist[i], want[i])
		}
	}
}
