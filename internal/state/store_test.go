package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/brevity/internal/grid"
)

func TestStore_PublishAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.SetPresentation("/talks/a.md", "Intro", []int{2, 3, 1})
	s.Publish("/2/3")

	snap := s.Snapshot()
	if !snap.Loaded() {
		t.Fatalf("Loaded() = false after SetPresentation")
	}
	if snap.Token != "/2/3" || snap.Position != (grid.Position{Deck: 1, Slide: 2}) {
		t.Fatalf("snapshot location = %q %+v, want /2/3 {1 2}", snap.Token, snap.Position)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Counts[0] = 99
	if got := s.Snapshot().Counts[0]; got != 2 {
		t.Fatalf("Snapshot should clone counts; got %d want 2", got)
	}
}

func TestStore_RecordCountsNavigations(t *testing.T) {
	var s Store
	s.Record("accepted", true)
	s.Record("boundary", false)

	snap := s.Snapshot()
	if snap.Navigations != 2 || snap.LastOutcome != "boundary" || snap.Busy {
		t.Fatalf("snapshot = %+v, want 2 navigations, boundary, not busy", snap)
	}
	s.SetBusy(true)
	if !s.Snapshot().Busy {
		t.Fatalf("SetBusy(true) not recorded")
	}
}

func TestStore_FailKeepsPreviousData(t *testing.T) {
	var s Store
	s.SetPresentation("/talks/a.md", "Intro", []int{1})
	s.Publish("/1/1")

	origErr := errors.New("reload failed")
	s.Fail(origErr)

	snap := s.Snapshot()
	if snap.Token != "/1/1" || snap.Title != "Intro" {
		t.Fatalf("data changed on error: %+v", snap)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError = %v, want wrapping %v", snap.LastError, origErr)
	}

	s.SetPresentation("/talks/a.md", "Intro", []int{1, 1})
	if s.Snapshot().LastError != nil {
		t.Fatalf("LastError not cleared by successful load")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Publish("/1/2")
			s.Record("accepted", false)
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	if got := s.Snapshot().Navigations; got != 8 {
		t.Fatalf("Navigations = %d, want 8", got)
	}
}
