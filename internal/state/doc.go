// Package state shares the presentation location with readers outside the
// UI event loop.
//
// # Overview
//
// The navigator runs inside the bubbletea event loop. The remote control
// server and the metrics handler run on HTTP goroutines. The Store is the
// only value both sides touch:
//
//	UI event loop:                 HTTP handlers:
//	┌──────────────────┐          ┌──────────────────┐
//	│ navigator        │          │ GET /api/location│
//	│   ↓ Publish      │          │        ↓         │
//	│ store.Publish()  │─────────→│ store.Snapshot() │
//	│ store.Record()   │ (RWMutex)│        ↓         │
//	└──────────────────┘          │  encode JSON     │
//	                              └──────────────────┘
//
// # Update Semantics
//
//   - Publish: stores the token and its decoded position
//   - Record: stores the last navigation outcome and busy flag
//   - SetPresentation: stores path, title and slide counts, clears LastError
//   - Fail: stores LastError, keeps every other field
//
// Snapshot returns a copy; callers may modify it freely.
package state
