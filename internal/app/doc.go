// Package app provides the orchestration layer for brevity.
//
// # Overview
//
// This package wires together configuration, the presentation file, input
// capabilities, logging and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Startup
//
//  1. Load ~/.config/brevity/config.toml (defaults when missing)
//  2. Load the presentation and layer its front matter, then the flags
//  3. Resolve the start location: explicit fragment or --at, then the
//     saved bookmark when resume is on, then start_deck/start_slide
//  4. Probe the terminal and select the input adapters
//  5. Open the debug log when debug is on
//  6. Start the UI, plus the remote control server and file watcher when
//     configured
//  7. Save the final location as a bookmark on exit
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> Prepare()            config, presentation, start location
//	       ├─────> capability.Select()  input adapters
//	       ├─────> ui.New()             navigator + stage
//	       ├─────> remote.Serve()       HTTP remote (optional)
//	       ├─────> watcher.Run()        live reload (optional)
//	       └─────> Program.Run()        TUI (blocks)
//
// Remote requests and reloads reach the UI through Program.Send, so every
// navigation runs on the Bubble Tea event loop. The state.Store snapshot is
// the only state read from other goroutines.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Presentation missing, unreadable or without slides
//   - Log file cannot be opened in debug mode
//
// Recoverable errors (logged, presentation continues):
//   - Remote listener failure
//   - Watcher setup failure
//   - Reload failure (the previous presentation stays on screen)
//   - Bookmark save failure
package app
