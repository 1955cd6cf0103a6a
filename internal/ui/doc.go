// Package ui is the terminal front end of a presentation.
//
// # Architecture Overview
//
// Model is a Bubble Tea model that owns a nav.Navigator and the Stage it
// drives. The Stage implements transform.Surface: it holds the horizontal
// offset of the deck collection and one vertical offset per deck, and
// animates them on frame ticks. compose cuts the rendered slides into the
// viewport at those offsets, so a transition shows the neighbouring slide
// sliding in.
//
// # Input
//
// Input adapters are chosen by capability.Select before the model is built:
//
//   - Keyboard: arrows, vim keys, space and page keys, home and end
//   - Wheel: one slide per wheel notch, dropped while an animation runs
//   - Touch: left-button drags that follow the pointer and finish as a swipe
//   - Click: the arrows in the footer, tracked with bubblezone
//
// Every navigation is reported through Options.Observe with its source.
//
// # Views
//
//   - slides: the presentation itself, optionally without header and footer
//   - overview: a map of decks and slides with the current one marked
//   - grid: a list of every slide with its location
//
// The jump prompt, diagnostics and help are drawn as overlays.
//
// # Outside the event loop
//
// Remote commands and file reloads arrive from other goroutines. Dispatch
// turns a (*tea.Program).Send into a remote.Dispatcher, and ReloadMsg asks
// the model to re-read the presentation through Options.Reload.
package ui
