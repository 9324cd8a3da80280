// Package state shares the operations log between the feed scheduler and the UI.
//
// # Overview
//
// The scheduler goroutine pushes one entry per tick; the Bubble Tea program reads
// the log on its own refresh tick. Store sits between the two:
//
//	Producer (scheduler):          Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ gen.Next(t)    │            │ tickMsg         │
//	│      ↓         │            │      ↓          │
//	│ store.Push(e)  │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  next tick     │            │ render log      │
//	└────────────────┘            └─────────────────┘
//
// # Concurrency Model
//
//   - Push(): acquires the write lock
//   - Snapshot(): acquires the read lock and returns cloned entries
//
// The zero Store is ready to use and its Snapshot is the zero Snapshot.
//
// # Bounds
//
// Entries are held in a feed.History, so a Snapshot never carries more than
// feed.HistoryLimit entries and Entries[0] is always the newest. Fired counts
// every push, including the ones that have since been evicted.
package state
