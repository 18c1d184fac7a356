// Package cli provides the interactive HealthMate command-line client.
//
// It wires configuration, the local sqlite store, the notification scheduler,
// text-to-speech, and an interactive REPL. Typical flow: restore a previous
// session (or prompt for credentials), enter the dashboard, and execute user
// commands until exit.
//
// Key features:
//   - Signup / Login / Logout with a locally persisted session
//   - Add / edit / complete / delete wellness reminders
//   - One-shot desktop notifications for upcoming reminders
//   - Stats (streak, completion, weekly progress) and a scripted assistant
//   - A daily spoken-and-notified summary
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, enterDashboard, and runREPL for details.
package cli
