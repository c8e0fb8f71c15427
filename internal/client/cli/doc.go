// Package cli provides the interactive campus marketplace command-line
// client.
//
// It wires configuration, the local session snapshot, the API client and
// the in-memory catalog behind an interactive REPL. Typical flow: restore
// the saved session, show the home screen, and execute user commands.
//
// Key features:
//   - Login / Register / Logout with a persisted session
//   - Browse: home, list, categories, show, my
//   - Search with keyword, category, condition, price range and sorting
//   - Post new ads with image uploads, edit, mark sold, delete
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
