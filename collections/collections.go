// Package collections keeps the active result set, the history log, and
// the favorites library mutually consistent. It mediates copy/download/
// save/delete actions between the backend store and the local-machine
// collaborators (clipboard, file save, notifications).
//
// History and favorites are backend-owned; this package holds read
// projections that are replaced wholesale on load and patched locally on
// save (append) and delete (optimistic removal, no rollback).
package collections

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/promptstock/promptstock-tui/client"
)

// Level classifies a user notification.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Store is the backend collaborator owning history and favorites.
// *client.Client implements it.
type Store interface {
	CreateFavorite(req client.FavoriteCreateRequest) (*client.Favorite, error)
	DeleteFavorite(id string) error
	ListFavorites() ([]client.Favorite, error)
	ListHistory() ([]client.Generation, error)
}

// Notifier delivers a user-visible notification.
type Notifier interface {
	Notify(text string, level Level)
}

// NotifyFunc adapts a function to the Notifier interface.
type NotifyFunc func(text string, level Level)

func (f NotifyFunc) Notify(text string, level Level) { f(text, level) }

// ClipboardFunc writes text to the system clipboard.
type ClipboardFunc func(text string) error

// SaveFunc persists content under the suggested filename and returns the
// path actually written.
type SaveFunc func(filename, content string) (string, error)

// JoinPrompts concatenates prompts in result order, separated by a blank
// line. Copy-all and download both use exactly this form.
func JoinPrompts(prompts []string) string {
	return strings.Join(prompts, "\n\n")
}

// Filename builds the deterministic download name for a result set:
// prompts_<keyword>_<unixmilli>.txt. Collisions are not deduplicated;
// millisecond granularity is assumed sufficient.
func Filename(keyword string, now time.Time) string {
	return fmt.Sprintf("prompts_%s_%d.txt", sanitizeKeyword(keyword), now.UnixMilli())
}

// sanitizeKeyword makes a keyword safe for use in a filename: spaces
// become underscores and path-hostile runes are dropped.
func sanitizeKeyword(keyword string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(keyword) {
		switch {
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			// drop
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "prompts"
	}
	return b.String()
}

// Synchronizer owns the local projections and the collaborator wiring.
// Methods block on collaborator calls, so the TUI runs them inside
// bubbletea commands; internal state is mutex-guarded and accessors
// return copies.
type Synchronizer struct {
	mu    sync.Mutex
	store Store
	clip  ClipboardFunc
	save  SaveFunc
	note  Notifier

	favorites       []client.Favorite
	favoritesLoaded bool
	history         []client.Generation
	historyLoaded   bool
}

// NewSynchronizer wires a Synchronizer to its collaborators.
func NewSynchronizer(store Store, clip ClipboardFunc, save SaveFunc, note Notifier) *Synchronizer {
	return &Synchronizer{store: store, clip: clip, save: save, note: note}
}

// CopyAll places the result's prompts on the clipboard, joined by blank
// lines. No backend call is involved.
func (s *Synchronizer) CopyAll(g client.Generation) error {
	if err := s.clip(JoinPrompts(g.Prompts)); err != nil {
		s.note.Notify("Failed to copy to clipboard", LevelError)
		return err
	}
	s.note.Notify(fmt.Sprintf("Copied %d prompts to clipboard", len(g.Prompts)), LevelSuccess)
	return nil
}

// Download writes the result's prompts to a text file named after the
// keyword and the current millisecond timestamp.
func (s *Synchronizer) Download(g client.Generation) (string, error) {
	name := Filename(g.Keyword, time.Now())
	path, err := s.save(name, JoinPrompts(g.Prompts))
	if err != nil {
		s.note.Notify("Failed to save file", LevelError)
		return "", err
	}
	s.note.Notify("Saved "+path, LevelSuccess)
	return path, nil
}

// SaveFavorite promotes one prompt of a result into the favorites
// library. The saved entry snapshots prompt text, keyword, and style at
// call time; the back-reference to the generation is informational only.
// On success the entry is appended to the local projection if it has
// been loaded; on failure no local state changes.
func (s *Synchronizer) SaveFavorite(g client.Generation, promptText string) (client.Favorite, error) {
	fav, err := s.store.CreateFavorite(client.FavoriteCreateRequest{
		GenerationID: g.ID,
		PromptText:   promptText,
		Keyword:      g.Keyword,
		Style:        g.Style,
	})
	if err != nil {
		s.note.Notify(userMessage(err, "Failed to save favorite"), LevelError)
		return client.Favorite{}, err
	}

	s.mu.Lock()
	if s.favoritesLoaded {
		s.favorites = append(s.favorites, *fav)
	}
	s.mu.Unlock()

	s.note.Notify("Saved to favorites", LevelSuccess)
	return *fav, nil
}

// DeleteFavorite removes a favorite by id. On success the entry is
// removed from the local projection immediately — optimistically, with
// no rollback on later refetches. On failure the projection is left
// untouched. Deleting an id the backend does not know reports an error
// and changes nothing.
func (s *Synchronizer) DeleteFavorite(id string) error {
	if err := s.store.DeleteFavorite(id); err != nil {
		s.note.Notify(userMessage(err, "Failed to delete favorite"), LevelError)
		return err
	}

	s.mu.Lock()
	for i, f := range s.favorites {
		if f.ID == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.note.Notify("Favorite deleted", LevelSuccess)
	return nil
}

// LoadFavorites replaces the favorites projection with a fresh fetch.
// On error the prior projection (empty on first load) is kept.
func (s *Synchronizer) LoadFavorites() error {
	entries, err := s.store.ListFavorites()
	if err != nil {
		s.note.Notify(userMessage(err, "Failed to load favorites"), LevelError)
		return err
	}
	s.mu.Lock()
	s.favorites = entries
	s.favoritesLoaded = true
	s.mu.Unlock()
	return nil
}

// LoadHistory replaces the history projection with a fresh fetch. The
// backend determines ordering (most recent first). On error the prior
// projection is kept.
func (s *Synchronizer) LoadHistory() error {
	entries, err := s.store.ListHistory()
	if err != nil {
		s.note.Notify(userMessage(err, "Failed to load history"), LevelError)
		return err
	}
	s.mu.Lock()
	s.history = entries
	s.historyLoaded = true
	s.mu.Unlock()
	return nil
}

// Favorites returns a copy of the favorites projection and whether it
// has been loaded at least once.
func (s *Synchronizer) Favorites() ([]client.Favorite, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.Favorite, len(s.favorites))
	copy(out, s.favorites)
	return out, s.favoritesLoaded
}

// History returns a copy of the history projection and whether it has
// been loaded at least once.
func (s *Synchronizer) History() ([]client.Generation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.Generation, len(s.history))
	copy(out, s.history)
	return out, s.historyLoaded
}

// userMessage prefers the backend's own message for user display and
// falls back to a generic category message for transport-level failures.
func userMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
