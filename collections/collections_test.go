package collections

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptstock/promptstock-tui/client"
)

// fakeStore is an in-memory Store with switchable failure modes.
type fakeStore struct {
	favorites []client.Favorite
	history   []client.Generation
	nextID    int
	failAll   bool
	apiErr    *client.APIError
}

func (f *fakeStore) err() error {
	if f.apiErr != nil {
		return f.apiErr
	}
	if f.failAll {
		return errors.New("connection refused")
	}
	return nil
}

func (f *fakeStore) CreateFavorite(req client.FavoriteCreateRequest) (*client.Favorite, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.nextID++
	fav := client.Favorite{
		ID:           fmt.Sprintf("fav-%d", f.nextID),
		GenerationID: req.GenerationID,
		PromptText:   req.PromptText,
		Keyword:      req.Keyword,
		Style:        req.Style,
		SavedAt:      "2026-08-23T10:00:00",
	}
	f.favorites = append(f.favorites, fav)
	return &fav, nil
}

func (f *fakeStore) DeleteFavorite(id string) error {
	if err := f.err(); err != nil {
		return err
	}
	for i, fav := range f.favorites {
		if fav.ID == id {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return nil
		}
	}
	return &client.APIError{Status: 404, Detail: "Favorite not found"}
}

func (f *fakeStore) ListFavorites() ([]client.Favorite, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	out := make([]client.Favorite, len(f.favorites))
	copy(out, f.favorites)
	return out, nil
}

func (f *fakeStore) ListHistory() ([]client.Generation, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	out := make([]client.Generation, len(f.history))
	copy(out, f.history)
	return out, nil
}

// recorder captures notifications in order.
type recorder struct {
	texts  []string
	levels []Level
}

func (r *recorder) Notify(text string, level Level) {
	r.texts = append(r.texts, text)
	r.levels = append(r.levels, level)
}

func (r *recorder) last() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

type harness struct {
	store *fakeStore
	note  *recorder
	sync  *Synchronizer

	clipboard string
	clipErr   error
	saved     map[string]string
	saveErr   error
}

func newHarness() *harness {
	h := &harness{
		store: &fakeStore{},
		note:  &recorder{},
		saved: map[string]string{},
	}
	h.sync = NewSynchronizer(
		h.store,
		func(text string) error {
			if h.clipErr != nil {
				return h.clipErr
			}
			h.clipboard = text
			return nil
		},
		func(filename, content string) (string, error) {
			if h.saveErr != nil {
				return "", h.saveErr
			}
			h.saved[filename] = content
			return "/downloads/" + filename, nil
		},
		h.note,
	)
	return h
}

func generation(prompts ...string) client.Generation {
	return client.Generation{
		ID:      "gen-1",
		Keyword: "red fox",
		Style:   "photo",
		Prompts: prompts,
	}
}

func TestJoinPrompts(t *testing.T) {
	assert.Equal(t, "A\n\nB\n\nC", JoinPrompts([]string{"A", "B", "C"}))
	assert.Equal(t, "only", JoinPrompts([]string{"only"}))
	assert.Equal(t, "", JoinPrompts(nil))
}

func TestFilename(t *testing.T) {
	now := time.UnixMilli(1756000000000)
	assert.Equal(t, "prompts_red_fox_1756000000000.txt", Filename("red fox", now))
	assert.Equal(t, "prompts_ab_1756000000000.txt", Filename(`a/\:*?"<>|b`, now))
	assert.Equal(t, "prompts_prompts_1756000000000.txt", Filename("   ", now))
}

func TestCopyAll(t *testing.T) {
	h := newHarness()
	err := h.sync.CopyAll(generation("A", "B"))
	require.NoError(t, err)
	assert.Equal(t, "A\n\nB", h.clipboard)
	assert.Equal(t, "Copied 2 prompts to clipboard", h.note.last())
}

func TestCopyAllFailure(t *testing.T) {
	h := newHarness()
	h.clipErr = errors.New("no clipboard")
	err := h.sync.CopyAll(generation("A"))
	require.Error(t, err)
	assert.Equal(t, "Failed to copy to clipboard", h.note.last())
	assert.Equal(t, LevelError, h.note.levels[len(h.note.levels)-1])
}

func TestDownload(t *testing.T) {
	h := newHarness()
	path, err := h.sync.Download(generation("A", "B", "C"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/downloads/prompts_red_fox_"))
	require.Len(t, h.saved, 1)
	for _, content := range h.saved {
		assert.Equal(t, "A\n\nB\n\nC", content)
	}
	assert.Equal(t, "Saved "+path, h.note.last())
}

func TestDownloadFailure(t *testing.T) {
	h := newHarness()
	h.saveErr = errors.New("disk full")
	_, err := h.sync.Download(generation("A"))
	require.Error(t, err)
	assert.Equal(t, "Failed to save file", h.note.last())
}

func TestSaveFavoriteSnapshots(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.sync.LoadFavorites())

	g := generation("first prompt", "second prompt")
	fav, err := h.sync.SaveFavorite(g, "second prompt")
	require.NoError(t, err)

	assert.Equal(t, "gen-1", fav.GenerationID)
	assert.Equal(t, "second prompt", fav.PromptText)
	assert.Equal(t, "red fox", fav.Keyword)
	assert.Equal(t, "photo", fav.Style)
	assert.Equal(t, "Saved to favorites", h.note.last())

	favs, loaded := h.sync.Favorites()
	assert.True(t, loaded)
	require.Len(t, favs, 1)
	assert.Equal(t, fav.ID, favs[0].ID)
}

func TestSaveFavoriteBeforeLoadSkipsProjection(t *testing.T) {
	h := newHarness()
	_, err := h.sync.SaveFavorite(generation("p"), "p")
	require.NoError(t, err)

	favs, loaded := h.sync.Favorites()
	assert.False(t, loaded)
	assert.Empty(t, favs, "projection is not patched before its first load")
}

func TestSaveFavoriteFailure(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.sync.LoadFavorites())
	h.store.failAll = true

	_, err := h.sync.SaveFavorite(generation("p"), "p")
	require.Error(t, err)
	assert.Equal(t, "Failed to save favorite", h.note.last())

	favs, _ := h.sync.Favorites()
	assert.Empty(t, favs)
}

func TestDeleteFavoriteRemovesExactID(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.sync.LoadFavorites())
	a, err := h.sync.SaveFavorite(generation("a"), "a")
	require.NoError(t, err)
	b, err := h.sync.SaveFavorite(generation("b"), "b")
	require.NoError(t, err)

	require.NoError(t, h.sync.DeleteFavorite(a.ID))
	assert.Equal(t, "Favorite deleted", h.note.last())

	favs, _ := h.sync.Favorites()
	require.Len(t, favs, 1)
	assert.Equal(t, b.ID, favs[0].ID)
}

func TestDeleteUnknownFavoriteKeepsProjection(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.sync.LoadFavorites())
	_, err := h.sync.SaveFavorite(generation("a"), "a")
	require.NoError(t, err)

	err = h.sync.DeleteFavorite("fav-does-not-exist")
	require.Error(t, err)
	assert.Equal(t, "Favorite not found", h.note.last(), "backend detail is shown verbatim")

	favs, _ := h.sync.Favorites()
	assert.Len(t, favs, 1)
}

func TestLoadHistoryReplacesWholesale(t *testing.T) {
	h := newHarness()
	h.store.history = []client.Generation{generation("a")}
	require.NoError(t, h.sync.LoadHistory())

	hist, loaded := h.sync.History()
	assert.True(t, loaded)
	assert.Len(t, hist, 1)

	h.store.history = []client.Generation{generation("a"), generation("b")}
	require.NoError(t, h.sync.LoadHistory())
	hist, _ = h.sync.History()
	assert.Len(t, hist, 2)
}

func TestLoadFailureKeepsPrior(t *testing.T) {
	h := newHarness()
	h.store.history = []client.Generation{generation("a")}
	require.NoError(t, h.sync.LoadHistory())
	require.NoError(t, h.sync.LoadFavorites())

	h.store.failAll = true
	require.Error(t, h.sync.LoadHistory())
	assert.Equal(t, "Failed to load history", h.note.last())
	require.Error(t, h.sync.LoadFavorites())
	assert.Equal(t, "Failed to load favorites", h.note.last())

	hist, loaded := h.sync.History()
	assert.True(t, loaded, "a failed refresh does not unload the projection")
	assert.Len(t, hist, 1)
}

func TestLoadErrorPrefersBackendDetail(t *testing.T) {
	h := newHarness()
	h.store.apiErr = &client.APIError{Status: 500, Detail: "Error fetching history: db down"}
	require.Error(t, h.sync.LoadHistory())
	assert.Equal(t, "Error fetching history: db down", h.note.last())
}
