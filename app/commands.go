package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/promptstock/promptstock-tui/client"
	"github.com/promptstock/promptstock-tui/msg"
	"github.com/promptstock/promptstock-tui/ui/clipboard"
)

// tickCmd drives toast expiry and the pending spinner.
func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return msg.TickMsg{}
	})
}

func (m Model) healthCmd() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		health, err := c.Health()
		if err != nil {
			return msg.HealthResult{Err: err}
		}
		return msg.HealthResult{Message: health.Message}
	}
}

// generateCmd runs the blocking generation call. The session controller
// has already accepted the submission; the command settles it.
func (m Model) generateCmd(req client.GenerateRequest) tea.Cmd {
	c := m.client
	ctrl := m.session
	return func() tea.Msg {
		gen, err := c.Generate(req)
		if err != nil {
			return msg.GenerateDone{Notice: ctrl.Fail(err), Failed: true}
		}
		return msg.GenerateDone{Notice: ctrl.Fulfill(*gen)}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	s := m.sync
	return func() tea.Msg {
		return msg.HistoryLoaded{Err: s.LoadHistory()}
	}
}

func (m Model) loadFavoritesCmd() tea.Cmd {
	s := m.sync
	return func() tea.Msg {
		return msg.FavoritesLoaded{Err: s.LoadFavorites()}
	}
}

func (m Model) saveFavoriteCmd(g client.Generation, promptText string) tea.Cmd {
	s := m.sync
	return func() tea.Msg {
		_, err := s.SaveFavorite(g, promptText)
		return msg.FavoriteSaved{Err: err}
	}
}

func (m Model) deleteFavoriteCmd(id string) tea.Cmd {
	s := m.sync
	return func() tea.Msg {
		return msg.FavoriteDeleted{ID: id, Err: s.DeleteFavorite(id)}
	}
}

func (m Model) copyAllCmd(g client.Generation) tea.Cmd {
	s := m.sync
	return func() tea.Msg {
		return msg.CopyDone{Err: s.CopyAll(g)}
	}
}

func (m Model) downloadCmd(g client.Generation) tea.Cmd {
	s := m.sync
	return func() tea.Msg {
		path, err := s.Download(g)
		return msg.DownloadDone{Path: path, Err: err}
	}
}

// copyTextCmd copies a single prompt. It bypasses the synchronizer (no
// projection involved) and toasts directly.
func copyTextCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.Copy(text); err != nil {
			return msg.Toast{Text: "Failed to copy to clipboard", Level: msg.ToastError}
		}
		return msg.Toast{Text: "Copied to clipboard", Level: msg.ToastSuccess}
	}
}
