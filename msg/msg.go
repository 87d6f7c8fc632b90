// Package msg defines the tea.Msg types dispatched within the
// PromptStock TUI. It has no upstream imports (client, app) to avoid
// import cycles.
package msg

import tea "charm.land/bubbletea/v2"

// ProgramReady delivers the running program handle once the event loop
// is up, so collaborators can Send from their own goroutines.
type ProgramReady struct {
	Program *tea.Program
}

// ToastLevel classifies a user notification.
type ToastLevel int

const (
	ToastSuccess ToastLevel = iota
	ToastError
	ToastInfo
)

// Toast requests a user-visible notification. Collaborator goroutines
// deliver these through tea.Program.Send.
type Toast struct {
	Text  string
	Level ToastLevel
}

// HealthResult from the startup reachability check.
type HealthResult struct {
	Message string
	Err     error
}

// GenerateDone signals that the in-flight generation call finished and
// the session controller has already transitioned. Notice is the
// user-facing outcome text.
type GenerateDone struct {
	Notice string
	Failed bool
}

// HistoryLoaded signals completion of a history projection refresh.
type HistoryLoaded struct {
	Err error
}

// FavoritesLoaded signals completion of a favorites projection refresh.
type FavoritesLoaded struct {
	Err error
}

// FavoriteSaved signals completion of a save-to-favorites call.
type FavoriteSaved struct {
	Err error
}

// FavoriteDeleted signals completion of a delete-favorite call.
type FavoriteDeleted struct {
	ID  string
	Err error
}

// CopyDone signals completion of a copy-all clipboard write.
type CopyDone struct {
	Err error
}

// DownloadDone signals completion of a download-as-file write.
type DownloadDone struct {
	Path string
	Err  error
}

// TickMsg drives toast expiry and the pending spinner.
type TickMsg struct{}
