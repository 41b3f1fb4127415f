package handlers

import (
	"time"

	"github.com/smartattend/attendance-backend/internal/database"
	"github.com/smartattend/attendance-backend/internal/storage"
)

// requestTimeout bounds every store call; a collaborator that does not
// answer within it fails the request.
const requestTimeout = 5 * time.Second

// Handler carries the collaborators every route needs. Both clients are
// constructed once at startup and injected here.
type Handler struct {
	DB    *database.Client
	Store *storage.Storage
}

func New(db *database.Client, store *storage.Storage) *Handler {
	return &Handler{DB: db, Store: store}
}
