// Package session keeps the navigation state of each client between
// requests.  Concurrent writes to the same session are last-writer-wins.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/navigation"
)

// ErrNotFound wraps model.ErrNotFound.
var ErrNotFound = fmt.Errorf("session %w", model.ErrNotFound)

// Store loads and saves navigation state by session id.
type Store interface {
	Load(ctx context.Context, id string) (navigation.State, error)
	Save(ctx context.Context, id string, s navigation.State) error
	Delete(ctx context.Context, id string) error
}

// Create starts a session at the initial view and returns its id.
func Create(ctx context.Context, st Store) (string, navigation.State, error) {
	id := uuid.NewString()
	s := navigation.Initial()
	if err := st.Save(ctx, id, s); err != nil {
		return "", navigation.State{}, err
	}
	return id, s, nil
}
