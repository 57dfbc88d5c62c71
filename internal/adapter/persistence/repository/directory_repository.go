package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"focusquote/internal/domain/entities"
	"focusquote/internal/usecase/interfaces"
)

// ClientDirectory reads the client list another part of the product keeps
// under photo_clients_<owner>. It never writes.
type ClientDirectory struct {
	store interfaces.IKeyValueStore
}

var _ interfaces.IClientDirectory = (*ClientDirectory)(nil)

func NewClientDirectory(store interfaces.IKeyValueStore) *ClientDirectory {
	return &ClientDirectory{store: store}
}

func (d *ClientDirectory) ListClients(ctx context.Context, ownerID string) ([]entities.Client, error) {
	raw, err := d.store.Get(ctx, ClientsKey(ownerID))
	if err != nil {
		return nil, fmt.Errorf("load clients for %s: %w", ownerID, err)
	}
	if len(raw) == 0 {
		return []entities.Client{}, nil
	}
	var clients []entities.Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, fmt.Errorf("decode clients for %s: %w", ownerID, err)
	}
	return clients, nil
}

func (d *ClientDirectory) GetClient(ctx context.Context, ownerID, clientID string) (entities.Client, bool, error) {
	clients, err := d.ListClients(ctx, ownerID)
	if err != nil {
		return entities.Client{}, false, err
	}
	for _, c := range clients {
		if c.ID == clientID {
			return c, true, nil
		}
	}
	return entities.Client{}, false, nil
}

// ProfileDirectory reads photo_profile_<owner>.
type ProfileDirectory struct {
	store interfaces.IKeyValueStore
}

var _ interfaces.IProfileDirectory = (*ProfileDirectory)(nil)

func NewProfileDirectory(store interfaces.IKeyValueStore) *ProfileDirectory {
	return &ProfileDirectory{store: store}
}

func (d *ProfileDirectory) GetProfile(ctx context.Context, ownerID string) (entities.PhotographerProfile, bool, error) {
	raw, err := d.store.Get(ctx, ProfileKey(ownerID))
	if err != nil {
		return entities.PhotographerProfile{}, false, fmt.Errorf("load profile for %s: %w", ownerID, err)
	}
	if len(raw) == 0 {
		return entities.PhotographerProfile{}, false, nil
	}
	var p entities.PhotographerProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return entities.PhotographerProfile{}, false, fmt.Errorf("decode profile for %s: %w", ownerID, err)
	}
	return p, true, nil
}
