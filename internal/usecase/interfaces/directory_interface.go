package interfaces

import (
	"context"
	"focusquote/internal/domain/entities"
)

// IClientDirectory is the read side of the client-records collaborator.

type IClientDirectory interface {
	GetClient(ctx context.Context, ownerID, clientID string) (entities.Client, bool, error)
	ListClients(ctx context.Context, ownerID string) ([]entities.Client, error)
}

// IProfileDirectory is the read side of the account/profile collaborator.

type IProfileDirectory interface {
	GetProfile(ctx context.Context, ownerID string) (entities.PhotographerProfile, bool, error)
}
