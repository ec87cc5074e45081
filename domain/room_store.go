package domain

import "context"

type RoomStore interface {
	Get(ctx context.Context, id int) (*Room, error)
	GetAll(ctx context.Context) ([]*Room, error)
	Exists(ctx context.Context, id int) bool
	Save(ctx context.Context, room *Room) (*Room, error)
	Update(ctx context.Context, room *Room) (*Room, error)
	Delete(ctx context.Context, id int) bool
	Count(ctx context.Context) int
}
