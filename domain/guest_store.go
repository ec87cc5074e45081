package domain

import "context"

type GuestStore interface {
	Get(ctx context.Context, id int) (*Guest, error)
	GetAll(ctx context.Context) ([]*Guest, error)
	Exists(ctx context.Context, id int) bool
	Save(ctx context.Context, guest *Guest) (*Guest, error)
	Insert(ctx context.Context, guest *Guest) (*Guest, error)
	Update(ctx context.Context, guest *Guest) (*Guest, error)
	Delete(ctx context.Context, id int) bool
	Count(ctx context.Context) int
}
