package domain

import "context"

type BookingStore interface {
	Get(ctx context.Context, id int) (*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)
	Exists(ctx context.Context, id int) bool
	// Save stores the booking under a repository-assigned id.
	Save(ctx context.Context, booking *Booking) (*Booking, error)
	// Insert stores the booking under its own explicit id.
	Insert(ctx context.Context, booking *Booking) (*Booking, error)
	Update(ctx context.Context, booking *Booking) (*Booking, error)
	Delete(ctx context.Context, id int) bool
	Count(ctx context.Context) int
}
