package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBedTypeSize(t *testing.T) {
	assert.Equal(t, 1, Single.Size())
	assert.Equal(t, 2, Double.Size())
	assert.Equal(t, 2, KingSize.Size())
	assert.Equal(t, 0, BedType("BUNK").Size())
}

func TestCommodityCapacity(t *testing.T) {
	factory := NewCommodityFactory()

	assert.Equal(t, 2, factory.NewBed(Double).Capacity())
	assert.Equal(t, 0, factory.NewToilet().Capacity())
	assert.Equal(t, 0, factory.NewShower().Capacity())
}

func TestCommodityFactoryAssignsUniqueInventoryIDs(t *testing.T) {
	factory := NewCommodityFactory()

	bed := factory.NewBed(Single)
	toilet := factory.NewToilet()
	shower := factory.NewShower()

	assert.Equal(t, 1, bed.InventoryID)
	assert.Equal(t, 2, toilet.InventoryID)
	assert.Equal(t, 3, shower.InventoryID)

	// independent factories restart the count
	other := NewCommodityFactory()
	assert.Equal(t, 1, other.NewToilet().InventoryID)
}

func TestRoomCapacitySumsBedSizesOnly(t *testing.T) {
	factory := NewCommodityFactory()

	room := &Room{Commodities: []Commodity{
		factory.NewBed(KingSize),
		factory.NewBed(Single),
		factory.NewToilet(),
		factory.NewShower(),
	}}

	assert.Equal(t, 3, room.Capacity())
}

func TestRoomCloneIsIndependent(t *testing.T) {
	factory := NewCommodityFactory()
	room := &Room{ID: 7, Commodities: []Commodity{factory.NewBed(Double)}}

	clone := room.Clone()
	clone.Commodities[0].BedType = Single

	assert.Equal(t, Double, room.Commodities[0].BedType)
	assert.Equal(t, 2, room.Capacity())
}

func TestGuestValidate(t *testing.T) {
	tests := []struct {
		name    string
		guest   Guest
		wantErr bool
	}{
		{
			name:  "valid guest",
			guest: Guest{ID: 1, FirstName: "Taner", LastName: "Ilyazov", Gender: Male},
		},
		{
			name:    "empty first name",
			guest:   Guest{ID: 1, FirstName: "", LastName: "Ilyazov", Gender: Male},
			wantErr: true,
		},
		{
			name:    "whitespace-only last name",
			guest:   Guest{ID: 1, FirstName: "Taner", LastName: "   ", Gender: Male},
			wantErr: true,
		},
		{
			name:    "embedded space in first name",
			guest:   Guest{ID: 1, FirstName: "Ta ner", LastName: "Ilyazov", Gender: Male},
			wantErr: true,
		},
		{
			name:    "missing gender",
			guest:   Guest{ID: 1, FirstName: "Taner", LastName: "Ilyazov"},
			wantErr: true,
		},
		{
			name:    "unknown gender",
			guest:   Guest{ID: 1, FirstName: "Taner", LastName: "Ilyazov", Gender: "OTHER"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guest.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingOverlapsHalfOpen(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2030, time.January, 1+n, 0, 0, 0, 0, time.UTC)
	}
	booking := &Booking{ID: 1, RoomID: 1, From: day(0), To: day(5)}

	tests := []struct {
		name string
		from int
		to   int
		want bool
	}{
		{"identical period", 0, 5, true},
		{"contained period", 2, 4, true},
		{"overlap at start", -2, 1, true},
		{"overlap at end", 4, 8, true},
		{"touching at checkout", 5, 7, false},
		{"touching at checkin", -3, 0, false},
		{"disjoint after", 6, 8, false},
		{"disjoint before", -4, -2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, day(tt.from).Before(day(tt.to)))
			assert.Equal(t, tt.want, booking.Overlaps(day(tt.from), day(tt.to)))
		})
	}
}
