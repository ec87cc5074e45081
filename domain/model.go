package domain

import (
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

type Gender string

const (
	Male   Gender = "MALE"
	Female Gender = "FEMALE"
)

// Entity is implemented by every record kept in a repository. WithID and
// Clone must return independent copies so the repository never hands out a
// reference into its own state.
type Entity[T any] interface {
	EntityID() int
	WithID(id int) T
	Clone() T
}

type Guest struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required,noWhitespace"`
	LastName  string `json:"lastName" validate:"required,noWhitespace"`
	Gender    Gender `json:"gender" validate:"required,oneof=MALE FEMALE"`
}

func (guest *Guest) EntityID() int {
	return guest.ID
}

func (guest *Guest) Clone() *Guest {
	clone := *guest
	return &clone
}

func (guest *Guest) WithID(id int) *Guest {
	clone := guest.Clone()
	clone.ID = id
	return clone
}

func (guest *Guest) Validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("noWhitespace", noWhitespaceField)
	if err != nil {
		return err
	}

	return validate.Struct(guest)
}

// Rejects values containing any whitespace, including whitespace-only names.
func noWhitespaceField(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`\s`)
	return !re.MatchString(fl.Field().String())
}

type BedType string

const (
	Single   BedType = "SINGLE"
	Double   BedType = "DOUBLE"
	KingSize BedType = "KING_SIZE"
)

// Size is the number of people the bed sleeps.
func (bedType BedType) Size() int {
	switch bedType {
	case Single:
		return 1
	case Double, KingSize:
		return 2
	}
	return 0
}

type CommodityKind string

const (
	BedCommodity    CommodityKind = "BED"
	ToiletCommodity CommodityKind = "TOILET"
	ShowerCommodity CommodityKind = "SHOWER"
)

// Commodity is a room fixture. BedType is set only when Kind is BedCommodity;
// the other variants carry no extra data and contribute no capacity.
type Commodity struct {
	InventoryID int           `json:"inventoryId"`
	Kind        CommodityKind `json:"kind"`
	BedType     BedType       `json:"bedType,omitempty"`
}

func (commodity Commodity) Capacity() int {
	if commodity.Kind == BedCommodity {
		return commodity.BedType.Size()
	}
	return 0
}

// CommodityFactory issues commodities with unique inventory ids. The counter
// belongs to the factory instance, so independent factories start from one
// and construction order stays testable.
type CommodityFactory struct {
	mu             sync.Mutex
	inventoryCount int
}

func NewCommodityFactory() *CommodityFactory {
	return &CommodityFactory{}
}

func (factory *CommodityFactory) nextInventoryID() int {
	factory.mu.Lock()
	defer factory.mu.Unlock()

	factory.inventoryCount++
	return factory.inventoryCount
}

func (factory *CommodityFactory) NewBed(bedType BedType) Commodity {
	return Commodity{InventoryID: factory.nextInventoryID(), Kind: BedCommodity, BedType: bedType}
}

func (factory *CommodityFactory) NewToilet() Commodity {
	return Commodity{InventoryID: factory.nextInventoryID(), Kind: ToiletCommodity}
}

func (factory *CommodityFactory) NewShower() Commodity {
	return Commodity{InventoryID: factory.nextInventoryID(), Kind: ShowerCommodity}
}

type Room struct {
	ID          int         `json:"id"`
	Commodities []Commodity `json:"commodities"`
}

func (room *Room) EntityID() int {
	return room.ID
}

// Capacity is derived from the bed commodities; non-bed commodities count
// for zero.
func (room *Room) Capacity() int {
	capacity := 0
	for _, commodity := range room.Commodities {
		capacity += commodity.Capacity()
	}
	return capacity
}

func (room *Room) Clone() *Room {
	clone := *room
	clone.Commodities = make([]Commodity, len(room.Commodities))
	copy(clone.Commodities, room.Commodities)
	return &clone
}

func (room *Room) WithID(id int) *Room {
	clone := room.Clone()
	clone.ID = id
	return clone
}

// Booking references a guest and a room by id; it owns neither.
// Dates are calendar dates at day granularity.
type Booking struct {
	ID             int       `json:"id"`
	GuestID        int       `json:"guestId"`
	RoomID         int       `json:"roomId"`
	NumberOfPeople int       `json:"numberOfPeople"`
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
}

func (booking *Booking) EntityID() int {
	return booking.ID
}

func (booking *Booking) Clone() *Booking {
	clone := *booking
	return &clone
}

func (booking *Booking) WithID(id int) *Booking {
	clone := booking.Clone()
	clone.ID = id
	return clone
}

// Overlaps reports whether [from, to) shares at least one day with the
// booking's own half-open interval, so a checkout date equal to another
// booking's check-in date does not count.
func (booking *Booking) Overlaps(from, to time.Time) bool {
	return booking.From.Before(to) && from.Before(booking.To)
}
