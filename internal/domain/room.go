package domain

// RoomID identifies a room within one graph
type RoomID int

// NoRoom marks an absent link
const NoRoom RoomID = 0

// Direction is a traversal direction along the room path
type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
)

// Room is one node of the linear room path
type Room struct {
	ID      RoomID
	Enemies []*Enemy
	Prev    RoomID
	Next    RoomID
	// Items is not used by combat or equipment logic.
	Items []*Item
}

// Blocked reports whether living enemies keep the hero from going forward
func (r *Room) Blocked() bool {
	return len(r.Enemies) > 0
}

// HasPrev reports whether the room has a previous link
func (r *Room) HasPrev() bool {
	return r.Prev != NoRoom
}

// HasNext reports whether the room has been linked forward
func (r *Room) HasNext() bool {
	return r.Next != NoRoom
}
