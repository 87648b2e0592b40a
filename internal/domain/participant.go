package domain

type occupantKind int

const (
	occupantRegistered occupantKind = iota + 1
	occupantGuest
)

// Occupant is a tagged variant: either a registered user (by id) or a
// named guest. Exactly one of the two is ever set; the zero value is
// invalid and rejected by IsValid.
type Occupant struct {
	kind      occupantKind
	userID    string
	guestName string
}

func RegisteredOccupant(userID string) Occupant {
	return Occupant{kind: occupantRegistered, userID: userID}
}

func GuestOccupant(name string) Occupant {
	return Occupant{kind: occupantGuest, guestName: name}
}

func (o Occupant) IsValid() bool {
	switch o.kind {
	case occupantRegistered:
		return o.userID != ""
	case occupantGuest:
		return o.guestName != ""
	}
	return false
}

func (o Occupant) UserID() (string, bool) {
	return o.userID, o.kind == occupantRegistered
}

func (o Occupant) GuestName() (string, bool) {
	return o.guestName, o.kind == occupantGuest
}

type Participant struct {
	ID            string   `json:"id"`
	ReservationID string   `json:"reservation_id"`
	Occupant      Occupant `json:"-"`
	Order         int      `json:"order"` // creator is always 0
}

// HasUser reports whether userID is a registered participant of the set.
func HasUser(participants []*Participant, userID string) bool {
	for _, p := range participants {
		if id, ok := p.Occupant.UserID(); ok && id == userID {
			return true
		}
	}
	return false
}
