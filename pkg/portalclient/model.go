package portalclient

import "time"

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Audience  string    `json:"audience"`
	Urgent    bool      `json:"urgent"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
	Audience    string     `json:"audience"`
	CreatedAt   time.Time  `json:"created_at"`
	RSVPCount   int64      `json:"rsvp_count"`
	IsRSVPd     bool       `json:"is_rsvpd"`
}

type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Audience    string    `json:"audience"`
	CreatedAt   time.Time `json:"created_at"`
	MemberCount int64     `json:"member_count"`
	IsMember    bool      `json:"is_member"`
}

type Placement struct {
	ID               string     `json:"id"`
	Company          string     `json:"company"`
	Role             string     `json:"role"`
	Description      string     `json:"description"`
	Deadline         *time.Time `json:"deadline"`
	Audience         string     `json:"audience"`
	CreatedAt        time.Time  `json:"created_at"`
	ApplicationCount int64      `json:"application_count"`
	HasApplied       bool       `json:"has_applied"`
}

type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Notification struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Read       bool      `json:"read"`
	SourceType string    `json:"source_type"`
	SourceID   string    `json:"source_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Room carries the status resolved by the server for Hour.
type Room struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Building       string  `json:"building"`
	StatusOverride *string `json:"status_override"`
	Hour           int     `json:"hour"`
	Occupied       bool    `json:"occupied"`
	Label          *string `json:"label"`
}

type NotificationPage struct {
	Items       []Notification `json:"items"`
	UnreadCount int64          `json:"unread_count"`
}

// Toggle outcomes as reported by the server.
const (
	StatusJoined  = "joined"
	StatusLeft    = "left"
	StatusAdded   = "added"
	StatusRemoved = "removed"
)

// Room status values accepted by SetRoomStatus.
const (
	RoomAvailable = "available"
	RoomOccupied  = "occupied"
	RoomAuto      = "auto"
)

const manualOverrideLabel = "Manual Override"
