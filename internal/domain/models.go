package domain

import "time"

// Role is a closed enumeration; donor is the elevated role that manages
// foods, rewards, donations, orders and partner applications.
type Role string

const (
	RoleDonor    Role = "donor"
	RoleReceiver Role = "receiver"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleReceiver:
		return true
	}
	return false
}

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Phone        string    `db:"phone"`
	Role         Role      `db:"role"`
	Points       int       `db:"points"`
	CreatedAt    time.Time `db:"created_at"`
}

type Food struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Category    string    `db:"category"`
	ImageURL    string    `db:"image_url"`
	CreatedAt   time.Time `db:"created_at"`
}

// CartItem is the cart row joined with its food for display.
type CartItem struct {
	FoodID   int     `db:"food_id"`
	Qty      int     `db:"qty"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	ImageURL string  `db:"image_url"`
}

type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "placed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is the point-in-time snapshot of a food at order time.
// Price changes after placement never alter it.
type OrderItem struct {
	FoodID    int     `json:"foodId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"lineTotal"`
}

type Order struct {
	ID            int         `db:"id"`
	UserID        int         `db:"user_id"`
	Items         []OrderItem `db:"items"`
	Total         float64     `db:"total"`
	Status        OrderStatus `db:"status"`
	CreatedAt     time.Time   `db:"created_at"`
	CustomerName  string      `db:"customer_name"`
	CustomerEmail string      `db:"customer_email"`
}

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusScheduled DonationStatus = "scheduled"
	DonationStatusPickedUp  DonationStatus = "picked_up"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusCancelled DonationStatus = "cancelled"
)

func (s DonationStatus) Valid() bool {
	switch s {
	case DonationStatusPending, DonationStatusScheduled, DonationStatusPickedUp,
		DonationStatusCompleted, DonationStatusCancelled:
		return true
	}
	return false
}

type DonorType string

const (
	DonorTypeIndividual DonorType = "individual"
	DonorTypeRestaurant DonorType = "restaurant"
	DonorTypeEvent      DonorType = "event"
	DonorTypeOther      DonorType = "other"
)

func (t DonorType) Valid() bool {
	switch t {
	case DonorTypeIndividual, DonorTypeRestaurant, DonorTypeEvent, DonorTypeOther:
		return true
	}
	return false
}

type Donation struct {
	ID                int            `db:"id"`
	UserID            int            `db:"user_id"`
	DonorType         DonorType      `db:"donor_type"`
	ContactName       string         `db:"contact_name"`
	ContactPhone      string         `db:"contact_phone"`
	ContactEmail      string         `db:"contact_email"`
	FoodType          string         `db:"food_type"`
	Quantity          string         `db:"quantity"`
	PickupAddress     string         `db:"pickup_address"`
	PickupWindow      string         `db:"pickup_window"`
	Notes             string         `db:"notes"`
	Status            DonationStatus `db:"status"`
	AssignedVolunteer string         `db:"assigned_volunteer"`
	CreatedAt         time.Time      `db:"created_at"`
	UserName          string         `db:"user_name"`
	UserEmail         string         `db:"user_email"`
}

type PartnerStatus string

const (
	PartnerStatusPending  PartnerStatus = "pending"
	PartnerStatusInReview PartnerStatus = "in_review"
	PartnerStatusApproved PartnerStatus = "approved"
	PartnerStatusRejected PartnerStatus = "rejected"
)

func (s PartnerStatus) Valid() bool {
	switch s {
	case PartnerStatusPending, PartnerStatusInReview, PartnerStatusApproved, PartnerStatusRejected:
		return true
	}
	return false
}

type OrganizationType string

const (
	OrganizationTypeNGO        OrganizationType = "ngo"
	OrganizationTypeRestaurant OrganizationType = "restaurant"
	OrganizationTypeVolunteer  OrganizationType = "volunteer"
	OrganizationTypeSponsor    OrganizationType = "sponsor"
)

func (t OrganizationType) Valid() bool {
	switch t {
	case OrganizationTypeNGO, OrganizationTypeRestaurant, OrganizationTypeVolunteer, OrganizationTypeSponsor:
		return true
	}
	return false
}

type Partner struct {
	ID               int              `db:"id"`
	UserID           int              `db:"user_id"`
	OrganizationName string           `db:"organization_name"`
	OrganizationType OrganizationType `db:"organization_type"`
	ContactPerson    string           `db:"contact_person"`
	Email            string           `db:"email"`
	Phone            string           `db:"phone"`
	Location         string           `db:"location"`
	Website          string           `db:"website"`
	Message          string           `db:"message"`
	DocumentURL      string           `db:"document_url"`
	Status           PartnerStatus    `db:"status"`
	Notes            string           `db:"notes"`
	CreatedAt        time.Time        `db:"created_at"`
	UserName         string           `db:"user_name"`
	UserEmail        string           `db:"user_email"`
}

type Reward struct {
	ID             int       `db:"id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Image          string    `db:"image"`
	PointsRequired int       `db:"points_required"`
	Inventory      int       `db:"inventory"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

type PointsSource string

const (
	PointsSourceGame     PointsSource = "game"
	PointsSourceDonation PointsSource = "donation"
	PointsSourceReward   PointsSource = "reward"
	PointsSourceManual   PointsSource = "manual"
)

func (s PointsSource) Valid() bool {
	switch s {
	case PointsSourceGame, PointsSourceDonation, PointsSourceReward, PointsSourceManual:
		return true
	}
	return false
}

type PointsDirection string

const (
	PointsCredit PointsDirection = "credit"
	PointsDebit  PointsDirection = "debit"
)

// PointsEntry is an append-only ledger record. The signed sum of a user's
// entries (credits minus debits) must always equal users.points.
type PointsEntry struct {
	ID         int             `db:"id"`
	UserID     int             `db:"user_id"`
	Points     int             `db:"points"`
	SourceType PointsSource    `db:"source_type"`
	SourceID   int             `db:"source_id"`
	Note       string          `db:"note"`
	Direction  PointsDirection `db:"direction"`
	CreatedAt  time.Time       `db:"created_at"`
}

type Game struct {
	ID            int       `db:"id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	URL           string    `db:"url"`
	IconURL       string    `db:"icon_url"`
	PointsPerPlay int       `db:"points_per_play"`
	Tags          []string  `db:"tags"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
}
