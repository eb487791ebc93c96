package models

type CustomerType string

const (
	CustomerRegular       CustomerType = "REGULAR"
	CustomerFrequentFlyer CustomerType = "FREQUENT_FLYER"
)

type MembershipLevel string

const (
	MembershipNone     MembershipLevel = "NONE"
	MembershipSilver   MembershipLevel = "SILVER"
	MembershipGold     MembershipLevel = "GOLD"
	MembershipPlatinum MembershipLevel = "PLATINUM"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User combines account identity with loyalty state. MembershipLevel is
// derived from MilesFlown for frequent flyers and must be recomputed
// whenever miles change; it is never set on its own.
type User struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	PasswordHash    string          `json:"-"`
	PhoneNumber     string          `json:"phone_number"`
	CustomerType    CustomerType    `json:"customer_type"`
	MilesFlown      int             `json:"miles_flown"`
	MembershipLevel MembershipLevel `json:"membership_level"`
	Role            Role            `json:"role"`
}
