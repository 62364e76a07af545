package domain

import "time"

// Age category labels derived from a user's age. The category is computed on
// read and never stored.
const (
	AgeCategoryMinor        = "Minor"
	AgeCategoryAdult        = "Adult"
	AgeCategorySenior       = "Senior"
	AgeCategoryNotSpecified = "Not specified"
)

// User is the managed resource: a person record with an optional age.
// Email is unique across all users and stored lowercase.
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Age       *int      `json:"age,omitempty" bson:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// AgeCategory classifies the user's age: <18 Minor, 18-64 Adult, >=65 Senior.
func (u *User) AgeCategory() string {
	if u.Age == nil {
		return AgeCategoryNotSpecified
	}
	switch {
	case *u.Age < 18:
		return AgeCategoryMinor
	case *u.Age < 65:
		return AgeCategoryAdult
	default:
		return AgeCategorySenior
	}
}
