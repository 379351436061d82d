package domain

import "time"

// DiningSummary is the structured form of a closed dining suggestion request,
// published to the suggestions queue alongside the confirmation message.
type DiningSummary struct {
	RequestID   string    `json:"requestId"`
	UserID      string    `json:"userId,omitempty"`
	Location    string    `json:"location"`
	Cuisine     string    `json:"cuisine"`
	NumPeople   string    `json:"numPeople"`
	DiningTime  string    `json:"diningTime"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}
