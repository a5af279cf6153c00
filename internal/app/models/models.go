package models

import "time"

// User is the account entity. PasswordHash never leaves the auth domain.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the identity echoed back on register/login and carried in
// token claims.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is the register/login payload: a bearer token plus the
// public user fields.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// Region is a top-level geographic entity owning places.
type Region struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Culture     string `json:"culture"`
	Cuisine     string `json:"cuisine"`
	ImageURL    string `json:"image_url"`
}

// RegionDetail is a region together with its child places.
type RegionDetail struct {
	Region
	Places []Place `json:"places"`
}

// Place is a point-of-interest location belonging to exactly one region.
// RegionName is denormalized from the parent for display lists.
type Place struct {
	ID          int64   `json:"id"`
	RegionID    int64   `json:"region_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	History     string  `json:"history"`
	BestTime    string  `json:"best_time"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
	RegionName  string  `json:"region_name,omitempty"`
}

// PlaceDetail is a place together with its attractions.
type PlaceDetail struct {
	Place
	Attractions []Attraction `json:"attractions"`
}

// Attraction is a sub-location of interest within a place.
type Attraction struct {
	ID          int64  `json:"id"`
	PlaceID     int64  `json:"place_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Favorite links a user to a place. The (user_id, place_id) pair is unique.
type Favorite struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"user_id"`
	PlaceID int64 `json:"place_id"`
}

// SearchResult is one row of the combined region/place name search.
// Type is "region" or "place".
type SearchResult struct {
	Type        string `json:"type"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Hotel is a nearby-hotel suggestion, AI generated or canned.
type Hotel struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"priceRange"`
}
