package model

// UserProfile is the optional, display-only profile of the device owner.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileStats summarises the persisted collections for the profile screen.
type ProfileStats struct {
	FavoritesCount int `json:"favoritesCount"`
	OrdersCount    int `json:"ordersCount"`
}
