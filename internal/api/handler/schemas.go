package handler

import "github.com/maizul/restaurant-api/internal/core/domain"

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Users ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}

type updateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// --- Menu ---

type createMenuItemRequest struct {
	Category      string   `json:"category" validate:"required"`
	NameES        string   `json:"name_es" validate:"required"`
	NameEN        string   `json:"name_en" validate:"required"`
	DescriptionES string   `json:"description_es" validate:"required"`
	DescriptionEN string   `json:"description_en" validate:"required"`
	Price         *float64 `json:"price" validate:"required,min=0"`
	Image         *string  `json:"image,omitempty"`
	IsFeatured    *bool    `json:"is_featured,omitempty"`
	IsAvailable   *bool    `json:"is_available,omitempty"`
	SortOrder     int      `json:"sort_order"`
	Tags          []string `json:"tags,omitempty"`
}

type updateMenuItemRequest struct {
	Category      *string   `json:"category,omitempty"`
	NameES        *string   `json:"name_es,omitempty"`
	NameEN        *string   `json:"name_en,omitempty"`
	DescriptionES *string   `json:"description_es,omitempty"`
	DescriptionEN *string   `json:"description_en,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	Image         *string   `json:"image,omitempty"`
	IsFeatured    *bool     `json:"is_featured,omitempty"`
	IsAvailable   *bool     `json:"is_available,omitempty"`
	SortOrder     *int      `json:"sort_order,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
}

type reorderEntryRequest struct {
	ID        string `json:"id" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

// --- Shared ---

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type seedResponse struct {
	Message          string `json:"message"`
	AdminUsername    string `json:"admin_username"`
	AdminCreated     bool   `json:"admin_created"`
	MenuItemsCreated int    `json:"menu_items_created"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache,omitempty"`
	Timestamp string `json:"timestamp"`
}

type rootResponse struct {
	Status  string `json:"status"`
	App     string `json:"app"`
	Version string `json:"version"`
}
