package domain

// Role represents user role in the system
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Category is the fixed product classification used across the catalog
type Category string

const (
	CategoryAll       Category = "All"
	CategoryMens      Category = "Mens"
	CategoryWomens    Category = "Womens"
	CategoryActive    Category = "Active"
	CategorySleepwear Category = "Sleepwear"
)

// Categories lists the storable categories in display order.
// CategoryAll is a filter value only and is never stored on a product.
var Categories = []Category{CategoryMens, CategoryWomens, CategoryActive, CategorySleepwear}

// IsValidCategory reports whether c is a storable product category
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SortOption controls catalog ordering
type SortOption string

const (
	SortNone         SortOption = "None"
	SortPriceLowHigh SortOption = "Price: Low to High"
	SortPriceHighLow SortOption = "Price: High to Low"
	SortNameAZ       SortOption = "Name: A-Z"
)

// Business constants
const (
	// TaxRate is applied multiplicatively to the cart subtotal
	TaxRate = 0.18

	// LowStockThreshold marks products that need restocking (stock strictly below)
	LowStockThreshold = 10
)

// Product represents a catalog artifact
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Badges      []string `json:"badges,omitempty"`
	Stock       int      `json:"stock"`
	OfferPrice  *int64   `json:"offerPrice,omitempty"`
}

// CartItem is a product snapshot plus a quantity (always >= 1)
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// User represents an authenticated shopper or administrator
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token,omitempty"`
}

// Account is a stored user record. PasswordHash is empty in local mode
// where no real credential check is performed.
type Account struct {
	User
	PasswordHash string `json:"-"`
}

// StaffMember represents atelier personnel
type StaffMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedAt string `json:"joinedAt"`
	Status   string `json:"status"`
}

// Staff roles and statuses
const (
	StaffRoleManager       = "Manager"
	StaffRoleCurator       = "Curator"
	StaffRoleInventoryLead = "Inventory Lead"
	StaffRoleSupport       = "Support"

	StaffStatusActive  = "Active"
	StaffStatusOnLeave = "On Leave"
)

// IsValidStaffRole reports whether role is one of the known staff roles
func IsValidStaffRole(role string) bool {
	switch role {
	case StaffRoleManager, StaffRoleCurator, StaffRoleInventoryLead, StaffRoleSupport:
		return true
	}
	return false
}
