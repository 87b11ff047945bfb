package api

// Wire types for the restaurant backend. Response bodies are decoded
// as-is; inputs mirror the JSON the server expects.

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginResult carries the authenticated user plus the access token when
// the backend issues one. Cookie-session deployments leave AccessToken
// empty.
type LoginResult struct {
	User
	AccessToken string `json:"access_token,omitempty"`
}

type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type MenuItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type Table struct {
	ID          int64 `json:"id"`
	TableNumber int   `json:"table_number"`
	Seats       int   `json:"seats"`
	IsOccupied  bool  `json:"is_occupied"`
}

type TableInput struct {
	TableNumber int `json:"table_number"`
	Seats       int `json:"seats"`
}

type TablePatch struct {
	TableNumber *int  `json:"table_number,omitempty"`
	Seats       *int  `json:"seats,omitempty"`
	IsOccupied  *bool `json:"is_occupied,omitempty"`
}

type OrderItem struct {
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Order struct {
	ID         int64       `json:"id"`
	TableID    int64       `json:"table_id"`
	Status     string      `json:"status"`
	TotalPrice float64     `json:"total_price"`
	Items      []OrderItem `json:"items"`
}

type OrderItemInput struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type CreateOrderInput struct {
	TableID int64            `json:"table_id"`
	Items   []OrderItemInput `json:"items"`
}

type Employee struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type EmployeeInput struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type EmployeePatch struct {
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}
