package request

// ProductFilterRequest represents query parameters for product searches
type ProductFilterRequest struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Search     string `form:"search"`
	StockID    string `form:"stock_id"`
	CategoryID string `form:"category_id"`
}

// OrderFilterRequest represents query parameters for order listings
type OrderFilterRequest struct {
	Page         int    `form:"page"`
	PerPage      int    `form:"per_page"`
	Search       string `form:"search"`
	DocumentType string `form:"document_type"`
	Status       string `form:"status"`
	CustomerID   string `form:"customer_id"`
}

// CustomerFilterRequest represents query parameters for customer listings
type CustomerFilterRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
}
