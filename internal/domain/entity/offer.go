package entity

// Offer is an active advertisement as the storefront shows it.
type Offer struct {
	ID           string   `json:"id"`
	ProductName  string   `json:"productName"`
	ProductImage string   `json:"productImage"`
	DataAIHint   string   `json:"dataAiHint,omitempty"`
	Price        float64  `json:"price"`
	StoreID      string   `json:"storeId"`
	StoreName    string   `json:"storeName"`
	Distance     *float64 `json:"distance"` // km; nil when either coordinate is unknown
	Category     string   `json:"category"`
	Description  string   `json:"description,omitempty"`
}
