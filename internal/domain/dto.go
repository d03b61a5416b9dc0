package domain

// ProductDetails is one line of a cart summary: the stored quantity joined
// with the current catalog cost for that product.
type ProductDetails struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Cost      float64 `json:"cost"`
}

// CartDetails is the full summary of a user's cart. TotalCost is the sum of
// quantity times cost over ProductDetails. It is recomputed on every read.
type CartDetails struct {
	ProductDetails []ProductDetails `json:"productDetails"`
	TotalCost      float64          `json:"totalCost"`
}

// ProblemDetails is the body returned for failed requests.
type ProblemDetails struct {
	Reason string `json:"reason"`
}
