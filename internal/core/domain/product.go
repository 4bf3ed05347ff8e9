package domain

type Product struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
	Rating       float64 `json:"rating"`
	NumReviews   int     `json:"numReviews"`
}
