package domain

type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"img"`
}

type Catalog struct {
	Women []Product `json:"women"`
	Men   []Product `json:"men"`
}
