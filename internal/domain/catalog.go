package domain

// Product описывает позицию каталога. Каталог поставляется извне и
// для ядра витрины является read-only.
type Product struct {
	ID          string
	Name        string
	Description string
	// PriceMinor — цена за единицу в центах.
	PriceMinor int64
	// Unit — единица продажи: "kg", "pièce", "barquette" и т.п.
	Unit       string
	Category   string
	ProducerID string
	ImageURL   string
	InStock    bool
	IsOrganic  bool
	IsLocal    bool
	Rating     float64
}

// Producer описывает фермера/производителя каталога.
type Producer struct {
	ID          string
	Name        string
	Description string
	Location    string
	DistanceKm  float64
	Rating      float64
	Categories  []string
	ImageURL    string
}

// Category описывает раздел каталога.
type Category struct {
	ID            string
	Name          string
	ImageURL      string
	ProductsCount int
}

// Validate проверяет минимальные инварианты товара при загрузке каталога.
func (p Product) Validate() []error {
	var errs []error
	if p.ID == "" || p.Name == "" {
		errs = append(errs, ErrProductNotFound)
	}
	if p.PriceMinor < 0 {
		errs = append(errs, ErrInvalidPrice)
	}
	return errs
}
