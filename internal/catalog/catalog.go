package catalog

import (
	"strings"

	"github.com/marcheapp/storefront/internal/domain"
)

// Catalog — read-only каталог рынка, собираемый один раз при старте
// процесса. Глобального мутируемого состояния нет: каталог явно
// передаётся всем, кто от него зависит.
type Catalog struct {
	products   []domain.Product
	producers  []domain.Producer
	categories []domain.Category

	productByID  map[string]domain.Product
	producerByID map[string]domain.Producer
}

// New строит каталог из переданных коллекций. После конструирования
// коллекции больше не меняются.
func New(products []domain.Product, producers []domain.Producer, categories []domain.Category) *Catalog {
	c := &Catalog{
		products:     make([]domain.Product, len(products)),
		producers:    make([]domain.Producer, len(producers)),
		categories:   make([]domain.Category, len(categories)),
		productByID:  make(map[string]domain.Product, len(products)),
		producerByID: make(map[string]domain.Producer, len(producers)),
	}
	copy(c.products, products)
	copy(c.producers, producers)
	copy(c.categories, categories)

	for _, p := range c.products {
		c.productByID[p.ID] = p
	}
	for _, p := range c.producers {
		c.producerByID[p.ID] = p
	}
	return c
}

// NewSeeded возвращает каталог со встроенными данными рынка.
func NewSeeded() *Catalog {
	return New(seedProducts, seedProducers, seedCategories)
}

// Products возвращает копию списка товаров в порядке каталога.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID возвращает товар или ErrProductNotFound.
func (c *Catalog) ProductByID(id string) (domain.Product, error) {
	product, ok := c.productByID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// ProductsByCategory возвращает товары раздела.
func (c *Catalog) ProductsByCategory(category string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// ProductsByProducer возвращает товары производителя.
func (c *Catalog) ProductsByProducer(producerID string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if p.ProducerID == producerID {
			out = append(out, p)
		}
	}
	return out
}

// Producers возвращает копию списка производителей.
func (c *Catalog) Producers() []domain.Producer {
	out := make([]domain.Producer, len(c.producers))
	copy(out, c.producers)
	return out
}

// ProducerByID возвращает производителя или ErrProducerNotFound.
func (c *Catalog) ProducerByID(id string) (domain.Producer, error) {
	producer, ok := c.producerByID[id]
	if !ok {
		return domain.Producer{}, domain.ErrProducerNotFound
	}
	return producer, nil
}

// Categories возвращает копию списка разделов.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Search выполняет регистронезависимый substring-поиск по трём
// коллекциям: товары — по названию, производителю и разделу;
// производители — по названию и их разделам; разделы — по названию.
// Пустой запрос совпадает со всем, как и в исходной витрине.
func (c *Catalog) Search(query string) domain.SearchResult {
	q := strings.ToLower(query)

	result := domain.SearchResult{
		Products:   make([]domain.Product, 0),
		Producers:  make([]domain.Producer, 0),
		Categories: make([]domain.Category, 0),
	}

	for _, p := range c.products {
		producerName := ""
		if producer, ok := c.producerByID[p.ProducerID]; ok {
			producerName = producer.Name
		}
		if containsFold(p.Name, q) || containsFold(producerName, q) || containsFold(p.Category, q) {
			result.Products = append(result.Products, p)
		}
	}

	for _, p := range c.producers {
		if containsFold(p.Name, q) || anyContainsFold(p.Categories, q) {
			result.Producers = append(result.Producers, p)
		}
	}

	for _, cat := range c.categories {
		if containsFold(cat.Name, q) {
			result.Categories = append(result.Categories, cat)
		}
	}

	return result
}

func containsFold(s, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}

func anyContainsFold(values []string, loweredQuery string) bool {
	for _, v := range values {
		if containsFold(v, loweredQuery) {
			return true
		}
	}
	return false
}

var _ domain.CatalogSource = (*Catalog)(nil)
