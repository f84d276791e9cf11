package catalog

import (
	"context"

	"github.com/khayt/stylist-bot/internal/models"
)

// Source supplies a catalog snapshot. Order matters: the composer's picks
// are deterministic only for a stable product order, so implementations
// must return products in a fixed order between calls.
type Source interface {
	Products(ctx context.Context) ([]models.Product, error)
	Close(ctx context.Context) error
}

// MemorySource serves a fixed slice in insertion order. Used for tests and
// for running the bot without a storefront database.
type MemorySource struct {
	products []models.Product
}

func NewMemorySource(products []models.Product) *MemorySource {
	return &MemorySource{products: products}
}

func (s *MemorySource) Products(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemorySource) Close(_ context.Context) error {
	return nil
}

// DemoCatalog is the seed catalog for in-memory mode.
func DemoCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "قميص كتان أبيض", Price: 450, Category: "قمصان", Sizes: []string{"M", "L", "XL"}, Colors: []string{"أبيض", "بيج"}},
		{ID: 2, Name: "تيشيرت قطن أسود", Price: 250, Category: "تيشيرتات", Sizes: []string{"S", "M", "L", "XL"}, Colors: []string{"أسود", "أبيض"}},
		{ID: 3, Name: "بنطلون جينز أزرق", Price: 550, Category: "بناطيل", Sizes: []string{"30", "32", "34"}, Colors: []string{"أزرق"}},
		{ID: 4, Name: "بنطلون قماش كحلي", Price: 600, Category: "بناطيل", Sizes: []string{"30", "32", "34", "36"}, Colors: []string{"كحلي", "أسود"}},
		{ID: 5, Name: "جاكيت جلد أسود", Price: 1200, Category: "جواكت", Sizes: []string{"M", "L"}, Colors: []string{"أسود"}},
		{ID: 6, Name: "هودي أوفر سايز رمادي", Price: 500, Category: "هوديز", Sizes: []string{"L", "XL", "XXL"}, Colors: []string{"رمادي", "أسود"}},
		{ID: 7, Name: "فستان سواريه أسود", Price: 1500, Category: "فساتين", Sizes: []string{"S", "M", "L"}, Colors: []string{"أسود"}},
		{ID: 8, Name: "بلوزة شيفون وردي", Price: 400, Category: "بلوزات", Sizes: []string{"S", "M", "L"}, Colors: []string{"وردي", "أبيض"}},
		{ID: 9, Name: "جيبة ميدي بيج", Price: 380, Category: "جيب", Sizes: []string{"S", "M", "L"}, Colors: []string{"بيج"}},
		{ID: 10, Name: "شورت كارجو زيتوني", Price: 320, Category: "شورتات", Sizes: []string{"M", "L", "XL"}, Colors: []string{"زيتوني"}},
		{ID: 11, Name: "حزام جلد بني", Price: 180, Category: "اكسسوارات", Sizes: nil, Colors: []string{"بني"}},
		{ID: 12, Name: "ساعة كلاسيك فضي", Price: 900, Category: "اكسسوارات", Sizes: nil, Colors: []string{"فضي"}},
		{ID: 13, Name: "شنطة كروس سوداء", Price: 420, Category: "شنط", Sizes: nil, Colors: []string{"أسود"}},
	}
}
