// Package catalog 提供店铺的静态商品目录
package catalog

import "github.com/ab-jewelery/storefront/backend/internal/domain"

const placeholderImage = "https://via.placeholder.com/300x200"

func Products() *domain.Catalog {
	return &domain.Catalog{
		Women: []domain.Product{
			{Name: "Diamond Necklace", Price: 250, Image: placeholderImage},
			{Name: "Gold Earrings", Price: 120, Image: placeholderImage},
			{Name: "Silver Bracelet", Price: 90, Image: placeholderImage},
		},
		Men: []domain.Product{
			{Name: "Platinum Ring", Price: 300, Image: placeholderImage},
			{Name: "Luxury Watch", Price: 450, Image: placeholderImage},
			{Name: "Silver Cufflinks", Price: 70, Image: placeholderImage},
		},
	}
}
