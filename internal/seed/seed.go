package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"ecofinds/internal/domain"
	"ecofinds/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// demoPassword is the password for both demo accounts.
const demoPassword = "password123"

// Users returns the demo accounts used when the backing store is empty.
func Users() []domain.User {
	return []domain.User{
		{ID: "1", Email: "test@example.com", Username: "testuser", PasswordHash: hash(demoPassword)},
		{ID: "2", Email: "seller@example.com", Username: "selleruser", PasswordHash: hash(demoPassword)},
	}
}

// Products returns the demo catalog used when the backing store is empty.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Title:       "Vintage Leather Jacket",
			Description: "A stylish vintage leather jacket from the 80s. Well-preserved and comfortable. Perfect for a classic look.",
			Price:       75.00,
			Category:    domain.CategoryFashion,
			ImageURL:    "https://picsum.photos/seed/product1/400/300",
			SellerID:    "2",
		},
		{
			ID:          "2",
			Title:       "Old Classic Novels Set",
			Description: "A collection of 5 classic novels in hardcover. Includes works by famous authors. Great condition.",
			Price:       40.00,
			Category:    domain.CategoryBooks,
			ImageURL:    "https://picsum.photos/seed/product2/400/300",
			SellerID:    "1",
		},
		{
			ID:          "3",
			Title:       "Retro Bluetooth Speaker",
			Description: "A speaker with a cool retro design and modern bluetooth technology. Excellent sound quality.",
			Price:       55.00,
			Category:    domain.CategoryElectronics,
			ImageURL:    "https://picsum.photos/seed/product3/400/300",
			SellerID:    "2",
		},
		{
			ID:          "4",
			Title:       "Handmade Ceramic Pot",
			Description: "A beautiful handmade pot for your plants. Unique design that will brighten any room.",
			Price:       25.00,
			Category:    domain.CategoryHome,
			ImageURL:    "https://picsum.photos/seed/product4/400/300",
			SellerID:    "1",
		},
		{
			ID:          "5",
			Title:       "Professional Tennis Racket",
			Description: "Lightweight and powerful tennis racket for advanced players. Used but in great shape.",
			Price:       120.00,
			Category:    domain.CategorySports,
			ImageURL:    "https://picsum.photos/seed/product5/400/300",
			SellerID:    "2",
		},
	}
}

// Apply writes seed users and products into the backing. It is idempotent:
// keys that already hold data are left untouched.
func Apply(ctx context.Context, backing storage.Backing) error {
	if err := writeIfAbsent(ctx, backing, storage.KeyUsers, Users()); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := writeIfAbsent(ctx, backing, storage.KeyProducts, Products()); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func writeIfAbsent(ctx context.Context, backing storage.Backing, key string, value interface{}) error {
	if _, ok, err := backing.Get(ctx, key); err != nil {
		return err
	} else if ok {
		return nil
	}
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return backing.Set(ctx, key, blob)
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on absurd cost/length inputs; the demo password is fixed.
		panic(err)
	}
	return string(h)
}
