package configs

import (
	"log"

	"github.com/alekz7/tastyrestaurant/entity"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin User",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Seed เมนูและบริษัทเริ่มต้น
func SeedLookups() error {
	db := DB()

	menuItems := []entity.MenuItem{
		{Name: "Grilled Salmon", Description: "Fresh Atlantic salmon, grilled to perfection and served with seasonal vegetables.", Price: 1899, Category: "Main Course", Image: "https://images.pexels.com/photos/1583884/pexels-photo-1583884.jpeg", Active: true},
		{Name: "Pasta Carbonara", Description: "Creamy pasta with pancetta, eggs, Parmesan cheese, and freshly ground black pepper.", Price: 1599, Category: "Main Course", Image: "https://images.pexels.com/photos/2664216/pexels-photo-2664216.jpeg", Active: true},
		{Name: "Caesar Salad", Description: "Romaine lettuce, croutons, Parmesan cheese, and our homemade Caesar dressing.", Price: 999, Category: "Starters", Image: "https://images.pexels.com/photos/1211887/pexels-photo-1211887.jpeg", Active: true},
		{Name: "Chocolate Cake", Description: "Rich and moist chocolate cake with a decadent ganache frosting.", Price: 899, Category: "Desserts", Image: "https://images.pexels.com/photos/2233729/pexels-photo-2233729.jpeg", Active: true},
		{Name: "Fish and Chips", Description: "Beer-battered cod fillets served with crispy fries and tartar sauce.", Price: 1699, Category: "Main Course", Image: "https://images.pexels.com/photos/4409273/pexels-photo-4409273.jpeg", Active: true},
		{Name: "Garlic Bread", Description: "Freshly baked bread topped with garlic butter and herbs.", Price: 599, Category: "Starters", Image: "https://images.pexels.com/photos/1082343/pexels-photo-1082343.jpeg", Active: true},
		{Name: "Tiramisu", Description: "Classic Italian dessert made with coffee-soaked ladyfingers and mascarpone cream.", Price: 799, Category: "Desserts", Image: "https://images.pexels.com/photos/6133303/pexels-photo-6133303.jpeg", Active: true},
		{Name: "Veggie Burger", Description: "Plant-based patty with lettuce, tomato, and special sauce on a brioche bun.", Price: 1499, Category: "Main Course", Image: "https://images.pexels.com/photos/1633578/pexels-photo-1633578.jpeg", Active: true},
	}
	for i := range menuItems {
		db.FirstOrCreate(&menuItems[i], entity.MenuItem{Name: menuItems[i].Name})
	}

	companies := []entity.Company{
		{
			Name:        "Acme Corp",
			ContactName: "John Doe", ContactEmail: "john@acmecorp.com", ContactPhone: "555-123-4567",
			Street: "123 Business St", City: "Cityville", State: "ST", Zip: "12345",
		},
		{
			Name:        "TechStart Inc",
			ContactName: "Jane Smith", ContactEmail: "jane@techstart.com", ContactPhone: "555-987-6543",
			Street: "456 Innovation Ave", City: "Techtown", State: "ST", Zip: "54321",
		},
	}
	for i := range companies {
		db.FirstOrCreate(&companies[i], entity.Company{Name: companies[i].Name})
	}

	log.Println("✅ Seed data loaded")
	return nil
}
