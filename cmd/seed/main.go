// Seeder: wipes the storefront tables and inserts the admin account plus the
// default categories. Child tables go first so the deletes never trip a
// foreign key.
package main

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ibrahimvain/pesan-aja/config"
	"github.com/Ibrahimvain/pesan-aja/models"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}
	db, err := config.Connect(cfg.DB)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}

	log.Info("wiping storefront tables")
	for _, stmt := range []string{
		"DELETE FROM order_items",
		"DELETE FROM orders",
		"DELETE FROM products",
		"DELETE FROM categories",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatal("wipe", zap.String("stmt", stmt), zap.Error(err))
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash admin password", zap.Error(err))
	}
	admin := models.User{Username: "admin", PasswordHash: string(hash), Role: models.RoleAdmin}
	if err := db.Where(models.User{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
		log.Fatal("seed admin", zap.Error(err))
	}

	categories := []models.Category{
		{Name: "Coffee"},
		{Name: "Non-Coffee"},
		{Name: "Makanan"},
		{Name: "Cemilan"},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Fatal("seed categories", zap.Error(err))
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	log.Info("seeding done", zap.Strings("categories", names))
}
