package migration

import (
	"PantryTrack-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		log.Fatalf("Error migrating inventory item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.EatingOutLog{}); err != nil {
		log.Fatalf("Error migrating eating out log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receipt{}); err != nil {
		log.Fatalf("Error migrating receipt database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptItem{}); err != nil {
		log.Fatalf("Error migrating receipt item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingList{}); err != nil {
		log.Fatalf("Error migrating shopping list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListItem{}); err != nil {
		log.Fatalf("Error migrating shopping list item database: %v", err)
		return err
	}

	// One active list per user, enforced at the store so concurrent
	// get-or-create requests cannot both insert.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_shopping_lists_active_user ON shopping_lists (user_id) WHERE is_active;")

	fmt.Println("Database migration complete")
	return nil
}
