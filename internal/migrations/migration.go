package migrations

import (
	"log"

	"vendas_admin/internal/models"
	"vendas_admin/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RunMigrations recreates the schema from scratch and seeds the demo
// catalog. Destructive: existing data is dropped.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.Client{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Client{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	return seedCatalog(db)
}

func seedCatalog(db *gorm.DB) error {
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)

	log.Println("Seeding clientes...")
	clients := []models.Client{
		{
			ID:      uuid.NewString(),
			Name:    "Maria da Silva",
			Kind:    string(models.ClientIndividual),
			CPF:     "12345678901",
			Status:  string(models.ClientActive),
			Address: "Rua das Flores, 123 - São Paulo",
		},
		{
			ID:      uuid.NewString(),
			Name:    "Comercial Andrade Ltda",
			Kind:    string(models.ClientCompany),
			CNPJ:    "12345678000199",
			Status:  string(models.ClientActive),
			Address: "Av. Brasil, 950 - Rio de Janeiro",
		},
	}
	for i := range clients {
		if err := clientRepo.Create(&clients[i]); err != nil {
			return err
		}
	}

	log.Println("Seeding produtos...")
	products := []models.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Café torrado",
			Description: "Pacote de café torrado e moído 500g",
			Unit:        string(models.UnitKilo),
			Price:       24.90,
			Status:      string(models.ProductActive),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Óleo de soja",
			Description: "Garrafa de óleo de soja 900ml",
			Unit:        string(models.UnitLiter),
			Price:       8.50,
			Status:      string(models.ProductActive),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Caixa organizadora",
			Description: "Caixa plástica com tampa 20L",
			Unit:        string(models.UnitPiece),
			Price:       32.00,
			Status:      string(models.ProductActive),
		},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			return err
		}
	}

	return nil
}
