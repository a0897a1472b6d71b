package main

import (
	"context"
	"log"
	"time"

	"sportrent/internal/database"
	"sportrent/internal/domain"
	"sportrent/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("sportrent.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM items")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	categories := repository.NewCategoryRepository(db)
	items := repository.NewItemRepository(db)
	reservations := repository.NewReservationRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@sportrent.pt",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}
	mustCreateUser(ctx, users, &admin)

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	clients := []domain.User{
		{Email: "joao@example.com", PasswordHash: string(clientHash), Role: domain.RoleClient, Name: "Joao Silva"},
		{Email: "maria@example.com", PasswordHash: string(clientHash), Role: domain.RoleClient, Name: "Maria Santos"},
	}
	for i := range clients {
		mustCreateUser(ctx, users, &clients[i])
	}

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")

	cats := []domain.Category{
		{Name: "Rackets", Description: "Tennis, padel and badminton rackets"},
		{Name: "Balls", Description: "Balls for every court sport"},
		{Name: "Protective Gear", Description: "Helmets, pads and guards"},
	}
	for i := range cats {
		if err := categories.Create(ctx, &cats[i]); err != nil {
			log.Fatal("category seed failed:", err)
		}
	}

	// ================== ITEMS ==================
	log.Println("Creating items...")

	seedItems := []domain.Item{
		{Name: "Tennis Racket Pro", Brand: "Wilson", PricePerHour: decimal.NewFromFloat(5.00), CategoryID: &cats[0].ID},
		{Name: "Padel Racket", Brand: "Babolat", PricePerHour: decimal.NewFromFloat(4.50), CategoryID: &cats[0].ID},
		{Name: "Badminton Racket", Brand: "Yonex", PricePerHour: decimal.NewFromFloat(3.00), CategoryID: &cats[0].ID},
		{Name: "Tennis Ball Set", Brand: "Dunlop", PricePerHour: decimal.NewFromFloat(1.00), CategoryID: &cats[1].ID},
		{Name: "Football", Brand: "Adidas", PricePerHour: decimal.NewFromFloat(2.00), CategoryID: &cats[1].ID},
		{Name: "Bike Helmet", Brand: "Giro", PricePerHour: decimal.NewFromFloat(1.50), CategoryID: &cats[2].ID},
		{Name: "Knee Pads", Brand: "Decathlon", PricePerHour: decimal.NewFromFloat(1.00), CategoryID: &cats[2].ID},
	}
	for i := range seedItems {
		seedItems[i].Available = true
		if err := items.Create(ctx, &seedItems[i]); err != nil {
			log.Fatal("item seed failed:", err)
		}
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating a sample reservation...")

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	sample := domain.Reservation{
		ClientID:  clients[0].ID,
		StartDate: start,
		EndDate:   start.Add(2 * time.Hour),
		ItemIDs:   []int64{},
		State:     domain.ReservationPending,
	}
	if err := reservations.Create(ctx, &sample); err != nil {
		log.Fatal("reservation seed failed:", err)
	}

	log.Println("Seed complete.")
	log.Printf("admin login: admin@sportrent.pt / admin123")
	log.Printf("client login: joao@example.com / client123")
}

func mustCreateUser(ctx context.Context, users *repository.UserRepository, u *domain.User) {
	if err := users.Create(ctx, u); err != nil {
		log.Fatal("user seed failed:", err)
	}
}
