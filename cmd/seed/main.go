package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"blackpot/internal/auth"
	"blackpot/internal/config"
	"blackpot/internal/db"
	"blackpot/internal/model"
	"blackpot/internal/repository"
)

// defaultSeedPassword is assigned to every seeded staff account unless
// SEED_PASSWORD is set. Development only.
const defaultSeedPassword = "blackpot123"

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("Configuration invalid: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Clean existing data (for development only!)
	log.Println("Cleaning database...")
	if err := clean(gormDB); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	ctx := context.Background()
	s := &seeder{db: gormDB, userRepo: repository.NewUserRepository(gormDB)}

	if err := s.run(ctx); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Println("Seeding completed successfully!")
	log.Println("Summary:")
	log.Printf("  Tenant: %s", s.tenant.Name)
	log.Printf("  Location: %s", s.location.Name)
	log.Printf("  Users: %d", len(s.users))
	log.Printf("  Tables: %d", len(s.tables))
	log.Printf("  Menu Items: %d", len(s.menuItems))
	log.Printf("  Inventory Items: %d", len(s.inventoryItems))
	log.Printf("  Suppliers: %d", len(s.suppliers))
	log.Printf("  Business Days: %d", len(s.businessDays))
	log.Printf("  Reservations: %d", s.reservationCount)
	log.Printf("  Orders: %d", s.orderCount)
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Tenant{},
		&model.Location{},
		&model.User{},
		&model.Table{},
		&model.KitchenStation{},
		&model.Menu{},
		&model.MenuSection{},
		&model.MenuItem{},
		&model.Reservation{},
		&model.Order{},
		&model.OrderCourse{},
		&model.OrderItem{},
		&model.Payment{},
		&model.Tip{},
		&model.Supplier{},
		&model.InventoryItem{},
		&model.WineDetail{},
		&model.StockMovement{},
		&model.Shift{},
		&model.FinancialSetting{},
		&model.BusinessDay{},
		&model.EndOfDayClose{},
	)
}

// clean wipes all seeded tables, children first.
func clean(gormDB *gorm.DB) error {
	tables := []interface{}{
		&model.EndOfDayClose{},
		&model.BusinessDay{},
		&model.Tip{},
		&model.Payment{},
		&model.OrderItem{},
		&model.OrderCourse{},
		&model.Order{},
		&model.Reservation{},
		&model.Shift{},
		&model.WineDetail{},
		&model.StockMovement{},
		&model.InventoryItem{},
		&model.Supplier{},
		&model.MenuItem{},
		&model.MenuSection{},
		&model.Menu{},
		&model.KitchenStation{},
		&model.Table{},
		&model.FinancialSetting{},
		&model.User{},
		&model.Location{},
		&model.Tenant{},
	}
	for _, table := range tables {
		if err := gormDB.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

type seeder struct {
	db       *gorm.DB
	userRepo repository.UserRepository

	tenant           model.Tenant
	location         model.Location
	stations         []model.KitchenStation
	users            []model.User
	servers          []model.User
	tables           []model.Table
	menuItems        []model.MenuItem
	suppliers        []model.Supplier
	inventoryItems   []model.InventoryItem
	businessDays     []model.BusinessDay
	reservationCount int
	orderCount       int
}

func (s *seeder) run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{"tenant", s.seedTenant},
		{"location", s.seedLocation},
		{"kitchen stations", s.seedKitchenStations},
		{"users", s.seedUsers},
		{"tables", s.seedTables},
		{"menu", s.seedMenu},
		{"financial settings", s.seedFinancialSettings},
		{"reservations", s.seedReservations},
		{"business days", s.seedBusinessDays},
		{"orders", s.seedOrders},
		{"suppliers", s.seedSuppliers},
		{"inventory", s.seedInventory},
		{"stock movements", s.seedStockMovements},
		{"shifts", s.seedShifts},
		{"end of day close", s.seedEndOfDayClose},
	}
	for _, step := range steps {
		log.Printf("Creating %s...", step.name)
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	return nil
}

func (s *seeder) seedTenant(ctx context.Context) error {
	s.tenant = model.Tenant{Name: "Michelin Restaurant Group", IsActive: true}
	return s.db.WithContext(ctx).Create(&s.tenant).Error
}

func (s *seeder) seedLocation(ctx context.Context) error {
	s.location = model.Location{
		TenantID: s.tenant.ID,
		Name:     "Downtown Fine Dining",
		Address:  "123 Main Street, San Francisco, CA 94102",
		IsActive: true,
	}
	return s.db.WithContext(ctx).Create(&s.location).Error
}

func (s *seeder) seedKitchenStations(ctx context.Context) error {
	names := []string{"Grill Station", "Pastry & Dessert", "Garde Manger (Cold)", "Sauce & Hot Station"}
	for _, name := range names {
		station := model.KitchenStation{
			TenantID:   s.tenant.ID,
			LocationID: s.location.ID,
			Name:       name,
		}
		if err := s.db.WithContext(ctx).Create(&station).Error; err != nil {
			return err
		}
		s.stations = append(s.stations, station)
	}
	return nil
}

func (s *seeder) seedUsers(ctx context.Context) error {
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = defaultSeedPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	staff := []struct {
		email string
		name  string
		role  model.UserRole
	}{
		{"owner@blackpot.com", "Owner", model.RoleOwner},
		{"manager1@blackpot.com", "Manager 1", model.RoleManager},
		{"manager2@blackpot.com", "Manager 2", model.RoleManager},
		{"server1@blackpot.com", "Alex Johnson (Server)", model.RoleServer},
		{"server2@blackpot.com", "Jordan Williams (Server)", model.RoleServer},
		{"server3@blackpot.com", "Casey Lee (Server)", model.RoleServer},
		{"server4@blackpot.com", "Morgan Davis (Server)", model.RoleServer},
		{"server5@blackpot.com", "Riley Martinez (Server)", model.RoleServer},
		{"host@blackpot.com", "Sam Taylor (Host)", model.RoleHost},
		{"chef@blackpot.com", "Executive Chef", model.RoleChef},
		{"sous1@blackpot.com", "Sous Chef 1", model.RoleChef},
		{"sous2@blackpot.com", "Sous Chef 2", model.RoleChef},
		{"sommelier@blackpot.com", "Wine Sommelier", model.RoleSommelier},
	}

	locationID := s.location.ID
	for _, member := range staff {
		user := model.User{
			TenantID:     s.tenant.ID,
			LocationID:   &locationID,
			Email:        member.email,
			Name:         member.name,
			PasswordHash: hash,
			Role:         member.role,
			IsActive:     true,
		}
		if err := s.userRepo.Create(ctx, &user); err != nil {
			return err
		}
		s.users = append(s.users, user)
		if user.Role == model.RoleServer {
			s.servers = append(s.servers, user)
		}
	}
	return nil
}

func (s *seeder) seedTables(ctx context.Context) error {
	configs := []struct {
		name                string
		capacity            int
		x, y, width, height float64
	}{
		{"Table 1", 2, 1, 1, 0.8, 0.8},
		{"Table 2", 2, 2.5, 1, 0.8, 0.8},
		{"Table 3", 4, 4, 1, 1.2, 1.2},
		{"Table 4", 4, 5.5, 1, 1.2, 1.2},
		{"Table 5", 4, 1, 2.5, 1.2, 1.2},
		{"Table 6", 6, 2.5, 2.5, 1.5, 1.5},
		{"Table 7", 6, 4.5, 2.5, 1.5, 1.5},
		{"Table 8", 4, 1, 4.5, 1.2, 1.2},
		{"Table 9", 4, 2.5, 4.5, 1.2, 1.2},
		{"Table 10", 8, 4.5, 4.5, 2, 2},
		{"Bar Seat 1", 1, 0.2, 0.2, 0.4, 0.4},
		{"Bar Seat 2", 1, 0.7, 0.2, 0.4, 0.4},
		{"Bar Seat 3", 1, 1.2, 0.2, 0.4, 0.4},
		{"Patio Table 1", 6, 6.5, 3, 1.5, 1.5},
		{"Patio Table 2", 6, 8, 3, 1.5, 1.5},
	}
	for _, cfg := range configs {
		table := model.Table{
			TenantID:   s.tenant.ID,
			LocationID: s.location.ID,
			Name:       cfg.name,
			Capacity:   cfg.capacity,
			Status:     model.TableStatusAvailable,
			X:          cfg.x,
			Y:          cfg.y,
			Width:      cfg.width,
			Height:     cfg.height,
		}
		if err := s.db.WithContext(ctx).Create(&table).Error; err != nil {
			return err
		}
		s.tables = append(s.tables, table)
	}
	return nil
}

func (s *seeder) seedMenu(ctx context.Context) error {
	menu := model.Menu{
		TenantID: s.tenant.ID,
		Name:     "Seasonal Tasting Menu",
		Version:  1,
		IsActive: true,
	}
	if err := s.db.WithContext(ctx).Create(&menu).Error; err != nil {
		return err
	}

	sectionNames := []string{
		"Amuse Bouche", "Appetizers", "Soups & Salads", "Main Courses",
		"Cheese Course", "Desserts", "Petit Fours & Digestif",
	}
	sections := make(map[string]model.MenuSection, len(sectionNames))
	for i, name := range sectionNames {
		section := model.MenuSection{
			TenantID: s.tenant.ID,
			MenuID:   menu.ID,
			Name:     name,
			Position: i + 1,
		}
		if err := s.db.WithContext(ctx).Create(&section).Error; err != nil {
			return err
		}
		sections[name] = section
	}

	items := []struct {
		section     string
		name        string
		description string
		price       string
	}{
		{"Amuse Bouche", "Foie Gras Mousse on Brioche", "Smooth foie gras mousse with crispy brioche toast", "0"},
		{"Appetizers", "Oysters 3 Ways", "Fresh oysters prepared classically, mignonette, and tempura", "24.00"},
		{"Appetizers", "Seared Diver Scallops", "Pan-seared with brown butter, capers, and lemon beurre blanc", "28.00"},
		{"Appetizers", "Cured Hamachi", "Thinly sliced with yuzu kosho, micro cilantro", "22.00"},
		{"Soups & Salads", "Lobster Bisque", "Creamy lobster bisque with cognac foam", "18.00"},
		{"Soups & Salads", "Caesar Salad", "Romaine, house-made croutons, parmesan, Caesar dressing", "16.00"},
		{"Soups & Salads", "Heirloom Tomato Salad", "Mixed heirloom tomatoes, burrata, basil oil, aged balsamic", "19.00"},
		{"Main Courses", "Pan-Seared Ribeye", "14oz dry-aged ribeye, charred onion, bone marrow jus", "54.00"},
		{"Main Courses", "Dover Sole Meuniere", "Whole dover sole, brown butter, capers, lemon", "52.00"},
		{"Main Courses", "Duck Breast", "Pekin duck breast, cherry gastrique, salsify", "48.00"},
		{"Main Courses", "Rack of Lamb", "Herb-crusted lamb, jus, seasonal vegetables", "52.00"},
		{"Cheese Course", "Cheese Selection", "Five artisanal cheeses with house-made crackers", "28.00"},
		{"Desserts", "Valrhona Chocolate Souffle", "Dark chocolate souffle with warm chocolate sauce", "16.00"},
		{"Desserts", "Lemon Tart", "Crispy pastry, lemon curd, Italian meringue", "14.00"},
		{"Desserts", "Creme Brulee", "Classic vanilla bean creme brulee with caramelized sugar", "12.00"},
		{"Petit Fours & Digestif", "Petit Fours Assortment", "Selection of macarons, chocolates, and miniature pastries", "0"},
	}
	for _, item := range items {
		price, err := decimal.NewFromString(item.price)
		if err != nil {
			return fmt.Errorf("invalid price for %s: %w", item.name, err)
		}
		menuItem := model.MenuItem{
			TenantID:    s.tenant.ID,
			SectionID:   sections[item.section].ID,
			Name:        item.name,
			Description: item.description,
			Price:       price,
			IsAvailable: true,
		}
		if err := s.db.WithContext(ctx).Create(&menuItem).Error; err != nil {
			return err
		}
		s.menuItems = append(s.menuItems, menuItem)
	}
	return nil
}

func (s *seeder) seedFinancialSettings(ctx context.Context) error {
	setting := model.FinancialSetting{
		TenantID:          s.tenant.ID,
		TaxRate:           decimal.RequireFromString("0.0825"),
		ServiceChargeRate: decimal.RequireFromString("0.18"),
		Currency:          "USD",
		RoundingStrategy:  "ROUND_HALF_UP",
	}
	return s.db.WithContext(ctx).Create(&setting).Error
}

func (s *seeder) seedReservations(ctx context.Context) error {
	now := time.Now()
	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		day := now.AddDate(0, 0, dayOffset)
		for i := 0; i < 3; i++ {
			reservedAt := time.Date(day.Year(), day.Month(), day.Day(), 19+i, 0, 0, 0, day.Location())
			reservation := model.Reservation{
				TenantID:   s.tenant.ID,
				TableID:    s.tables[rand.Intn(8)].ID, // random 2-4 person table
				GuestName:  fmt.Sprintf("Guest %d-%d", dayOffset, i),
				GuestEmail: fmt.Sprintf("guest%d%d@example.com", dayOffset, i),
				GuestPhone: "+1-555-0100",
				GuestCount: 2 + rand.Intn(3),
				ReservedAt: reservedAt,
				Status:     model.ReservationStatusConfirmed,
			}
			if err := s.db.WithContext(ctx).Create(&reservation).Error; err != nil {
				return err
			}
			s.reservationCount++
		}
	}
	return nil
}

func (s *seeder) seedBusinessDays(ctx context.Context) error {
	now := time.Now()
	for i := 30; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		bd := model.BusinessDay{
			TenantID: s.tenant.ID,
			Date:     time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
			Status:   "CLOSED",
		}
		if err := s.db.WithContext(ctx).Create(&bd).Error; err != nil {
			return err
		}
		s.businessDays = append(s.businessDays, bd)
	}
	return nil
}

func (s *seeder) seedOrders(ctx context.Context) error {
	courseTypes := []model.CourseType{model.CourseAppetizer, model.CourseMain, model.CourseDessert}
	for orderIdx := 0; orderIdx < 50; orderIdx++ {
		day := s.businessDays[rand.Intn(30)]
		table := s.tables[rand.Intn(len(s.tables))]
		server := s.servers[rand.Intn(len(s.servers))]

		openedAt := day.Date.Add(time.Duration(rand.Float64() * 12 * float64(time.Hour)))
		closedAt := openedAt.Add(time.Duration((2 + rand.Float64()*2) * float64(time.Hour)))
		guestCount := 2
		if table.Capacity > 2 {
			guestCount = 2 + rand.Intn(4)
		}

		order := model.Order{
			TenantID:   s.tenant.ID,
			TableID:    table.ID,
			ServerID:   server.ID,
			Status:     model.OrderStatusCompleted,
			GuestCount: guestCount,
			OpenedAt:   openedAt,
			ClosedAt:   &closedAt,
		}
		if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
			return err
		}
		s.orderCount++

		for courseIdx, courseType := range courseTypes {
			firedAt := openedAt.Add(time.Duration(courseIdx*20) * time.Minute)
			completedAt := firedAt.Add(15 * time.Minute)
			course := model.OrderCourse{
				TenantID:         s.tenant.ID,
				OrderID:          order.ID,
				CourseType:       courseType,
				KitchenStationID: s.stations[rand.Intn(len(s.stations))].ID,
				FiredAt:          &firedAt,
				CompletedAt:      &completedAt,
			}
			if err := s.db.WithContext(ctx).Create(&course).Error; err != nil {
				return err
			}

			itemCount := 1 + rand.Intn(3)
			for itemIdx := 0; itemIdx < itemCount; itemIdx++ {
				preparedAt := firedAt.Add(10 * time.Minute)
				servedAt := completedAt.Add(2 * time.Minute)
				notes := ""
				if rand.Float64() > 0.7 {
					notes = "No nuts, please"
				}
				item := model.OrderItem{
					TenantID:      s.tenant.ID,
					OrderCourseID: course.ID,
					MenuItemID:    s.menuItems[rand.Intn(len(s.menuItems))].ID,
					Quantity:      1 + rand.Intn(2),
					SpecialNotes:  notes,
					PreparedAt:    &preparedAt,
					ServedAt:      &servedAt,
				}
				if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
					return err
				}
			}
		}

		subtotal := 150 + rand.Float64()*250
		methods := []model.PaymentMethod{model.PaymentMethodCard, model.PaymentMethodCash}
		payment := model.Payment{
			TenantID: s.tenant.ID,
			OrderID:  order.ID,
			Amount:   decimal.NewFromFloat(subtotal).Round(2),
			Method:   methods[rand.Intn(2)],
			Status:   model.PaymentStatusCompleted,
		}
		if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
			return err
		}

		// Tip on most card payments
		if payment.Method == model.PaymentMethodCard && rand.Float64() > 0.2 {
			tip := model.Tip{
				TenantID: s.tenant.ID,
				OrderID:  order.ID,
				ServerID: server.ID,
				Amount:   decimal.NewFromFloat(subtotal * (0.15 + rand.Float64()*0.1)).Round(2),
				Method:   model.TipMethodAddedToBill,
			}
			if err := s.db.WithContext(ctx).Create(&tip).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) seedSuppliers(ctx context.Context) error {
	vendors := []struct {
		name    string
		contact string
	}{
		{"Premium Wine Importers", "+1-555-WINE-1"},
		{"Local Organic Farms", "+1-555-FARM-2"},
		{"Seafood Distributors International", "+1-555-FISH-3"},
		{"Specialty Meat Company", "+1-555-MEAT-4"},
	}
	for _, vendor := range vendors {
		supplier := model.Supplier{
			TenantID: s.tenant.ID,
			Name:     vendor.name,
			Contact:  vendor.contact,
		}
		if err := s.db.WithContext(ctx).Create(&supplier).Error; err != nil {
			return err
		}
		s.suppliers = append(s.suppliers, supplier)
	}
	return nil
}

type inventorySpec struct {
	name     string
	category string
	unit     string
	supplier int
}

func (s *seeder) seedInventory(ctx context.Context) error {
	wines := []inventorySpec{
		{"Chateau Margaux 2015", "wine", "bottle", 0},
		{"Barolo DOCG 2016", "wine", "bottle", 0},
		{"Puligny-Montrachet 2018", "wine", "bottle", 0},
		{"Brunello di Montalcino 2014", "wine", "bottle", 0},
		{"Chateauneuf-du-Pape 2017", "wine", "bottle", 0},
		{"Kosta Browne Pinot Noir 2019", "wine", "bottle", 0},
		{"Silver Oak Cabernet 2017", "wine", "bottle", 0},
		{"Opus One 2017", "wine", "bottle", 0},
		{"Screaming Eagle Cabernet 2018", "wine", "bottle", 0},
		{"Cloudy Bay Sauvignon Blanc", "wine", "bottle", 0},
		{"Champagne Cristal 2012", "wine", "bottle", 0},
		{"Dom Perignon 2012", "wine", "bottle", 0},
		{"Krug Clos d'Ambonnay", "wine", "bottle", 0},
		{"Billecart-Salmon Rose NV", "wine", "bottle", 0},
		{"Grappa di Barolo", "wine", "bottle", 0},
		{"Cognac XO Reserve", "wine", "bottle", 0},
		{"Macallan 18yr Single Malt", "wine", "bottle", 0},
		{"Limoncello di Amalfi", "wine", "bottle", 0},
		{"Pernod Absinthe", "wine", "bottle", 0},
		{"Patron Silver Tequila", "wine", "bottle", 0},
		{"Belvedere Vodka", "beverage", "bottle", 0},
		{"Tanqueray Gin", "beverage", "bottle", 0},
		{"Bacardi Rum", "beverage", "bottle", 0},
		{"Hendricks Gin", "beverage", "bottle", 0},
		{"Grey Goose Vodka", "beverage", "bottle", 0},
		{"Bombay Sapphire", "beverage", "bottle", 0},
		{"Ketel One Vodka", "beverage", "bottle", 0},
		{"Johnnie Walker Blue", "wine", "bottle", 0},
		{"Glenlivet 15yr", "wine", "bottle", 0},
		{"Yamazaki 12yr", "wine", "bottle", 0},
	}
	produce := []inventorySpec{
		{"Fresh Basil", "food", "bunch", 1},
		{"Heirloom Tomatoes", "food", "lb", 1},
		{"Baby Arugula", "food", "oz", 1},
		{"Microgreens Mix", "food", "oz", 1},
		{"French Shallots", "food", "lb", 1},
		{"Garlic Cloves", "food", "lb", 1},
		{"Chanterelle Mushrooms", "food", "oz", 1},
		{"Porcini Mushrooms", "food", "oz", 1},
		{"Truffle Oil", "food", "bottle", 1},
		{"White Truffles", "food", "oz", 1},
		{"Saffron Threads", "food", "gram", 1},
		{"Vanilla Beans", "food", "piece", 1},
		{"Fresh Caviar", "food", "oz", 2},
		{"Sea Urchin", "food", "oz", 2},
		{"Uni (Sea Urchin)", "food", "piece", 2},
		{"Beluga Caviar", "food", "oz", 2},
		{"White Miso", "food", "lb", 1},
		{"Dashi Stock", "food", "liter", 1},
		{"Yuzu Juice", "food", "bottle", 1},
		{"Balsamic Vinegar 25yr", "food", "bottle", 1},
		{"Olive Oil Extra Virgin", "food", "liter", 1},
		{"Butter (Cultured)", "food", "lb", 1},
		{"Heavy Cream", "food", "liter", 1},
		{"Creme Fraiche", "food", "lb", 1},
		{"Foie Gras Terrine", "food", "lb", 1},
		{"Pate de Foie Gras", "food", "oz", 1},
		{"Black Garlic", "food", "lb", 1},
		{"Kombu Seaweed", "food", "oz", 1},
		{"Nori Seaweed", "food", "sheet", 1},
		{"Miso Paste Red", "food", "lb", 1},
	}
	seafood := []inventorySpec{
		{"Fresh Lobster", "food", "lb", 2},
		{"Dungeness Crab", "food", "lb", 2},
		{"Diver Scallops", "food", "lb", 2},
		{"Sashimi Grade Tuna", "food", "lb", 2},
		{"Salmon Fillets", "food", "lb", 2},
		{"Dover Sole", "food", "lb", 2},
		{"Halibut Fillets", "food", "lb", 2},
		{"Sea Bass", "food", "lb", 2},
		{"Hamachi (Yellowtail)", "food", "lb", 2},
		{"Squid (Fresh)", "food", "lb", 2},
		{"Octopus", "food", "lb", 2},
		{"Fresh Oysters", "food", "dozen", 2},
		{"Manila Clams", "food", "lb", 2},
		{"Littleneck Clams", "food", "dozen", 2},
		{"Mussels (Fresh)", "food", "lb", 2},
		{"Spot Prawns", "food", "lb", 2},
		{"Shrimp (Large)", "food", "lb", 2},
		{"Fish Stock", "food", "liter", 2},
		{"Lobster Stock", "food", "liter", 2},
		{"Shellfish Bisque Base", "food", "liter", 2},
	}
	meats := []inventorySpec{
		{"Wagyu Ribeye", "food", "lb", 3},
		{"Prime Ribeye", "food", "lb", 3},
		{"Filet Mignon", "food", "lb", 3},
		{"NY Strip Steak", "food", "lb", 3},
		{"Porterhouse Steak", "food", "lb", 3},
		{"Lamb Chops", "food", "lb", 3},
		{"Rack of Lamb", "food", "lb", 3},
		{"Duck Breast", "food", "lb", 3},
		{"Whole Duck", "food", "piece", 3},
		{"Foie Gras Lobe", "food", "lb", 3},
		{"Veal Loin", "food", "lb", 3},
		{"Veal Sweetbreads", "food", "lb", 3},
		{"Beef Tenderloin", "food", "lb", 3},
		{"Beef Cheeks", "food", "lb", 3},
		{"Beef Marrow Bones", "food", "lb", 3},
		{"Short Ribs", "food", "lb", 3},
		{"Chicken Breast (Organic)", "food", "lb", 3},
		{"Whole Chicken", "food", "piece", 3},
		{"Beef Stock", "food", "liter", 3},
		{"Veal Stock", "food", "liter", 3},
	}

	all := make([]inventorySpec, 0, len(wines)+len(produce)+len(seafood)+len(meats))
	all = append(all, wines...)
	all = append(all, produce...)
	all = append(all, seafood...)
	all = append(all, meats...)

	for i, spec := range all {
		item := model.InventoryItem{
			TenantID:     s.tenant.ID,
			SupplierID:   s.suppliers[spec.supplier].ID,
			Name:         spec.name,
			Category:     spec.category,
			Unit:         spec.unit,
			CurrentStock: decimal.NewFromFloat(10 + rand.Float64()*100).Round(2),
			MinStock:     decimal.NewFromInt(5),
			UnitCost:     decimal.NewFromFloat(5 + rand.Float64()*500).Round(2),
		}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return err
		}
		s.inventoryItems = append(s.inventoryItems, item)

		// Cellar metadata for the fine wines
		if spec.category == "wine" && i < 15 {
			detail := model.WineDetail{
				InventoryItemID: item.ID,
				Vintage:         fmt.Sprintf("%d", 2010+rand.Intn(15)),
				Region:          "Bordeaux, France",
				Varietal:        "Cabernet Sauvignon",
				BinLocation:     fmt.Sprintf("Bin-%d", 1000+i),
				TastingNotes:    "Complex, elegant finish",
				PairingNotes:    "Pairs well with lamb, beef, aged cheese",
			}
			if err := s.db.WithContext(ctx).Create(&detail).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) seedStockMovements(ctx context.Context) error {
	types := []string{"in", "out", "adjustment"}
	for i := 0; i < 30; i++ {
		movement := model.StockMovement{
			TenantID:        s.tenant.ID,
			InventoryItemID: s.inventoryItems[rand.Intn(len(s.inventoryItems))].ID,
			Type:            types[rand.Intn(len(types))],
			Quantity:        decimal.NewFromInt(int64(1 + rand.Intn(50))),
			Reason:          "Delivery received",
			PerformedBy:     s.users[0].ID,
		}
		if err := s.db.WithContext(ctx).Create(&movement).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedShifts(ctx context.Context) error {
	now := time.Now()
	for i := 0; i < 10; i++ {
		day := now.AddDate(0, 0, -(i / 2))
		server := s.servers[rand.Intn(len(s.servers))]
		shift := model.Shift{
			TenantID: s.tenant.ID,
			UserID:   server.ID,
			Role:     server.Role,
			StartAt:  time.Date(day.Year(), day.Month(), day.Day(), 11, 0, 0, 0, day.Location()),
			EndAt:    time.Date(day.Year(), day.Month(), day.Day(), 23, 0, 0, 0, day.Location()),
		}
		if err := s.db.WithContext(ctx).Create(&shift).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedEndOfDayClose(ctx context.Context) error {
	var owner uuid.UUID
	for _, u := range s.users {
		if u.Role == model.RoleOwner {
			owner = u.ID
			break
		}
	}
	close := model.EndOfDayClose{
		TenantID:       s.tenant.ID,
		BusinessDayID:  s.businessDays[0].ID,
		ClosedByUserID: owner,
		TotalSales:     decimal.RequireFromString("8500.00"),
		CashExpected:   decimal.RequireFromString("1200.00"),
		CashActual:     decimal.RequireFromString("1210.00"),
		Discrepancy:    decimal.RequireFromString("10.00"),
		Notes:          "Small overage in tips",
	}
	return s.db.WithContext(ctx).Create(&close).Error
}
