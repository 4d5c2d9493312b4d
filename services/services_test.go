package services

import (
	"math"
	"testing"

	"cafe-counter-api/models"
	"cafe-counter-api/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	managerSession  = models.Session{Login: "boss", Role: models.RoleManager}
	employeeSession = models.Session{Login: "staff", Role: models.RoleEmployee}
	aliceSession    = models.Session{Login: "alice", Role: models.RoleCustomer}
	bobSession      = models.Session{Login: "bob", Role: models.RoleCustomer}
)

type testEnv struct {
	db       *gorm.DB
	orders   *repository.OrderRepository
	menuRepo *repository.MenuRepository
	accounts *AccountService
	menu     *MenuService
	cart     *CartService
	admin    *OrderAdminService
	history  *HistoryService
	payments *PaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	// A shared in-memory sqlite database exists per connection; pin the
	// pool to one connection so every query sees the same schema.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	users := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orders := repository.NewOrderRepository(db)

	return &testEnv{
		db:       db,
		orders:   orders,
		menuRepo: menuRepo,
		accounts: NewAccountService(users),
		menu:     NewMenuService(db, menuRepo, orders),
		cart:     NewCartService(db, menuRepo, orders),
		admin:    NewOrderAdminService(db, menuRepo, orders),
		history:  NewHistoryService(orders),
		payments: NewPaymentService(orders),
	}
}

// seedMenu loads a small catalog the order tests build on.
func seedMenu(t *testing.T, env *testEnv) {
	t.Helper()
	items := []models.MenuItem{
		{Name: "Latte", Category: "Drink", Price: 3.50, Description: "hot latte"},
		{Name: "Espresso", Category: "Drink", Price: 2.25},
		{Name: "Bagel", Category: "Food", Price: 4.00},
		{Name: "Tap Water", Category: "Drink", Price: 0},
	}
	for _, item := range items {
		if _, err := env.menu.AddItem(managerSession, item); err != nil {
			t.Fatalf("seed menu item %q: %v", item.Name, err)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
