package orders

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/storefront/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "orders.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Order{}, &entities.OrderItem{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return NewRepository(db)
}

func newOrder(number string, status entities.OrderStatus, placed time.Time, items ...string) *entities.Order {
	o := &entities.Order{
		OrderNumber: number,
		Status:      status,
		Total:       decimal.RequireFromString("25.00"),
		PlacedAt:    &placed,
	}
	for i, name := range items {
		o.Items = append(o.Items, entities.OrderItem{Name: name, Quantity: 1, Position: i + 1})
	}
	return o
}

func TestRepository_CreateOrderAggregate(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	order := newOrder("#1001", entities.OrderStatusProcessing, time.Now(), "Candle A", "Candle B")
	require.NoError(t, repo.CreateOrderAggregate(ctx, order))

	stored, err := repo.GetOrderByNumber(ctx, "#1001")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusProcessing, stored.Status)
	assert.True(t, decimal.NewFromInt(25).Equal(stored.Total))
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Candle A", stored.Items[0].Name)
	assert.Equal(t, order.ID, stored.Items[1].OrderID)
}

func TestRepository_CreateOrderAggregate_RollsBack(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	order := newOrder("#1001", entities.OrderStatusPending, time.Now(), "Candle A")
	order.Items = append(order.Items, entities.OrderItem{ID: 1, Name: "collides"})

	require.Error(t, repo.CreateOrderAggregate(ctx, order))

	exists, err := repo.OrderExists(ctx, "#1001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_OrderExists(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, repo.CreateOrder(ctx, newOrder("#1001", entities.OrderStatusPending, time.Now())))

	exists, err := repo.OrderExists(ctx, "#1001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.OrderExists(ctx, "#1002")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_CreateOrderItem_RequiresOrder(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.CreateOrderItem(context.Background(), &entities.OrderItem{OrderID: 42, Name: "orphan"})

	assert.Error(t, err)
}

func TestRepository_GetOrdersByStatus(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.CreateOrderAggregate(ctx, newOrder("#1002", entities.OrderStatusProcessing, now, "B")))
	require.NoError(t, repo.CreateOrderAggregate(ctx, newOrder("#1001", entities.OrderStatusProcessing, now.Add(-time.Hour), "A")))
	require.NoError(t, repo.CreateOrderAggregate(ctx, newOrder("#1003", entities.OrderStatusDelivered, now, "C")))

	orders, err := repo.GetOrdersByStatus(ctx, entities.OrderStatusProcessing)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "#1001", orders[0].OrderNumber, "oldest first")
	assert.Equal(t, "#1002", orders[1].OrderNumber)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "A", orders[0].Items[0].Name)
}
