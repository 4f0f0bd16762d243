package services

import (
	"math/rand"
	"testing"

	"github.com/defenstration/diet-tracker-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB gives each test its own in-memory store with the production
// schema. Connections are capped at one so the pool never silently opens
// a second, empty :memory: database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.FoodLog{},
		&models.Milestone{},
	))
	return db
}

func testFood(fdcID, description string, calories float64) FoodItem {
	return FoodItem{
		FdcID:       fdcID,
		Description: description,
		Nutrients:   Nutrients{Calories: calories, Protein: 5, Carbohydrates: 20, Fat: 3},
	}
}

func entry(quantity, calories, protein, carbs, fat float64) FoodLogEntry {
	return FoodLogEntry{
		Quantity: quantity,
		FoodData: FoodData{
			Nutrients: Nutrients{
				Calories:      calories,
				Protein:       protein,
				Carbohydrates: carbs,
				Fat:           fat,
			},
		},
	}
}

func TestSumDailyTotalsEmptyIsZero(t *testing.T) {
	totals := SumDailyTotals(nil)
	assert.Equal(t, DailyTotals{}, totals)

	totals = SumDailyTotals([]FoodLogEntry{})
	assert.Equal(t, DailyTotals{}, totals)
}

func TestSumDailyTotalsScalesByQuantity(t *testing.T) {
	totals := SumDailyTotals([]FoodLogEntry{entry(2.0, 150, 5, 20, 3)})

	assert.Equal(t, 300.0, totals.Calories)
	assert.Equal(t, 10.0, totals.Protein)
	assert.Equal(t, 40.0, totals.Carbs)
	assert.Equal(t, 6.0, totals.Fat)
}

func TestSumDailyTotalsOrderIndependent(t *testing.T) {
	entries := []FoodLogEntry{
		entry(1, 100, 10, 15, 2),
		entry(0.5, 240, 8, 30, 12),
		entry(3, 90, 3, 22, 0.5),
		entry(1.25, 180, 20, 5, 9),
	}
	want := SumDailyTotals(entries)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]FoodLogEntry, len(entries))
		copy(shuffled, entries)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, SumDailyTotals(shuffled))
	}
}

func TestSumDailyTotalsSameFoodTwiceContributesTwice(t *testing.T) {
	// two distinct entries for the same food, quantities 1 and 3
	one := entry(1, 150, 5, 20, 3)
	three := entry(3, 150, 5, 20, 3)

	totals := SumDailyTotals([]FoodLogEntry{one, three})
	assert.Equal(t, 600.0, totals.Calories)
	assert.Equal(t, 20.0, totals.Protein)
}

func TestLogEntryRequiresAuthenticatedUser(t *testing.T) {
	// nil db: the auth guard must fire before any query is attempted
	svc := NewFoodLogService(nil)

	_, err := svc.LogEntry(0, FoodItem{FdcID: "123"}, 1, models.MealBreakfast)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTodaysEntriesRequiresAuthenticatedUser(t *testing.T) {
	svc := NewFoodLogService(nil)

	_, err := svc.TodaysEntries(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLogEntryRejectsBadMealSlot(t *testing.T) {
	svc := NewFoodLogService(nil)

	_, err := svc.LogEntry(1, FoodItem{FdcID: "123"}, 1, models.MealSlot("brunch"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPersistence)
}

func TestLogEntryRejectsQuantityOutOfRange(t *testing.T) {
	svc := NewFoodLogService(nil)

	_, err := svc.LogEntry(1, FoodItem{FdcID: "123"}, 0.1, models.MealLunch)
	require.Error(t, err)

	_, err = svc.LogEntry(1, FoodItem{FdcID: "123"}, 100, models.MealLunch)
	require.Error(t, err)
}

func TestLogEntrySameFoodTwiceKeepsDistinctRecords(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodLogService(db)
	food := testFood("123456", "PEANUT BUTTER", 150)

	first, err := svc.LogEntry(1, food, 1, models.MealLunch)
	require.NoError(t, err)
	second, err := svc.LogEntry(1, food, 3, models.MealLunch)
	require.NoError(t, err)

	// two log rows, never merged
	assert.NotEqual(t, first.ID, second.ID)
	entries, err := svc.TodaysEntries(1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1.0, entries[0].Quantity)
	assert.Equal(t, 3.0, entries[1].Quantity)

	// but a single catalog row for the shared identifier
	var foodCount int64
	require.NoError(t, db.Model(&models.Food{}).Where("barcode = ?", "123456").Count(&foodCount).Error)
	assert.EqualValues(t, 1, foodCount)

	// and both contribute independently to the total
	totals := SumDailyTotals(entries)
	assert.Equal(t, 600.0, totals.Calories)
}

func TestTodaysEntriesDropsOrphanedEntries(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodLogService(db)

	kept, err := svc.LogEntry(1, testFood("111", "OATMEAL", 150), 1, models.MealBreakfast)
	require.NoError(t, err)
	orphaned, err := svc.LogEntry(1, testFood("222", "YOGURT", 120), 1, models.MealBreakfast)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Food{}, orphaned.FoodID).Error)

	entries, err := svc.TodaysEntries(1)
	require.NoError(t, err, "a missing food row must not fail the read")
	require.Len(t, entries, 1)
	assert.Equal(t, kept.ID, entries[0].ID)
	assert.Equal(t, "OATMEAL", entries[0].FoodData.Description)
}

func TestLogInsertFailureLeavesCatalogRowIntact(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodLogService(db)

	// make the second write fail while the first still works
	require.NoError(t, db.Migrator().DropTable(&models.FoodLog{}))

	_, err := svc.LogEntry(1, testFood("333", "GRANOLA", 200), 1, models.MealSnack)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)

	var foodCount int64
	require.NoError(t, db.Model(&models.Food{}).Where("barcode = ?", "333").Count(&foodCount).Error)
	assert.EqualValues(t, 1, foodCount, "catalog write is independent of the log write")
}
