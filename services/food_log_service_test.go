package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seedLog(t *testing.T, s *FoodLogService, userID uint, date string, items ...FoodItemRequest) uint {
	t.Helper()
	flog, err := s.AddLog(userID, date, items)
	assert.NoError(t, err)
	return flog.ID
}

func TestAddLog_ThenGetLogs_ItemsInSubmissionOrder(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	seedLog(t, s, 1, "2024-01-01",
		FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1},
		FoodItemRequest{Name: "Banana", Calories: 105, Quantity: 2},
		FoodItemRequest{Name: "Toast", Calories: 80, Quantity: 1},
	)

	logs, err := s.GetLogs(1, "2024-01-01")
	assert.NoError(t, err)
	if assert.Len(t, logs, 1) && assert.Len(t, logs[0].FoodItems, 3) {
		assert.Equal(t, "Apple", logs[0].FoodItems[0].Name)
		assert.Equal(t, "Banana", logs[0].FoodItems[1].Name)
		assert.Equal(t, "Toast", logs[0].FoodItems[2].Name)
	}
}

func TestAddLog_NeverMergesSameDateLogs(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})
	seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Banana", Calories: 105, Quantity: 1})

	logs, err := s.GetLogs(1, "2024-01-01")
	assert.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestGetLogs_ScopedToUserAndDate(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})
	seedLog(t, s, 2, "2024-01-01", FoodItemRequest{Name: "Steak", Calories: 600, Quantity: 1})
	seedLog(t, s, 1, "2024-01-02", FoodItemRequest{Name: "Banana", Calories: 105, Quantity: 1})

	logs, err := s.GetLogs(1, "2024-01-01")
	assert.NoError(t, err)
	if assert.Len(t, logs, 1) {
		assert.Equal(t, uint(1), logs[0].UserID)
		assert.Equal(t, "Apple", logs[0].FoodItems[0].Name)
	}
}

func TestGetLogs_NoMatchReturnsEmptySliceNotError(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	logs, err := s.GetLogs(42, "2030-12-31")
	assert.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestUpdateFoodItem_AllFieldsOmittedLeavesItemUnchanged(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	logID := seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})
	logs, _ := s.GetLogs(1, "2024-01-01")
	itemID := logs[0].FoodItems[0].ID

	updated, err := s.UpdateFoodItem(logID, itemID, FoodItemUpdate{})
	assert.NoError(t, err)
	assert.Equal(t, "Apple", updated.FoodItems[0].Name)
	assert.Equal(t, 95.0, updated.FoodItems[0].Calories)
	assert.Equal(t, 1.0, updated.FoodItems[0].Quantity)
}

func TestUpdateFoodItem_ZeroCaloriesIsIgnored(t *testing.T) {
	// supplying 0 is indistinguishable from omission and must not clear the
	// stored value
	s := NewFoodLogService(newTestDB(t))

	logID := seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})
	logs, _ := s.GetLogs(1, "2024-01-01")
	itemID := logs[0].FoodItems[0].ID

	updated, err := s.UpdateFoodItem(logID, itemID, FoodItemUpdate{Calories: 0, Quantity: 3})
	assert.NoError(t, err)
	assert.Equal(t, 95.0, updated.FoodItems[0].Calories)
	assert.Equal(t, 3.0, updated.FoodItems[0].Quantity)
}

func TestUpdateFoodItem_PartialOverwrite(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	logID := seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})
	logs, _ := s.GetLogs(1, "2024-01-01")
	itemID := logs[0].FoodItems[0].ID

	updated, err := s.UpdateFoodItem(logID, itemID, FoodItemUpdate{Name: "Green Apple", Calories: 80})
	assert.NoError(t, err)
	assert.Equal(t, "Green Apple", updated.FoodItems[0].Name)
	assert.Equal(t, 80.0, updated.FoodItems[0].Calories)
	assert.Equal(t, 1.0, updated.FoodItems[0].Quantity)
}

func TestUpdateFoodItem_MissingLog(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	_, err := s.UpdateFoodItem(9999, 1, FoodItemUpdate{Name: "x"})
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestUpdateFoodItem_MissingItem(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	logID := seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})

	_, err := s.UpdateFoodItem(logID, 9999, FoodItemUpdate{Name: "x"})
	assert.ErrorIs(t, err, ErrFoodItemNotFound)
}

func TestUpdateFoodItem_ItemFromAnotherLogNotVisible(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	logID := seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})
	seedLog(t, s, 1, "2024-01-02", FoodItemRequest{Name: "Banana", Calories: 105, Quantity: 1})

	otherLogs, _ := s.GetLogs(1, "2024-01-02")
	foreignItemID := otherLogs[0].FoodItems[0].ID

	_, err := s.UpdateFoodItem(logID, foreignItemID, FoodItemUpdate{Name: "x"})
	assert.ErrorIs(t, err, ErrFoodItemNotFound)
}

func TestDeleteFoodItem_LeavesRemainingItems(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	logID := seedLog(t, s, 1, "2024-01-01",
		FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1},
		FoodItemRequest{Name: "Banana", Calories: 105, Quantity: 1},
	)
	logs, _ := s.GetLogs(1, "2024-01-01")
	firstItemID := logs[0].FoodItems[0].ID

	logDeleted, updated, err := s.DeleteFoodItem(logID, firstItemID)
	assert.NoError(t, err)
	assert.False(t, logDeleted)
	if assert.NotNil(t, updated) && assert.Len(t, updated.FoodItems, 1) {
		assert.Equal(t, "Banana", updated.FoodItems[0].Name)
	}
}

func TestDeleteFoodItem_LastItemDeletesWholeLog(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	logID := seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})
	logs, _ := s.GetLogs(1, "2024-01-01")
	itemID := logs[0].FoodItems[0].ID

	logDeleted, snapshot, err := s.DeleteFoodItem(logID, itemID)
	assert.NoError(t, err)
	assert.True(t, logDeleted)
	if assert.NotNil(t, snapshot) {
		assert.Equal(t, "2024-01-01", snapshot.Date)
	}

	// the log is gone entirely, not left as an empty shell
	after, err := s.GetLogs(1, "2024-01-01")
	assert.NoError(t, err)
	assert.Empty(t, after)
}

func TestDeleteFoodItem_NonMatchingItemIsIdempotentSuccess(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	logID := seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})

	logDeleted, updated, err := s.DeleteFoodItem(logID, 9999)
	assert.NoError(t, err)
	assert.False(t, logDeleted)
	if assert.NotNil(t, updated) {
		assert.Len(t, updated.FoodItems, 1)
	}
}

func TestDeleteFoodItem_SecondCallOnDeletedLogIsNotFound(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	logID := seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})
	logs, _ := s.GetLogs(1, "2024-01-01")
	itemID := logs[0].FoodItems[0].ID

	logDeleted, _, err := s.DeleteFoodItem(logID, itemID)
	assert.NoError(t, err)
	assert.True(t, logDeleted)

	_, _, err = s.DeleteFoodItem(logID, itemID)
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestDeleteFoodItem_MissingLog(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	_, _, err := s.DeleteFoodItem(9999, 1)
	assert.ErrorIs(t, err, ErrLogNotFound)
}

// The end-to-end day from the dashboard: one apple, double the quantity,
// then eat the last item and watch the log disappear.
func TestFoodLogLifecycle(t *testing.T) {
	s := NewFoodLogService(newTestDB(t))

	seedLog(t, s, 1, "2024-01-01", FoodItemRequest{Name: "Apple", Calories: 95, Quantity: 1})

	logs, err := s.GetLogs(1, "2024-01-01")
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Len(t, logs[0].FoodItems, 1)

	total := logs[0].FoodItems[0].Calories * logs[0].FoodItems[0].Quantity
	assert.Equal(t, 95.0, total)

	updated, err := s.UpdateFoodItem(logs[0].ID, logs[0].FoodItems[0].ID, FoodItemUpdate{Quantity: 2})
	assert.NoError(t, err)
	total = updated.FoodItems[0].Calories * updated.FoodItems[0].Quantity
	assert.Equal(t, 190.0, total)

	logDeleted, _, err := s.DeleteFoodItem(updated.ID, updated.FoodItems[0].ID)
	assert.NoError(t, err)
	assert.True(t, logDeleted)

	logs, err = s.GetLogs(1, "2024-01-01")
	assert.NoError(t, err)
	assert.Empty(t, logs)
}
