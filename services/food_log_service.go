// services/food_log_service.go
package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var (
	ErrLogNotFound      = errors.New("log not found")
	ErrFoodItemNotFound = errors.New("food item not found")
)

type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

// FoodItemRequest mirrors the add-log request body.
type FoodItemRequest struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Quantity float64 `json:"quantity"`
}

// FoodItemUpdate carries the PATCH body. Every field is optional: a zero
// value (omitted, 0, or "") leaves the stored field unchanged, matching the
// original API. A caller cannot clear a field to zero through this endpoint.
type FoodItemUpdate struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Quantity float64 `json:"quantity"`
}

// preload items in insertion order so the wire order matches submission order
func (s *FoodLogService) withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("FoodItems", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("food_items.id ASC")
	})
}

// AddLog always creates a fresh log; same-date logs for the same user are
// never merged.
func (s *FoodLogService) AddLog(userID uint, date string, items []FoodItemRequest) (*models.FoodLog, error) {
	flog := models.FoodLog{UserID: userID, Date: date}
	for _, it := range items {
		flog.FoodItems = append(flog.FoodItems, models.FoodItem{
			Name:     it.Name,
			Calories: it.Calories,
			Quantity: it.Quantity,
		})
	}

	if err := s.db.Create(&flog).Error; err != nil {
		utils.Log.Errorw("failed to create food log", "user_id", userID, "date", date, "error", err)
		return nil, err
	}
	return &flog, nil
}

// GetLogs returns every log matching user and date (exact string match).
// No match is an empty slice, not an error.
func (s *FoodLogService) GetLogs(userID uint, date string) ([]models.FoodLog, error) {
	logs := []models.FoodLog{}
	err := s.withItems(s.db).
		Where("user_id = ? AND date = ?", userID, date).
		Order("id ASC").
		Find(&logs).Error
	if err != nil {
		utils.Log.Errorw("failed to fetch food logs", "user_id", userID, "date", date, "error", err)
		return nil, err
	}
	return logs, nil
}

// UpdateFoodItem overwrites only the fields the caller supplied with a
// non-zero value and returns the reloaded log.
func (s *FoodLogService) UpdateFoodItem(logID, foodItemID uint, update FoodItemUpdate) (*models.FoodLog, error) {
	var flog models.FoodLog
	if err := s.withItems(s.db).First(&flog, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		utils.Log.Errorw("failed to load food log", "log_id", logID, "error", err)
		return nil, err
	}

	var item *models.FoodItem
	for i := range flog.FoodItems {
		if flog.FoodItems[i].ID == foodItemID {
			item = &flog.FoodItems[i]
			break
		}
	}
	if item == nil {
		return nil, ErrFoodItemNotFound
	}

	if update.Name != "" {
		item.Name = update.Name
	}
	if update.Calories != 0 {
		item.Calories = update.Calories
	}
	if update.Quantity != 0 {
		item.Quantity = update.Quantity
	}

	if err := s.db.Save(item).Error; err != nil {
		utils.Log.Errorw("failed to save food item", "log_id", logID, "food_item_id", foodItemID, "error", err)
		return nil, err
	}

	var updated models.FoodLog
	if err := s.withItems(s.db).First(&updated, logID).Error; err != nil {
		utils.Log.Errorw("failed to reload food log", "log_id", logID, "error", err)
		return nil, err
	}
	return &updated, nil
}

// DeleteFoodItem removes the matching item; a non-matching foodItemID is a
// no-op, not an error. When the last item goes, the whole log goes with it
// and logDeleted reports that distinctly; updated then holds the pre-delete
// snapshot so callers still know which date changed.
func (s *FoodLogService) DeleteFoodItem(logID, foodItemID uint) (logDeleted bool, updated *models.FoodLog, err error) {
	var flog models.FoodLog
	if err := s.db.First(&flog, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, ErrLogNotFound
		}
		utils.Log.Errorw("failed to load food log", "log_id", logID, "error", err)
		return false, nil, err
	}

	if err := s.db.
		Where("id = ? AND food_log_id = ?", foodItemID, logID).
		Delete(&models.FoodItem{}).Error; err != nil {
		utils.Log.Errorw("failed to delete food item", "log_id", logID, "food_item_id", foodItemID, "error", err)
		return false, nil, err
	}

	var remaining int64
	if err := s.db.Model(&models.FoodItem{}).
		Where("food_log_id = ?", logID).
		Count(&remaining).Error; err != nil {
		utils.Log.Errorw("failed to count food items", "log_id", logID, "error", err)
		return false, nil, err
	}

	if remaining == 0 {
		if err := s.db.Delete(&flog).Error; err != nil {
			utils.Log.Errorw("failed to delete food log", "log_id", logID, "error", err)
			return false, nil, err
		}
		return true, &flog, nil
	}

	var reloaded models.FoodLog
	if err := s.withItems(s.db).First(&reloaded, logID).Error; err != nil {
		utils.Log.Errorw("failed to reload food log", "log_id", logID, "error", err)
		return false, nil, err
	}
	return false, &reloaded, nil
}
