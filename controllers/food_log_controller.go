package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodLogController struct {
	RT *services.RealtimeHub
}

func NewFoodLogController(rt *services.RealtimeHub) *FoodLogController {
	return &FoodLogController{RT: rt}
}

func (fc *FoodLogController) AddFoodLog(c *gin.Context) {
	var body struct {
		Date      string                     `json:"date" binding:"required"`
		FoodItems []services.FoodItemRequest `json:"foodItems"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	logSvc := services.NewFoodLogService(config.DB)
	if _, err := logSvc.AddLog(userID, body.Date, body.FoodItems); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food log"})
		return
	}

	fc.RT.BroadcastLogChange(userID, body.Date)
	c.JSON(http.StatusCreated, gin.H{"message": "Food log added"})
}

func (fc *FoodLogController) GetLogsByDate(c *gin.Context) {
	userID := c.GetUint("userID")
	date := c.Param("date")

	logSvc := services.NewFoodLogService(config.DB)
	logs, err := logSvc.GetLogs(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (fc *FoodLogController) UpdateFoodItem(c *gin.Context) {
	logID, err1 := strconv.ParseUint(c.Param("logId"), 10, 32)
	foodItemID, err2 := strconv.ParseUint(c.Param("foodItemId"), 10, 32)
	if err1 != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
		return
	}
	if err2 != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	var update services.FoodItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logSvc := services.NewFoodLogService(config.DB)
	updated, err := logSvc.UpdateFoodItem(uint(logID), uint(foodItemID), update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
		case errors.Is(err, services.ErrFoodItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update food item"})
		}
		return
	}

	fc.RT.BroadcastLogChange(c.GetUint("userID"), updated.Date)
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated", "log": updated})
}

func (fc *FoodLogController) DeleteFoodItem(c *gin.Context) {
	logID, err1 := strconv.ParseUint(c.Param("logId"), 10, 32)
	if err1 != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
		return
	}
	// removal is idempotent: an id that matches nothing, parseable or not,
	// is a successful no-op. No item ever has id 0.
	foodItemID, err2 := strconv.ParseUint(c.Param("foodItemId"), 10, 32)
	if err2 != nil {
		foodItemID = 0
	}

	logSvc := services.NewFoodLogService(config.DB)
	logDeleted, updated, err := logSvc.DeleteFoodItem(uint(logID), uint(foodItemID))
	if err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete food item"})
		return
	}

	fc.RT.BroadcastLogChange(c.GetUint("userID"), updated.Date)
	if logDeleted {
		c.JSON(http.StatusOK, gin.H{"message": "Food log deleted as it had no remaining items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted", "log": updated})
}
