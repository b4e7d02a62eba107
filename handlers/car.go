package handlers

import (
	"errors"
	"net/http"

	"carrental/models"
	"carrental/services/car"
	"carrental/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CarHandler exposes fleet management over HTTP.
type CarHandler struct {
	Service car.CarService
}

// NewCarHandler builds a CarHandler.
func NewCarHandler(svc car.CarService) *CarHandler {
	return &CarHandler{Service: svc}
}

// AddCar handles POST /api/car/add-car.
func (h *CarHandler) AddCar(c *gin.Context) {
	var input models.CarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	newCar, err := h.Service.AddCar(c.GetString("userID"), input)
	if err != nil {
		if errors.Is(err, car.ErrAdminOnly) {
			utils.JSONError(c, http.StatusForbidden, "Only admin can add cars", "")
			return
		}
		utils.GetLogger().Error("failed to add car", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error in adding car", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Car added successfully",
		"car":     newCar,
	})
}

// GetAllCars handles GET /api/car/get-cars.
func (h *CarHandler) GetAllCars(c *gin.Context) {
	cars, err := h.Service.GetAllCars()
	if err != nil {
		utils.GetLogger().Error("failed to fetch cars", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error getting all cars", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cars": cars})
}

// GetCarByID handles GET /api/car/get-specific-car/:id.
func (h *CarHandler) GetCarByID(c *gin.Context) {
	foundCar, err := h.Service.GetCarByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Car not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "car": foundCar})
}

// UpdateCar handles PUT /api/car/update-car/:id.
func (h *CarHandler) UpdateCar(c *gin.Context) {
	var input struct {
		PricePerDay float64 `json:"pricePerDay" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdatePrice(c.Param("id"), input.PricePerDay)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error in updating car", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Price updated successfully",
		"car":     updated,
	})
}

// DeleteCar handles DELETE /api/car/delete-car.
func (h *CarHandler) DeleteCar(c *gin.Context) {
	var input struct {
		CarID string `json:"carId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Car id is required", "")
		return
	}

	if err := h.Service.DeleteCar(input.CarID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error in deleting car", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Car deleted successfully"})
}

// ChangeStatus handles POST /api/car/change-status.
func (h *CarHandler) ChangeStatus(c *gin.Context) {
	var input struct {
		CarID string `json:"carId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Car id is required", "")
		return
	}

	if _, err := h.Service.ToggleAvailable(input.CarID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Car not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Car status updated"})
}
