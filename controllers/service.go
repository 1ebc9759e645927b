package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/models"
	"github.com/salonbook/salon-app/utils"
)

// GetAllServices godoc
// @Summary Get the service catalog
// @Description Get all services with price and duration
// @Tags services
// @Accept json
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} utils.ErrorResponse
// @Router /services [get]
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Order("name").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetService godoc
// @Summary Get a service by ID
// @Description Get a service by ID
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} models.Service
// @Failure 404 {object} utils.ErrorResponse
// @Router /services/{id} [get]
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// CreateService godoc
// @Summary Create a new service
// @Description Create a new catalog entry
// @Tags services
// @Accept json
// @Produce json
// @Param service body models.Service true "Service"
// @Success 201 {object} models.Service
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /services [post]
func CreateService(c *fiber.Ctx) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if service.Name == "" || service.Price < 0 || service.Duration <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Service needs a name, a non-negative price and a positive duration",
		})
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService godoc
// @Summary Update a service by ID
// @Description Update a catalog entry
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param service body models.Service true "Service"
// @Success 200 {object} models.Service
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /services/{id} [patch]
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Model(&service).Where("id = ?", id).Updates(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// DeleteService godoc
// @Summary Delete a service by ID
// @Description Delete a catalog entry
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Success 204
// @Failure 500 {object} utils.ErrorResponse
// @Router /services/{id} [delete]
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Service{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
