package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/models"
	"github.com/salonbook/salon-app/utils"
)

// GetRoster returns the employee roster. By default only active staff
// are listed; pass ?all=true to include deactivated employees.
func GetRoster(c *fiber.Ctx) error {
	query := db.DB.Where("role = ?", models.RoleEmployee)
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var employees []models.User
	if err := query.Order("name").Find(&employees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch roster",
			Error:   err.Error(),
		})
	}

	for i := range employees {
		employees[i].Password = ""
	}
	return c.JSON(employees)
}

// CreateEmployee provisions a staff account (admin only)
func CreateEmployee(c *fiber.Ctx) error {
	var employee models.User
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if employee.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Employee name is required",
		})
	}

	employee.Role = models.RoleEmployee
	employee.IsActive = true
	employee.Password = ""

	if err := db.DB.Create(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create employee",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// SetEmployeeActive flips the active flag. Deactivated staff stay in the
// roster but are never offered as available.
func SetEmployeeActive(c *fiber.Ctx) error {
	id := c.Params("id")

	var input struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var employee models.User
	if err := db.DB.Where("role = ?", models.RoleEmployee).First(&employee, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&employee).Update("is_active", input.IsActive).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update employee",
			Error:   err.Error(),
		})
	}

	employee.Password = ""
	return c.JSON(employee)
}
