package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/engine"
	"github.com/salonbook/salon-app/models"
	"github.com/salonbook/salon-app/utils"
)

// GetProfile returns the logged-in customer's profile together with
// their loyalty tier
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.Password = ""

	tier := engine.TierForBookingCount(user.BookingCount)

	return c.JSON(fiber.Map{
		"user":          user,
		"tier":          tier,
		"booking_count": user.BookingCount,
		"next_tier_at":  engine.NextTierAt(user.BookingCount),
	})
}

// UpdateProfile lets the customer change their name and phone
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update profile",
				Error:   err.Error(),
			})
		}
	}

	user.Password = ""
	return c.JSON(user)
}
