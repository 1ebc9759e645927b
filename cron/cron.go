package cron

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/engine"
	"github.com/salonbook/salon-app/models"
	"github.com/salonbook/salon-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for bookings starting in about an hour
	_, err := c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders checks for upcoming confirmed bookings and mails
// the customer
func sendBookingReminders() {
	now := time.Now()
	today := now.Format(models.DateLayout)

	// Zero-padded HH:MM strings order chronologically, so the window is
	// a plain range compare on start_time.
	windowStart := now.Add(55 * time.Minute).Format(engine.TimeLayout)
	windowEnd := now.Add(65 * time.Minute).Format(engine.TimeLayout)
	if windowEnd < windowStart {
		// window crosses midnight; nothing books that late anyway
		return
	}

	var bookings []models.Booking
	err := db.DB.Preload("Customer").
		Where("status = ? AND date = ? AND start_time BETWEEN ? AND ?",
			engine.StatusConfirmed, today, windowStart, windowEnd).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if booking.Customer == nil || booking.Customer.Email == "" {
			continue
		}
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Salon Appointment at %s", booking.StartTime)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your salon appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Services:</strong> %s</li>
			<li><strong>Stylist:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, booking.CustomerName, strings.Join(booking.Services, ", "),
		booking.EmployeeName, booking.Date, booking.StartTime, booking.EndTime)

	return utils.SendEmail(booking.Customer.Email, subject, body)
}
