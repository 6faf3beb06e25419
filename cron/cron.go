package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
	"github.com/homefixbd/home-fix-server/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every morning at 08:00 to remind about tomorrow's bookings
	_, err := c.AddFunc("0 8 * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders finds confirmed bookings scheduled for tomorrow and
// mails both sides
func sendBookingReminders() {
	tomorrow := utils.ToBST(time.Now()).AddDate(0, 0, 1).Format("2006-01-02")

	var bookings []models.Booking
	err := db.DB.Preload("User").Preload("Service").Preload("Provider").
		Where("status = ? AND date = ?", models.StatusConfirmed, tomorrow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	fmt.Printf("Found %d bookings for reminders\n", len(bookings))

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder emails
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Service - %s", booking.Service.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your service booking scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, please do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>The HomeFix Team</p>
	`, booking.User.Name, booking.Service.Title, booking.Provider.Name,
		booking.Date, booking.Time, booking.Address)

	if err := utils.SendEmail(booking.User.Email, subject, body); err != nil {
		return err
	}

	providerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a service booking scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The HomeFix Team</p>
	`, booking.Provider.Name, booking.Service.Title, booking.User.Name,
		booking.Date, booking.Time, booking.Address)

	return utils.SendEmail(booking.Provider.Email, subject, providerBody)
}
