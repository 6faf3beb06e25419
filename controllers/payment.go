package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
	"github.com/homefixbd/home-fix-server/redis"
)

// The gateway redirects the browser here after checkout. The pages are
// static landings keyed by path; an optional intent token lets us finalise
// the checkout the customer started before leaving for the gateway.

// PaymentSuccess finalises the pending intent into a durable booking and
// shows the success landing with a 5 second redirect home.
func PaymentSuccess(c *fiber.Ctx) error {
	if intentID := c.Query("intent"); intentID != "" {
		finalizeIntent(intentID, models.PaymentCompleted)
	}
	return renderLanding(c, "পেমেন্ট সফল হয়েছে!",
		"ধন্যবাদ! আপনার পেমেন্ট সফলভাবে সম্পন্ন হয়েছে। আমরা শীঘ্রই আপনার সার্ভিসটি প্রসেস করবো।", 5)
}

// PaymentFail records the failed attempt and shows the fail landing with an
// 8 second redirect home.
func PaymentFail(c *fiber.Ctx) error {
	if intentID := c.Query("intent"); intentID != "" {
		finalizeIntent(intentID, models.PaymentFailed)
	}
	return renderLanding(c, "পেমেন্ট ব্যর্থ হয়েছে",
		"দুঃখিত! আপনার পেমেন্ট সম্পন্ন হয়নি। অনুগ্রহ করে আবার চেষ্টা করুন।", 8)
}

// PaymentCancel discards the pending intent; nothing durable is written for
// a checkout the customer walked away from.
func PaymentCancel(c *fiber.Ctx) error {
	if intentID := c.Query("intent"); intentID != "" {
		if err := redis.DeleteIntent(intentID); err != nil {
			log.Printf("Failed to discard payment intent %s: %v", intentID, err)
		}
	}
	return renderLanding(c, "পেমেন্ট বাতিল হয়েছে",
		"আপনি পেমেন্ট প্রক্রিয়া বাতিল করেছেন। চাইলে আবার চেষ্টা করতে পারেন।", 8)
}

// finalizeIntent turns the stored checkout snapshot into a booking row and
// deletes the token so a replayed redirect cannot double-book.
func finalizeIntent(intentID string, paymentStatus models.PaymentStatus) {
	intent, err := redis.GetIntent(intentID)
	if err != nil {
		log.Printf("Payment intent %s not found: %v", intentID, err)
		return
	}

	booking := models.Booking{
		ServiceID:     intent.ServiceID,
		UserID:        intent.UserID,
		ProviderID:    intent.ProviderID,
		Date:          intent.Date,
		Time:          intent.Time,
		Address:       intent.Address,
		Notes:         intent.Notes,
		Status:        models.StatusPending,
		TotalAmount:   intent.TotalAmount,
		PaymentMethod: intent.PaymentMethod,
		PaymentStatus: paymentStatus,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		log.Printf("Failed to finalise payment intent %s: %v", intentID, err)
		return
	}
	if err := redis.DeleteIntent(intentID); err != nil {
		log.Printf("Failed to delete payment intent %s: %v", intentID, err)
	}

	if paymentStatus == models.PaymentCompleted {
		var service models.Service
		if err := db.DB.First(&service, booking.ServiceID).Error; err == nil {
			sendBookingEmails(&booking, &service)
		}
	}
}

// renderLanding writes a static countdown page. The meta refresh performs
// the navigation, so there are no timers to leak if the page is abandoned.
func renderLanding(c *fiber.Ctx, title, message string, seconds int) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(fmt.Sprintf(`<!DOCTYPE html>
<html lang="bn">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="%d;url=/">
<title>%s</title>
</head>
<body>
<h1>%s</h1>
<p>%s</p>
<p>স্বয়ংক্রিয়ভাবে হোমপেজে রিডাইরেক্ট হবে <span id="countdown">%d</span> সেকেন্ডে...</p>
<p><a href="/">হোমে ফিরে যান</a> | <a href="/services">সব সার্ভিস দেখুন</a></p>
<script>
var left = %d;
var el = document.getElementById('countdown');
var timer = setInterval(function () {
  left--;
  if (left <= 0) { clearInterval(timer); return; }
  el.textContent = left;
}, 1000);
</script>
</body>
</html>`, seconds, title, title, message, seconds, seconds))
}
