package inbox

import (
	"time"

	"garmentsync/internal/domain"
)

// DemoNotifications is the inbox shown when demo data is enabled.
func DemoNotifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{ID: "notif-1", OrderID: "PO-2024-001", Type: domain.NotificationUpdate, Title: "Cutting started",
			Message: "Fabric cutting has started for all sizes.", SenderName: "Dhaka Knitwear",
			SenderEmail: "production@dhakaknit.example", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "notif-2", OrderID: "PO-2024-002", Type: domain.NotificationComment, Title: "Question about trims",
			Message: "Can we swap the zipper pull to antique brass?", SenderName: "Sarah Chen",
			SenderEmail: "sarah.chen@buyer.example", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: "notif-3", OrderID: "PO-2024-003", Type: domain.NotificationInvitation, Title: "You were added to PO-2024-003",
			Message: "You now have comment access to this order.", SenderName: "GarmentSync",
			SenderEmail: "notifications@garmentsync.local", Read: true, CreatedAt: now.Add(-26 * time.Hour)},
		{ID: "notif-4", OrderID: "PO-2024-001", Type: domain.NotificationStatusChange, Title: "Status changed to sewing",
			Message: "PO-2024-001 moved from cutting to sewing.", SenderName: "Dhaka Knitwear",
			SenderEmail: "production@dhakaknit.example", CreatedAt: now.Add(-50 * time.Hour)},
	}
}
