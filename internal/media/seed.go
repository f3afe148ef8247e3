package media

import (
	"time"

	"garmentsync/internal/domain"
)

// DemoFiles is the catalog shown when demo data is enabled.
func DemoFiles(now time.Time) []domain.MediaFile {
	day := 24 * time.Hour
	return []domain.MediaFile{
		{ID: "media-1", OrderID: "PO-2024-001", Filename: "tech-pack-v3.pdf", Size: 2_457_600,
			MimeType: "application/pdf", Category: domain.MediaCategoryDesign, UploadedBy: "Sarah Chen", UploadedAt: now.Add(-12 * day)},
		{ID: "media-2", OrderID: "PO-2024-001", Filename: "proto-sample-front.jpg", Size: 1_843_200,
			MimeType: "image/jpeg", Category: domain.MediaCategorySample, UploadedBy: "Dhaka Knitwear", UploadedAt: now.Add(-8 * day)},
		{ID: "media-3", OrderID: "PO-2024-001", Filename: "cutting-floor.jpg", Size: 3_145_728,
			MimeType: "image/jpeg", Category: domain.MediaCategoryProduction, UploadedBy: "Dhaka Knitwear", UploadedAt: now.Add(-3 * day)},
		{ID: "media-4", OrderID: "PO-2024-002", Filename: "aql-inspection-report.pdf", Size: 987_136,
			MimeType: "application/pdf", Category: domain.MediaCategoryQuality, UploadedBy: "QC Team", UploadedAt: now.Add(-2 * day)},
		{ID: "media-5", OrderID: "PO-2024-002", Filename: "packing-list.xlsx", Size: 45_056,
			MimeType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Category: domain.MediaCategoryShipping,
			UploadedBy: "Logistics", UploadedAt: now.Add(-1 * day)},
		{ID: "media-6", OrderID: "PO-2024-003", Filename: "purchase-order.pdf", Size: 204_800,
			MimeType: "application/pdf", Category: domain.MediaCategoryDocument, UploadedBy: "Sarah Chen", UploadedAt: now.Add(-20 * day)},
	}
}
