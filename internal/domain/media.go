package domain

import "time"

type MediaCategory string

const (
	MediaCategoryDesign     MediaCategory = "design"
	MediaCategorySample     MediaCategory = "sample"
	MediaCategoryProduction MediaCategory = "production"
	MediaCategoryQuality    MediaCategory = "quality"
	MediaCategoryShipping   MediaCategory = "shipping"
	MediaCategoryDocument   MediaCategory = "document"
)

func (c MediaCategory) IsValid() bool {
	switch c {
	case MediaCategoryDesign, MediaCategorySample, MediaCategoryProduction,
		MediaCategoryQuality, MediaCategoryShipping, MediaCategoryDocument:
		return true
	}
	return false
}

// MediaFile is metadata about a file attached to an order. The bytes live
// elsewhere.
type MediaFile struct {
	ID         string        `json:"id"`
	OrderID    string        `json:"orderId"`
	Filename   string        `json:"filename"`
	Size       int64         `json:"size"`
	MimeType   string        `json:"mimeType"`
	Category   MediaCategory `json:"category"`
	UploadedBy string        `json:"uploadedBy"`
	UploadedAt time.Time     `json:"uploadedAt"`
}
