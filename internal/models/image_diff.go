package models

// ImageDiff reports a page whose image count differs between the two documents.
type ImageDiff struct {
	Page    int `json:"page"`
	ImagesA int `json:"images_a"`
	ImagesB int `json:"images_b"`
}
