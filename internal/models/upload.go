package models

// UploadResult is returned once per upload call. Nothing about the upload
// is retained beyond the URL the caller stores on a content reference field.
type UploadResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
