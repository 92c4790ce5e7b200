package models

// UploadRequest is an incoming file before admission.
type UploadRequest struct {
	Name     string
	MimeType string
	Data     []byte
}

// Size is the byte length of the request payload.
func (r UploadRequest) Size() int64 { return int64(len(r.Data)) }
