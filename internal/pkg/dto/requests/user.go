package requests

import "mime/multipart"

type UpdateProfile struct {
	UserID      string `json:"-" validate:"required"`
	Name        string `json:"name" validate:"required,min=3,max=50"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone_number"`
}

type UploadProfilePicture struct {
	UserID     string
	File       multipart.File
	FileHeader *multipart.FileHeader
}

type UploadObject struct {
	BucketName  string
	ObjectName  string
	Data        []byte
	ContentType string
}
