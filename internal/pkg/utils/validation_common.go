package utils

import (
	"errors"
	"medibook-service/internal/pkg/constvars"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png"}

func ValidateImage(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	if fileHeader == nil {
		return errors.New("file is missing")
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return errors.New("file size exceeds the maximum limit")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range allowedImageExtensions {
		if ext == allowed {
			return nil
		}
	}
	return errors.New("invalid file format")
}

// DetectImageContentType sniffs the first bytes of data and accepts only JPEG and PNG.
func DetectImageContentType(data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	switch contentType {
	case constvars.MIMEImageJPEG, constvars.MIMEImagePNG:
		return contentType, nil
	}
	return "", errors.New("invalid image content type " + contentType)
}

// ValidateUrlParamID accepts the opaque ids issued by the booking API.
func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}
	if !reURLParamID.MatchString(param) {
		return errors.New("parameter has invalid characters")
	}
	return nil
}
