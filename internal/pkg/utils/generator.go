package utils

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateIdempotencyKey() string {
	return uuid.New().String()
}

func GenerateFileName(prefix, userID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, userID, timestamp, fileExtension)
}

// FormatThousandSeparator renders 1500 as "1,500" and 1234567.5 as "1,234,567.5". Values are
// rounded to two decimal places.
func FormatThousandSeparator(value float64) string {
	amount := decimal.NewFromFloat(value).Round(2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	raw := amount.Abs().String()
	integer, fraction := raw, ""
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		integer, fraction = raw[:idx], raw[idx:]
	}

	var builder strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return sign + builder.String() + fraction
}
