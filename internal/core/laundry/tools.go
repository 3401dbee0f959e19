package laundry

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func validateLogin(login string) error {
	if login == "" {
		return ErrLoginNotValid
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordNotValid
	}
	return nil
}

func HashPassword(password string) (string, error) {
	cost := 14
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var pinSpace = big.NewInt(10000)

// generatePin returns a zero-padded 4-digit code in 0000-9999.
func generatePin() (string, error) {
	n, err := rand.Int(rand.Reader, pinSpace)
	if err != nil {
		return "", fmt.Errorf("failed generate pin: %w", err)
	}

	return fmt.Sprintf("%04d", n.Int64()), nil
}

func validatePin(pin string) error {
	if len(pin) != 4 {
		return ErrPinNotValid
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrPinNotValid
		}
	}
	return nil
}

// slotStart resolves the start of a collection slot like "09:00-11:00" on
// the given date.
func slotStart(date, timeSlot string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrScheduleNotValid, err)
	}

	if len(timeSlot) < 5 {
		return time.Time{}, ErrScheduleNotValid
	}
	start, err := time.Parse("15:04", timeSlot[:5])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrScheduleNotValid, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		start.Hour(), start.Minute(), 0, 0, time.UTC), nil
}
