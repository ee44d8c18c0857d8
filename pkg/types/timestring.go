package types

import (
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках, верхняя граница для FromMinutes
const MinutesPerDay = 24 * 60

// ErrInvalidFormat возвращается, когда строка не является валидным временем HH:MM
var ErrInvalidFormat = errors.New("types: invalid time format, expected HH:MM")

// ErrMinutesOutOfRange возвращается, когда количество минут вне диапазона [0, 1440)
var ErrMinutesOutOfRange = errors.New("types: minutes out of range [0, 1440)")

// TimeString время в формате "HH:MM" (например, "09:30")
// Единственная точка парсинга/форматирования времени в сервисе:
// весь остальной код работает либо с TimeString, либо с минутами от полуночи
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinutes создает TimeString из количества минут от полуночи
// Минуты должны быть в диапазоне [0, 1440)
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrMinutesOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что строка является валидным временем HH:MM
// Требует строго два знака в часах и минутах: "9:30" невалидно, "09:30" валидно
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')

	if hours > 23 || mins > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return nil
}

// Minutes возвращает количество минут от полуночи
// Для невалидного значения возвращает ошибку ErrInvalidFormat
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	s := string(t)
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + mins, nil
}

// AddMinutes возвращает время, сдвинутое на delta минут вперед
// Результат не может выходить за пределы суток
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(current + delta)
}

// IsBefore возвращает true, если t строго раньше other
// Сравнение лексикографическое: для валидных HH:MM оно совпадает с временным
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}
