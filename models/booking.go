package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/salonbook/salon-app/engine"
)

// ServiceNames stores the selected service names as a JSONB array.
type ServiceNames []string

// Value implements the driver.Valuer interface
func (s ServiceNames) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *ServiceNames) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal ServiceNames: unsupported type %T", value)
	}

	return json.Unmarshal(data, s)
}

// Booking ties a customer, an employee and a priced set of services to a
// time window on a calendar date. Date is "YYYY-MM-DD", StartTime and
// EndTime are "HH:MM". No soft delete: a record only disappears through
// an explicit admin delete.
type Booking struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	CustomerID   *uint         `json:"customer_id"`
	Customer     *User         `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CustomerName string        `json:"customer_name"`
	Phone        string        `json:"phone"`
	Date         string        `json:"date" gorm:"index"`
	StartTime    string        `json:"time"`
	EndTime      string        `json:"end_time"`
	Services     ServiceNames  `json:"services" gorm:"type:jsonb"`
	EmployeeName string        `json:"employee_name" gorm:"index"`
	GrossPrice   int64         `json:"gross_price"`
	Discount     int64         `json:"discount"`
	NetPrice     int64         `json:"total_price"`
	Status       engine.Status `json:"status" gorm:"index"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = engine.StatusPending
	}
	return nil
}

// Window returns the booking as the engine's booked-window shape for
// availability resolution.
func (b *Booking) Window() engine.BookedWindow {
	return engine.BookedWindow{
		EmployeeName: b.EmployeeName,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
	}
}

const DateLayout = "2006-01-02"
