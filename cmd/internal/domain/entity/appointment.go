package entity

type Appointment struct {
	ID      string `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Phone   string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Service string `gorm:"not null"`

	// Composite "YYYY-MM-DD HH:MM" value. The unique index is the
	// authority for the one-booking-per-slot invariant.
	Date string `gorm:"not null;uniqueIndex"`

	Observation *string
	CreatedAt   int64 `gorm:"not null"`
}
