package schema

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component, the format the service
// uses for delivery and receipt dates.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" || value == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", value, err)
	}
	d.Time = parsed
	return nil
}

// ComponentCounts tracks every part of a CubeSat kit.
type ComponentCounts struct {
	Structures          int `json:"structures"`
	CurrentSensors      int `json:"current_sensors"`
	TempSensors         int `json:"temp_sensors"`
	FRAM                int `json:"fram"`
	SDCard              int `json:"sd_card"`
	ReactionWheel       int `json:"reaction_wheel"`
	MPU                 int `json:"mpu"`
	GPS                 int `json:"gps"`
	MotorDriver         int `json:"motor_driver"`
	PhillipsScrewdriver int `json:"phillips_screwdriver"`
	ScrewGauge3D        int `json:"screw_gauge_3d"`
	StandoffTool3D      int `json:"standoff_tool_3d"`
	M3x10mm             int `json:"m3_10mm"`
	M3x10mmThread       int `json:"m3_10mm_thread"`
	M3x9mmThread        int `json:"m3_9mm_thread"`
	M3x20mmThread       int `json:"m3_20mm_thread"`
	M3x6mm              int `json:"m3_6mm"`
}

// CubesatInput is the writable part of a CubeSat inventory record.
type CubesatInput struct {
	Name          string `json:"name"`
	Status        string `json:"status"`
	Location      string `json:"location,omitempty"`
	DeliveredDate *Date  `json:"delivered_date,omitempty"`
	InstructorID  *int   `json:"instructor_id,omitempty"`
	ComponentCounts
}

// Cubesat is an inventory record as returned by the service. Completeness
// and missing items are derived server-side from the component counts.
type Cubesat struct {
	ID int `json:"id"`
	CubesatInput
	IsComplete   bool    `json:"is_complete"`
	MissingItems *string `json:"missing_items,omitempty"`
	IsReceived   bool    `json:"is_received"`
	ReceivedDate *Date   `json:"received_date,omitempty"`
}

// InstructorInput is the writable part of an instructor record.
type InstructorInput struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	// UserID links the instructor to a login account; receipts need the
	// link to deliver approval notifications.
	UserID *int `json:"user_id,omitempty"`
}

// Instructor is a first-class teaching identity; instructor sessions carry
// its id in the session store.
type Instructor struct {
	ID int `json:"id"`
	InstructorInput
}

// Receipt lifecycle states.
const (
	ReceiptStatusPending  = "pending"
	ReceiptStatusApproved = "approved"
)

// ReceiptInput requests an equipment receipt for a CubeSat; the service
// resolves the responsible instructor from the CubeSat record.
type ReceiptInput struct {
	CubesatID int            `json:"cubesat_id"`
	Items     map[string]int `json:"items"`
}

// ReceiptCreated acknowledges a new receipt sent for approval.
type ReceiptCreated struct {
	Message   string `json:"message"`
	ReceiptID int    `json:"receipt_id"`
}

// Receipt is an issued equipment receipt, joined with the CubeSat and
// instructor names it references. Items is the JSON-encoded item map as the
// service stores it.
type Receipt struct {
	ID             int       `json:"id"`
	CubesatID      int       `json:"cubesat_id"`
	InstructorID   int       `json:"instructor_id"`
	Items          string    `json:"items"`
	Status         string    `json:"status"`
	GeneratedBy    int       `json:"generated_by"`
	CreatedAt      time.Time `json:"created_at"`
	CubesatName    string    `json:"cubesat_name"`
	InstructorName string    `json:"instructor_name"`
}
