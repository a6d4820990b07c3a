package model

import "time"

// EnquiryStatus is the response state of an enquiry.
type EnquiryStatus string

const (
	EnquiryPending   EnquiryStatus = "pending"
	EnquiryResponded EnquiryStatus = "responded"
	EnquiryClosed    EnquiryStatus = "closed"
)

// DefaultTimeline is stored when a buyer does not state a purchase timeline.
const DefaultTimeline = "planning"

var enquiryTransitions = map[EnquiryStatus][]EnquiryStatus{
	EnquiryPending:   {EnquiryResponded, EnquiryClosed},
	EnquiryResponded: {EnquiryClosed},
}

// Valid reports whether s is a known status.
func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryPending, EnquiryResponded, EnquiryClosed:
		return true
	}
	return false
}

// CanTransitionTo reports whether an enquiry in status s may move to next.
func (s EnquiryStatus) CanTransitionTo(next EnquiryStatus) bool {
	for _, allowed := range enquiryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Enquiry is a buyer's purchase interest in a machine.
type Enquiry struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	BuyerID        uint          `json:"buyer_id" gorm:"not null;index"`
	Buyer          *User         `json:"buyer,omitempty" gorm:"foreignKey:BuyerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	MachineID      uint          `json:"machine_id" gorm:"not null;index"`
	Machine        *Machine      `json:"machine,omitempty" gorm:"foreignKey:MachineID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Message        string        `json:"message" gorm:"type:text;not null"`
	Budget         string        `json:"budget" gorm:"size:100;not null"`
	Location       string        `json:"location" gorm:"size:200;not null"`
	ProductionNeed string        `json:"production_need" gorm:"size:200;not null"`
	Timeline       string        `json:"timeline" gorm:"size:100;not null;default:planning"`
	Status         EnquiryStatus `json:"status" gorm:"size:20;not null;default:pending;index"`
	CreatedAt      time.Time     `json:"created_at" gorm:"index"`
}

// TableName pins the table name.
func (Enquiry) TableName() string {
	return "enquiries"
}
