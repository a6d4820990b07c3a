package model

import (
	"encoding/json"
	"time"
)

// MachineStatus tracks whether a listing is still offered.
type MachineStatus string

const (
	MachineActive  MachineStatus = "active"
	MachineRetired MachineStatus = "retired"
)

// CanTransitionTo reports whether a machine in status s may move to next.
// Retired is terminal; an active listing may be edited in place or retired.
func (s MachineStatus) CanTransitionTo(next MachineStatus) bool {
	return s == MachineActive && (next == MachineActive || next == MachineRetired)
}

// Image slots in display order.
const (
	SlotFront   = "front"
	SlotSide    = "side"
	SlotWorking = "working"
	SlotCloseup = "closeup"
)

// MachineImage is one populated image slot of a machine.
type MachineImage struct {
	Slot  string `json:"slot"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Machine is a piece of equipment listed by a supplier.
type Machine struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	SupplierID  uint   `json:"supplier_id" gorm:"not null;index"`
	Supplier    *User  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name        string `json:"name" gorm:"size:200;not null"`
	Category    string `json:"category" gorm:"size:100;not null;index"`
	UseCase     string `json:"use_case" gorm:"type:text;not null"`
	PriceRange  string `json:"price_range" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	ImageFront   string `json:"image_front,omitempty" gorm:"size:500"`
	ImageSide    string `json:"image_side,omitempty" gorm:"size:500"`
	ImageWorking string `json:"image_working,omitempty" gorm:"size:500"`
	ImageCloseup string `json:"image_closeup,omitempty" gorm:"size:500"`

	ProductionCapacity  string `json:"production_capacity,omitempty" gorm:"size:200"`
	AutomationLevel     string `json:"automation_level,omitempty" gorm:"size:50"`
	PowerRequirement    string `json:"power_requirement,omitempty" gorm:"size:100"`
	MachineDimensions   string `json:"machine_dimensions,omitempty" gorm:"size:200"`
	RawMaterial         string `json:"raw_material,omitempty" gorm:"size:200"`
	OperatorSkill       string `json:"operator_skill,omitempty" gorm:"size:50"`
	WarrantyInfo        string `json:"warranty_info,omitempty" gorm:"size:200"`
	IdealIndustry       string `json:"ideal_industry,omitempty" gorm:"size:200"`
	BusinessSizeFit     string `json:"business_size_fit,omitempty" gorm:"size:100"`
	InstallationSupport bool   `json:"installation_support" gorm:"not null;default:false"`

	Status    MachineStatus `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ImageURL returns the primary image: the first populated of front, side, working, closeup.
func (m *Machine) ImageURL() string {
	images := m.AllImages()
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

// AllImages lists every populated image slot in display order.
func (m *Machine) AllImages() []MachineImage {
	slots := []MachineImage{
		{Slot: SlotFront, Label: "Front View", URL: m.ImageFront},
		{Slot: SlotSide, Label: "Side View", URL: m.ImageSide},
		{Slot: SlotWorking, Label: "Working View", URL: m.ImageWorking},
		{Slot: SlotCloseup, Label: "Close-up View", URL: m.ImageCloseup},
	}
	images := make([]MachineImage, 0, len(slots))
	for _, img := range slots {
		if img.URL != "" {
			images = append(images, img)
		}
	}
	return images
}

// MarshalJSON adds the primary image as image_url.
func (m Machine) MarshalJSON() ([]byte, error) {
	type machineFields Machine
	return json.Marshal(struct {
		machineFields
		ImageURL string `json:"image_url"`
	}{machineFields(m), m.ImageURL()})
}

// HasImage reports whether at least one image slot is populated.
func (m *Machine) HasImage() bool {
	return len(m.AllImages()) > 0
}
