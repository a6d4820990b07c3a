package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineImages(t *testing.T) {
	t.Run("primary image follows slot priority", func(t *testing.T) {
		m := &Machine{ImageWorking: "https://img/working.jpg", ImageCloseup: "https://img/close.jpg"}

		assert.Equal(t, "https://img/working.jpg", m.ImageURL())
		assert.Equal(t, []MachineImage{
			{Slot: SlotWorking, Label: "Working View", URL: "https://img/working.jpg"},
			{Slot: SlotCloseup, Label: "Close-up View", URL: "https://img/close.jpg"},
		}, m.AllImages())
		assert.True(t, m.HasImage())
	})

	t.Run("single image", func(t *testing.T) {
		m := &Machine{ImageSide: "https://img/side.jpg"}

		assert.Equal(t, "https://img/side.jpg", m.ImageURL())
		assert.Len(t, m.AllImages(), 1)
	})

	t.Run("front wins when present", func(t *testing.T) {
		m := &Machine{ImageFront: "f", ImageSide: "s"}
		assert.Equal(t, "f", m.ImageURL())
	})

	t.Run("no images", func(t *testing.T) {
		m := &Machine{}
		assert.Equal(t, "", m.ImageURL())
		assert.Empty(t, m.AllImages())
		assert.False(t, m.HasImage())
	})
}

func TestMachineJSONCarriesPrimaryImage(t *testing.T) {
	m := Machine{ID: 7, Name: "Press X", ImageWorking: "https://img/working.jpg", ImageCloseup: "https://img/close.jpg"}

	raw, err := json.Marshal(&m)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "https://img/working.jpg", body["image_url"])
	assert.Equal(t, "Press X", body["name"])
	assert.EqualValues(t, 7, body["id"])

	raw, err = json.Marshal([]Machine{{ID: 8}})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"image_url":""`)

	var back Machine
	require.NoError(t, json.Unmarshal(raw[1:len(raw)-1], &back))
	assert.Equal(t, uint(8), back.ID)
}

func TestEnquiryTransitions(t *testing.T) {
	tests := []struct {
		from, to EnquiryStatus
		allowed  bool
	}{
		{EnquiryPending, EnquiryResponded, true},
		{EnquiryPending, EnquiryClosed, true},
		{EnquiryResponded, EnquiryClosed, true},
		{EnquiryResponded, EnquiryPending, false},
		{EnquiryClosed, EnquiryPending, false},
		{EnquiryClosed, EnquiryResponded, false},
		{EnquiryPending, EnquiryPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestMachineStatusTransitions(t *testing.T) {
	assert.True(t, MachineActive.CanTransitionTo(MachineActive))
	assert.True(t, MachineActive.CanTransitionTo(MachineRetired))
	assert.False(t, MachineRetired.CanTransitionTo(MachineActive))
	assert.False(t, MachineRetired.CanTransitionTo(MachineRetired))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleBuyer.Valid())
	assert.True(t, RoleSupplier.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
