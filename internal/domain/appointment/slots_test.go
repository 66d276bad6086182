package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsFullDay(t *testing.T) {
	r := DefaultRules()

	slots, err := r.GenerateSlots("09:00", "17:00")
	require.NoError(t, err)

	// 8 horas / 20 min = 24 slots
	require.Len(t, slots, 24)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:20", slots[1])
	assert.Equal(t, "16:40", slots[23])
}

func TestGenerateSlotsExcludesEndBoundary(t *testing.T) {
	r := DefaultRules()

	slots, err := r.GenerateSlots("10:00", "11:00")
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "10:20", "10:40"}, slots)
	assert.NotContains(t, slots, "11:00")
}

func TestGenerateSlotsEmptyWindow(t *testing.T) {
	r := DefaultRules()

	slots, err := r.GenerateSlots("10:00", "10:00")
	require.NoError(t, err)
	assert.Empty(t, slots)

	// janela invertida também gera vazio, sem erro
	slots, err = r.GenerateSlots("12:00", "10:00")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsInvalidInput(t *testing.T) {
	r := DefaultRules()

	_, err := r.GenerateSlots("9h00", "17:00")
	require.Error(t, err)

	_, err = r.GenerateSlots("09:00", "25:00")
	require.Error(t, err)
}

func TestGenerateSlotsCustomWidth(t *testing.T) {
	r := DefaultRules()
	r.SlotWidthMin = 30

	slots, err := r.GenerateSlots("09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slots)
}
