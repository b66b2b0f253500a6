package Controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "Z suffix means UTC",
			value: "2030-01-02T15:04:05Z",
			want:  time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC),
		},
		{
			name:  "explicit offset is normalized to UTC",
			value: "2030-01-02T17:04:05+02:00",
			want:  time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC),
		},
		{
			name:  "zone-less timestamp treated as UTC",
			value: "2030-01-02T15:04:05",
			want:  time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC),
		},
		{
			name:  "fractional seconds",
			value: "2030-01-02T15:04:05.250Z",
			want:  time.Date(2030, 1, 2, 15, 4, 5, 250_000_000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTaskTime(tt.value)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		for _, value := range []string{"", "next tuesday", "2030-13-40T99:00:00Z", "2030-01-02"} {
			_, err := parseTaskTime(value)
			assert.Error(t, err, "expected %q to be rejected", value)
		}
	})
}

func TestFirstValidationError(t *testing.T) {
	t.Run("reports first missing field by json name", func(t *testing.T) {
		err := validate.Struct(CreateTaskInput{Note: "only a note"})
		require.Error(t, err)
		assert.Equal(t, "entity_name is required", firstValidationError(err))
	})

	t.Run("later fields reported once earlier ones present", func(t *testing.T) {
		err := validate.Struct(CreateTaskInput{
			EntityName: "Acme Corp",
			TaskType:   "call",
			TaskTime:   "2030-01-02T15:04:05Z",
		})
		require.Error(t, err)
		assert.Equal(t, "contact_person is required", firstValidationError(err))
	})

	t.Run("complete input passes", func(t *testing.T) {
		err := validate.Struct(CreateTaskInput{
			EntityName:    "Acme Corp",
			TaskType:      "call",
			TaskTime:      "2030-01-02T15:04:05Z",
			ContactPerson: "Jane Doe",
		})
		assert.NoError(t, err)
	})
}
