package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_BuildStorableEvent_Success(t *testing.T) {
	// arrange
	occurredAt := time.Now()
	payloadJSON := []byte(`{"BookID": 0, "BorrowerID": "alice"}`)
	metadataJSON := []byte(`{"MessageID": "m1"}`)

	// act
	event, err := BuildStorableEvent("BookBorrowed", occurredAt, payloadJSON, metadataJSON)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "BookBorrowed", event.EventType)
	assert.Equal(t, occurredAt, event.OccurredAt)
	assert.Equal(t, payloadJSON, event.PayloadJSON)
	assert.Equal(t, metadataJSON, event.MetadataJSON)
}

func Test_BuildStorableEventWithEmptyMetadata_Success(t *testing.T) {
	// act
	event, err := BuildStorableEventWithEmptyMetadata("BookReturned", time.Now(), []byte(`{"BookID": 1}`))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), event.MetadataJSON)
}

func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	validTime := time.Now()
	validPayloadJSON := []byte(`{"key": "value"}`)
	validMetadataJSON := []byte(`{"meta": "data"}`)

	tests := []struct {
		name         string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{
			name:         "invalid payload JSON",
			payloadJSON:  []byte(`{"invalid": json}`),
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "invalid metadata JSON",
			payloadJSON:  validPayloadJSON,
			metadataJSON: []byte(`{"invalid": json}`),
			expectedErr:  ErrInvalidMetadataJSON,
		},
		{
			name:         "empty payload JSON",
			payloadJSON:  []byte(``),
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "nil payload JSON",
			payloadJSON:  nil,
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "nil metadata JSON",
			payloadJSON:  validPayloadJSON,
			metadataJSON: nil,
			expectedErr:  ErrInvalidMetadataJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			_, err := BuildStorableEvent("TestEvent", validTime, tt.payloadJSON, tt.metadataJSON)

			// assert
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
