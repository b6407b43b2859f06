package errorwrapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			require.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.ErrorIs(t, wrappedError, tt.originalError)
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))
	assert.NoError(t, WrapErrorf(nil, "ignored %d", 1))
}

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(ErrNotFound, "file %s", "a.pdf")
	assert.Equal(t, "file a.pdf: not found", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("file_size", 42, "too big")
	assert.Equal(t, "validation error: field 'file_size' with value '42': too big", err.Error())
}

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigurationError
		expected string
	}{
		{"section and field", NewConfigurationError("log_config", "log_level", "bad"), "configuration error in section 'log_config', field 'log_level': bad"},
		{"section only", NewConfigurationError("log_config", "", "bad"), "configuration error in section 'log_config': bad"},
		{"reason only", NewConfigurationError("", "", "bad"), "configuration error: bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrInvalidConfiguration)
		})
	}
}

func TestDocumentError(t *testing.T) {
	cause := errors.New("bad xref")

	err := NewDocumentError("a.pdf", 3, "failed to extract text", cause)
	assert.Equal(t, "document error for 'a.pdf' (page 3): failed to extract text: bad xref", err.Error())
	assert.ErrorIs(t, err, cause)

	noPage := NewDocumentError("a.pdf", 0, "failed to open", nil)
	assert.Equal(t, "document error for 'a.pdf': failed to open", noPage.Error())
}
