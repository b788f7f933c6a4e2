package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/logging"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("warn", "json", &buf)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "edge", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 3, rec["edge"])
}

func TestNew_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("DEBUG", "", &buf)
	require.NoError(t, err)
	log.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New("loud", "text", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logging.New("info", "xml", &bytes.Buffer{})
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, logging.OrDiscard(nil))
	l := logging.Discard()
	assert.Same(t, l, logging.OrDiscard(l))
}
