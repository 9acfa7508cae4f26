package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := logrus.StandardLogger().Out
	prevLevel := logrus.GetLevel()
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})
	return &buf
}

func TestHelperStandardFields(t *testing.T) {
	buf := captureLogs(t)

	NewLogger("substitution", "Cipher").
		WithField("fingerprint", "abcd").
		Debug("builder finalized")

	out := buf.String()
	assert.Contains(t, out, "function=Cipher")
	assert.Contains(t, out, "package=substitution")
	assert.Contains(t, out, "fingerprint=abcd")
	assert.Contains(t, out, "builder finalized")
}

func TestHelperWithError(t *testing.T) {
	l := NewLogger("recipe", "Load").WithError(errors.New("boom"), "decode")
	fields := l.Fields()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "decode", fields["operation"])

	nilErr := NewLogger("recipe", "Load").WithError(nil, "decode").Fields()
	_, hasErr := nilErr["error"]
	assert.False(t, hasErr)
}

func TestHelperWithCaller(t *testing.T) {
	fields := NewLogger("capi", "alloc").WithCaller().Fields()
	assert.Contains(t, fields["caller"], "logging_test.go")
	assert.Contains(t, fields["caller_func"], "TestHelperWithCaller")
}

func TestFieldsReturnsCopy(t *testing.T) {
	l := NewLogger("presets", "New")
	fields := l.Fields()
	fields["extra"] = 1
	_, leaked := l.Fields()["extra"]
	assert.False(t, leaked)
}

func TestParseLevel(t *testing.T) {
	prev := logrus.GetLevel()
	defer logrus.SetLevel(prev)

	require.NoError(t, ParseLevel("WARN"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	require.NoError(t, ParseLevel(" debug "))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, ParseLevel("loud"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestBytePreview(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		preview string
	}{
		{"nil", nil, "nil"},
		{"short", []byte("ab"), "6162"},
		{"exact", []byte("abcdefgh"), "6162636465666768"},
		{"long", []byte("abcdefghij"), "6162636465666768..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := BytePreview(tt.data, "buf")
			assert.Equal(t, tt.preview, fields["buf_preview"])
			assert.Equal(t, len(tt.data), fields["buf_size"])
		})
	}
}

func TestHelperLevels(t *testing.T) {
	buf := captureLogs(t)

	NewLogger("main", "selectCipher").WithField("recipe", "shift-digits").Info("Recipe loaded")
	NewLogger("presets", "NewOrNull").Warn("falling back")
	NewLogger("capi", "transformBuffer").Error("length rejected")

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "recipe=shift-digits")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "level=error")

	buf.Reset()
	logrus.SetLevel(logrus.WarnLevel)
	NewLogger("main", "selectCipher").Info("hidden")
	assert.Empty(t, buf.String())
}
