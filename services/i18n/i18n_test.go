package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	nested := map[string]interface{}{
		"form": map[string]interface{}{
			"submit": "Submit Request",
			"label": map[string]interface{}{
				"name": "Full Name",
			},
		},
		"count": 123,
	}

	flat := make(map[string]string)
	flatten("", nested, flat)

	assert.Equal(t, "Submit Request", flat["form.submit"])
	assert.Equal(t, "Full Name", flat["form.label.name"])
	assert.Equal(t, "123", flat["count"])
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		args     map[string]interface{}
		expected string
	}{
		{name: "No placeholders", text: "Hello World", expected: "Hello World"},
		{name: "Single placeholder", text: "{field} is required", args: map[string]interface{}{"field": "Email"}, expected: "Email is required"},
		{name: "Multiple placeholders", text: "{field} must be at least {param} characters", args: map[string]interface{}{"field": "Subject", "param": 5}, expected: "Subject must be at least 5 characters"},
		{name: "Missing argument", text: "Hello {name}", args: map[string]interface{}{"other": "val"}, expected: "Hello {name}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result string
			if tt.args == nil {
				result = format(tt.text)
			} else {
				result = format(tt.text, tt.args)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetLocale(t *testing.T) {
	t.Run("Default locale", func(t *testing.T) {
		assert.Equal(t, "en", GetLocale(context.Background()))
	})

	t.Run("Locale from context", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "es")
		assert.Equal(t, "es", GetLocale(ctx))
	})

	t.Run("Empty locale falls back", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "")
		assert.Equal(t, "en", GetLocale(ctx))
	})
}

func TestTranslateLogic(t *testing.T) {
	mutex.Lock()
	oldTrans := translations
	translations = map[string]map[string]string{
		"en": {"test.hello": "Hello", "test.welcome": "Welcome {name}"},
		"es": {"test.hello": "Hola"},
	}
	mutex.Unlock()

	defer func() {
		mutex.Lock()
		translations = oldTrans
		mutex.Unlock()
	}()

	t.Run("Direct lookup", func(t *testing.T) {
		assert.Equal(t, "Hola", Translate("es", "test.hello"))
		assert.Equal(t, "Hello", Translate("en", "test.hello"))
	})

	t.Run("Fallback to default", func(t *testing.T) {
		assert.Equal(t, "Welcome Juan", Translate("es", "test.welcome", map[string]interface{}{"name": "Juan"}))
	})

	t.Run("Fallback to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", Translate("es", "missing.key"))
	})

	t.Run("Supported languages", func(t *testing.T) {
		assert.Equal(t, []string{"en", "es"}, Languages())
		assert.True(t, IsSupported("es"))
		assert.False(t, IsSupported("fr"))
	})
}

func TestT(t *testing.T) {
	mutex.Lock()
	oldTrans := translations
	translations = map[string]map[string]string{
		"es": {"greet": "Hola {name}"},
	}
	mutex.Unlock()

	defer func() {
		mutex.Lock()
		translations = oldTrans
		mutex.Unlock()
	}()

	ctx := WithLocale(context.Background(), "es")
	assert.Equal(t, "Hola Pedro", T(ctx, "greet", map[string]interface{}{"name": "Pedro"}))
}

func TestLoadedLocalesShareKeys(t *testing.T) {
	require.NoError(t, Load())

	mutex.RLock()
	defer mutex.RUnlock()
	require.NotEmpty(t, translations["en"])
	require.NotEmpty(t, translations["es"])

	for key := range translations["en"] {
		_, ok := translations["es"][key]
		assert.True(t, ok, "es locale is missing %s", key)
	}
	assert.Equal(t, "Family Law", translations["en"]["case_type.family"])
}
