package dirq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/dirq"
)

func TestMappingError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := dirq.NewMappingError("Person", "dn", "two identifier properties")
		assert.Equal(t, "dirq: mapping error on entity Person property dn: two identifier properties", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := dirq.NewMappingError("Person", "", "no object classes")
		assert.True(t, errors.Is(err, dirq.ErrMapping))
	})

	t.Run("IsMappingError", func(t *testing.T) {
		err := dirq.NewMappingError("Group", "member", "duplicate dn index")
		assert.True(t, dirq.IsMappingError(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, dirq.IsMappingError(wrapped))

		// Sentinel error
		assert.True(t, dirq.IsMappingError(dirq.ErrMapping))

		// Non-matching error
		assert.False(t, dirq.IsMappingError(errors.New("other error")))
		assert.False(t, dirq.IsMappingError(nil))
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := dirq.NewParseError("findByAge", "Age", "unknown property")
		assert.Equal(t, `dirq: parsing "findByAge" segment "Age": unknown property`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := dirq.NewParseError("getByName", "", "unsupported subject")
		assert.True(t, errors.Is(err, dirq.ErrParse))
	})

	t.Run("IsParseError", func(t *testing.T) {
		err := dirq.NewParseError("findByXOrY", "", "mixed And and Or")
		assert.True(t, dirq.IsParseError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, dirq.IsParseError(wrapped))

		assert.True(t, dirq.IsParseError(dirq.ErrParse))

		assert.False(t, dirq.IsParseError(errors.New("other error")))
		assert.False(t, dirq.IsParseError(nil))
	})
}

func TestCompileError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := dirq.NewCompileError("lastname", struct{}{}, "unsupported value type")
		assert.Equal(t, `dirq: compile error on property "lastname" (value: {}): unsupported value type`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := dirq.NewCompileError("age", nil, "unbound parameter")
		assert.True(t, errors.Is(err, dirq.ErrCompile))
	})

	t.Run("IsCompileError", func(t *testing.T) {
		err := dirq.NewCompileError("cn", nil, "nil value")
		assert.True(t, dirq.IsCompileError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, dirq.IsCompileError(wrapped))

		assert.True(t, dirq.IsCompileError(dirq.ErrCompile))

		assert.False(t, dirq.IsCompileError(errors.New("other error")))
		assert.False(t, dirq.IsCompileError(nil))
	})
}

func TestUnsupportedFeatureError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := dirq.NewUnsupportedFeatureError("pagination")
		assert.Equal(t, "dirq: unsupported feature: pagination", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := dirq.NewUnsupportedFeatureError("sorting")
		assert.True(t, errors.Is(err, dirq.ErrUnsupported))
	})

	t.Run("IsUnsupportedFeatureError", func(t *testing.T) {
		err := dirq.NewUnsupportedFeatureError("pagination")
		assert.True(t, dirq.IsUnsupportedFeatureError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, dirq.IsUnsupportedFeatureError(wrapped))

		assert.True(t, dirq.IsUnsupportedFeatureError(dirq.ErrUnsupported))

		assert.False(t, dirq.IsUnsupportedFeatureError(errors.New("other error")))
		assert.False(t, dirq.IsUnsupportedFeatureError(nil))
	})
}
