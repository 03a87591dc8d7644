package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService(t *testing.T) {
	svc := NewService(NewStore(), zap.NewNop())

	t.Run("RetrieveBeforeSubmit", func(t *testing.T) {
		assert.Equal(t, "", svc.Retrieve())
	})

	t.Run("SubmitThenRetrieve", func(t *testing.T) {
		svc.Submit("hello")
		assert.Equal(t, "hello", svc.Retrieve())
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		svc.Submit("a")
		svc.Submit("b")
		assert.Equal(t, "b", svc.Retrieve())
	})

	t.Run("VerbatimText", func(t *testing.T) {
		raw := "<script>alert(1)</script>\n\tünïcode"
		svc.Submit(raw)
		assert.Equal(t, raw, svc.Retrieve())
	})
}

func TestService_SharedStore(t *testing.T) {
	store := NewStore()
	writer := NewService(store, zap.NewNop())
	reader := NewService(store, zap.NewNop())

	writer.Submit("shared")
	assert.Equal(t, "shared", reader.Retrieve())
}
