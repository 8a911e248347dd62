package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateETagIsDeterministic(t *testing.T) {
	id := primitive.NewObjectID()
	at := time.Now()

	first := GenerateETag(id, at)
	second := GenerateETag(id, at)
	assert.Equal(t, first, second)
	assert.True(t, len(first) > 2 && first[0] == '"' && first[len(first)-1] == '"')
}

func TestGenerateETagChangesWithUpdate(t *testing.T) {
	id := primitive.NewObjectID()
	at := time.Now()

	before := GenerateETag(id, at)
	after := GenerateETag(id, at.Add(time.Second))
	assert.NotEqual(t, before, after)

	other := GenerateETag(primitive.NewObjectID(), at)
	assert.NotEqual(t, before, other)
}
