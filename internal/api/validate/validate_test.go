package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	assert.NoError(t, Collect(Required("title", "T"), Required("content", "C")))

	err := Collect(Required("title", ""), Required("content", "C"), Required("author", "   "))
	require.Error(t, err)

	var errs Errs
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	assert.Equal(t, "title: required; author: required", err.Error())
}

func TestEmail(t *testing.T) {
	assert.Nil(t, Email("email", "reader@example.com"))
	assert.Equal(t, "required", Email("email", "").Msg)
	assert.Equal(t, "invalid email", Email("email", "not-an-email").Msg)
	assert.Equal(t, "invalid email", Email("email", "Reader <reader@example.com>").Msg)
}
