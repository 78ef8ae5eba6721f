package userControllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserInputOnlySentFields(t *testing.T) {
	var in UpdateUserInput
	require.NoError(t, json.Unmarshal([]byte(`{"phone":" +55 11 99999-0000 "}`), &in))
	assert.Equal(t, map[string]interface{}{"phone": "+55 11 99999-0000"}, in.updates())

	var empty UpdateUserInput
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.Empty(t, empty.updates())
}
