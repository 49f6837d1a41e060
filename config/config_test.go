package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadEnvBool(t *testing.T) {
	tests := []struct {
		env     string
		initial bool
		want    bool
	}{
		{"yes", false, true},
		{"ON", false, true},
		{"1", false, true},
		{"off", true, false},
		{"0", true, false},
		{"", true, true},        // unset keeps default
		{"maybe", false, false}, // unknown keeps default
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("GARDEN_TEST_BOOL", tt.env)
			value := tt.initial
			readEnvBool("GARDEN_TEST_BOOL", &value)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestReadEnvString(t *testing.T) {
	value := "default"
	t.Setenv("GARDEN_TEST_STRING", "")
	readEnvString("GARDEN_TEST_STRING", &value)
	assert.Equal(t, "default", value)

	t.Setenv("GARDEN_TEST_STRING", "127.0.0.1:9000")
	readEnvString("GARDEN_TEST_STRING", &value)
	assert.Equal(t, "127.0.0.1:9000", value)
}

func TestReadEnvList(t *testing.T) {
	value := []string{"Sun"}

	t.Setenv("GARDEN_TEST_LIST", "")
	readEnvList("GARDEN_TEST_LIST", &value)
	assert.Equal(t, []string{"Sun"}, value)

	t.Setenv("GARDEN_TEST_LIST", " Herb, ,Climber ,")
	readEnvList("GARDEN_TEST_LIST", &value)
	assert.Equal(t, []string{"Herb", "Climber"}, value)

	t.Setenv("GARDEN_TEST_LIST", "-")
	readEnvList("GARDEN_TEST_LIST", &value)
	assert.Empty(t, value)
}
