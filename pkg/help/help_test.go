package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/summarizer/models"
)

func TestColdstartYAML_Parses(t *testing.T) {
	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(ColdstartYAML), &doc))

	assert.Contains(t, doc, "commands")
	assert.Contains(t, doc, "exit_codes")
}

func TestColdstartYAML_ConfigExample(t *testing.T) {
	var doc struct {
		ConfigFile string `yaml:"config_file"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(ColdstartYAML), &doc))

	cfg := models.DefaultConfig()
	require.NoError(t, yaml.Unmarshal([]byte(doc.ConfigFile), cfg))
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, models.DefaultAPIURL, cfg.APIURL)
}
