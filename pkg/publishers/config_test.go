package publishers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adda-Baaj/bazar-khobor/pkg/publishers"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	return path
}

const validYAML = `
publishers:
  - id: alerts-queue
    type: queue
    queue:
      provider: aws-sqs
      aws:
        uri: https://sqs.ap-south-1.amazonaws.com/123/alerts
        region: ap-south-1
        access_key_id: AKIATEST
        secret_access_key: secret
  - id: webhook
    type: http
    enabled: false
    http:
      url: https://hooks.test/news
`

func TestLoadRegistry_YAML(t *testing.T) {
	path := writeTempFile(t, "publishers.yaml", validYAML)

	reg, err := publishers.LoadRegistry(path)
	require.NoError(t, err)
	require.Len(t, reg.All(), 2)

	cfg, ok := reg.ByID("alerts-queue")
	require.True(t, ok)
	require.Equal(t, publishers.TypeQueue, cfg.Type)
	require.Equal(t, publishers.QueueProviderAWSSQS, cfg.Queue.Provider)

	// Disabled entries stay loadable but drop out of Enabled().
	enabled := reg.Enabled()
	require.Len(t, enabled, 1)
	require.Equal(t, "alerts-queue", enabled[0].ID)
}

func TestLoadRegistry_JSON(t *testing.T) {
	path := writeTempFile(t, "publishers.json", `{
		"publishers": [
			{"id": "webhook", "type": "http", "http": {"url": "https://hooks.test/news"}}
		]
	}`)

	reg, err := publishers.LoadRegistry(path)
	require.NoError(t, err)

	cfg, ok := reg.ByID("webhook")
	require.True(t, ok)
	require.Equal(t, "POST", cfg.HTTP.Method)
	require.Equal(t, 5, cfg.HTTP.TimeoutSeconds)
}

func TestLoadRegistry_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_SNS_TOPIC", "arn:aws:sns:ap-south-1:123:alerts")

	path := writeTempFile(t, "publishers.yaml", `
publishers:
  - id: sns-alerts
    type: queue
    queue:
      provider: aws-sns
      sns:
        topic_arn: ${TEST_SNS_TOPIC}
        region: ap-south-1
        access_key_id: AKIATEST
        secret_access_key: secret
`)

	reg, err := publishers.LoadRegistry(path)
	require.NoError(t, err)

	cfg, _ := reg.ByID("sns-alerts")
	require.Equal(t, "arn:aws:sns:ap-south-1:123:alerts", cfg.Queue.SNS.TopicARN)
}

func TestLoadRegistry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no publishers", "publishers: []"},
		{"missing id", "publishers:\n  - type: http\n    http:\n      url: https://h.test"},
		{"unknown type", "publishers:\n  - id: x\n    type: kafka"},
		{"unknown queue provider", "publishers:\n  - id: x\n    type: queue\n    queue:\n      provider: rabbitmq"},
		{"incomplete sqs", "publishers:\n  - id: x\n    type: queue\n    queue:\n      provider: aws-sqs\n      aws:\n        uri: https://sqs.test/q"},
		{"http without url", "publishers:\n  - id: x\n    type: http\n    http:\n      method: POST"},
		{"gcp without topic", "publishers:\n  - id: x\n    type: queue\n    queue:\n      provider: gcp\n      gcp:\n        project_id: p"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "publishers.yaml", tt.content)
			_, err := publishers.LoadRegistry(path)
			require.Error(t, err)
		})
	}
}

func TestLoadRegistry_DuplicateID(t *testing.T) {
	path := writeTempFile(t, "publishers.yaml", `
publishers:
  - id: same
    type: http
    http:
      url: https://one.test
  - id: same
    type: http
    http:
      url: https://two.test
`)

	_, err := publishers.LoadRegistry(path)
	require.ErrorContains(t, err, "duplicate publisher id")
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := publishers.LoadRegistry("/nonexistent/publishers.yaml")
	require.Error(t, err)

	_, err = publishers.LoadRegistry("  ")
	require.Error(t, err)
}
