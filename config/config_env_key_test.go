package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"stopLookup": map[string]any{
			"cacheTtl": "10m",
		},
		"notifier": map[string]any{
			"mattermostWebhookUrl": "",
			"smtp": map[string]any{
				"host": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "STOPLOOKUP_CACHETTL", want: "stopLookup.cacheTtl"},
		{envKey: "NOTIFIER_MATTERMOSTWEBHOOKURL", want: "notifier.mattermostWebhookUrl"},
		{envKey: "NOTIFIER_SMTP_HOST", want: "notifier.smtp.host"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
