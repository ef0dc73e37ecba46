package navmenu

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegrations_Validates(t *testing.T) {
	require.NoError(t, Integrations().Validate())
}

func TestIntegrations_KeysArePathSegments(t *testing.T) {
	for i, key := range Integrations().Keys() {
		require.NotEmpty(t, key, "position %d", i)
		require.True(t, ValidKey(key), "key %q at %d", key, i)
	}
}

func TestIntegrations_KeysUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, key := range Integrations().Keys() {
		require.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true
	}
}

func TestIntegrations_DeclarationOrder(t *testing.T) {
	m := Integrations()

	// pages/docs/integrations/_meta.tsx declares 28 entries, overview through other.
	require.Equal(t, 28, m.Len())
	require.Equal(t, Entry{"overview", "Overview"}, m.At(0))
	require.Equal(t, Entry{"openai", "OpenAI SDK"}, m.At(1))
	require.Equal(t, Entry{"other", "More Ways to Integrate"}, m.At(m.Len()-1))

	require.Equal(t, []string{
		"overview", "openai", "langchain", "llama-index", "haystack", "litellm",
		"vercel-ai-sdk", "autogen", "semantic-kernel", "dify", "instructor", "dspy",
		"ollama", "mirascope", "flowise", "langflow", "amazon-bedrock", "google-vertex-ai",
		"mistral-sdk", "promptfoo", "openwebui", "lobechat", "huggingface", "deepseek",
		"groq-sdk", "vapi", "goose", "other",
	}, m.Keys())
}

func TestIntegrations_Idempotent(t *testing.T) {
	first := Integrations()
	second := Integrations()
	require.True(t, first.Equal(second))
	require.Equal(t, first.Entries(), second.Entries())
}

func TestIntegrations_EntriesIsACopy(t *testing.T) {
	entries := Integrations().Entries()
	entries[0].Label = "Changed"
	require.Equal(t, "Overview", Integrations().At(0).Label)
}

func TestIntegrations_ConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := 0
			for range Integrations().All() {
				n++
			}
			if n != Integrations().Len() {
				t.Errorf("iterated %d entries", n)
			}
		}()
	}
	wg.Wait()
}
