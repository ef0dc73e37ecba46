package navmenu

// IntegrationsName identifies the built-in integrations menu.
const IntegrationsName = "integrations"

// integrations is the sidebar of the docs/integrations section. Entry order is
// the rendered order. Keys must match the page slugs under that route.
var integrations = New(IntegrationsName,
	Entry{"overview", "Overview"},
	Entry{"openai", "OpenAI SDK"},
	Entry{"langchain", "Langchain"},
	Entry{"llama-index", "LlamaIndex"},
	Entry{"haystack", "Haystack"},
	Entry{"litellm", "LiteLLM"},
	Entry{"vercel-ai-sdk", "Vercel AI SDK"},
	Entry{"autogen", "AutoGen"},
	Entry{"semantic-kernel", "Semantic Kernel"},
	Entry{"dify", "Dify.AI"},
	Entry{"instructor", "Instructor"},
	Entry{"dspy", "DSPy"},
	Entry{"ollama", "Ollama"},
	Entry{"mirascope", "Mirascope"},
	Entry{"flowise", "Flowise"},
	Entry{"langflow", "Langflow"},
	Entry{"amazon-bedrock", "Amazon Bedrock"},
	Entry{"google-vertex-ai", "Google Vertex AI"},
	Entry{"mistral-sdk", "Mistral SDK"},
	Entry{"promptfoo", "Promptfoo"},
	Entry{"openwebui", "OpenWebUI"},
	Entry{"lobechat", "LobeChat"},
	Entry{"huggingface", "Huggingface"},
	Entry{"deepseek", "DeepSeek"},
	Entry{"groq-sdk", "Groq"},
	Entry{"vapi", "Vapi"},
	Entry{"goose", "Goose"},
	Entry{"other", "More Ways to Integrate"},
)

// Integrations returns the integrations sidebar exactly as declared.
func Integrations() Menu {
	return integrations
}
