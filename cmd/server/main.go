package main

import (
	"log"
	"os"
	"path/filepath"

	"piribot/internal/content"
	"piribot/internal/core"
	"piribot/internal/detect"
	httpserver "piribot/internal/http"
	"piribot/internal/llm"
	"piribot/internal/session"
)

func main() {
	// Required credentials: without them the process does not begin
	// serving.
	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Fatal("OPENAI_API_KEY must be set")
	}

	// Default conversation language, validated against the closed set.
	defaultLang, ok := content.ParseLanguage(os.Getenv("DEFAULT_LANGUAGE"))
	if !ok && os.Getenv("DEFAULT_LANGUAGE") != "" {
		log.Printf("unknown DEFAULT_LANGUAGE %q, using %q", os.Getenv("DEFAULT_LANGUAGE"), defaultLang)
	}

	// Optional static tables; a missing or corrupt file disables the
	// feature instead of failing the process.
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	faq, err := content.LoadFaq(filepath.Join(dataDir, "faq.json"))
	if err != nil {
		log.Printf("faq table not loaded, prompts will carry no examples: %v", err)
	}
	alerts, err := content.LoadAlerts(filepath.Join(dataDir, "alerts.json"))
	if err != nil {
		log.Printf("alert table not loaded, local risk detection disabled: %v", err)
	}

	sessions := session.NewStore(defaultLang)
	responder := core.NewResponder(faq, detect.New(alerts), sessions, llm.NewOpenAIClient(), defaultLang)
	srv := httpserver.NewServer(responder)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	log.Printf("Listening on %s", addr)
	if err := srv.Router().Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
