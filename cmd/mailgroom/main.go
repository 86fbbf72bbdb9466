package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"mailgroom/internal/app"
	"mailgroom/internal/config"
	"mailgroom/internal/normalize"
	"mailgroom/internal/validate"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		return
	}
	cmd, arg := os.Args[1], os.Args[2]

	cfg, err := config.Load(os.Getenv("MG_CONFIG"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	appInstance, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init error: %v", err)
	}
	defer appInstance.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {
	case "normalize":
		res := normalize.NormalizeWithSuggestion(ctx, arg, appInstance.Options, appInstance.NormalizeSuggester())
		printJSON(res)
	case "validate":
		findings := validate.Validate(arg, validate.Options{
			FixDomains: appInstance.Options.FixDomains,
			FixTlds:    appInstance.Options.FixTlds,
			Blocklist:  appInstance.Options.Blocklist,
			ASCIIOnly:  appInstance.Options.ASCIIOnly,
			Fuzzy:      appInstance.Options.Fuzzy,
		})
		printJSON(findings)
	case "suggest":
		suggester := appInstance.NormalizeSuggester()
		if suggester == nil {
			log.Fatalf("no embedding provider configured")
		}
		sug, err := suggester.Suggest(ctx, arg)
		if err != nil {
			log.Fatalf("suggestion error: %v", err)
		}
		printJSON(sug)
	default:
		usage()
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode error: %v", err)
	}
	fmt.Println(string(out))
}

func usage() {
	fmt.Println("usage: mailgroom <normalize|validate|suggest> <address-or-domain>")
	fmt.Println("  MG_CONFIG points at an optional yaml config file")
}
