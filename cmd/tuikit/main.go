package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/tuikit/internal/app"
	"github.com/matheus3301/tuikit/internal/paths"
	"go.uber.org/fx"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	docFlag := flag.String("doc", app.DefaultDocument, "document to open")
	flag.Parse()

	profile := paths.ResolveProfile(*profileFlag)
	if err := paths.ValidateProfile(profile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fxApp := fx.New(
		app.Module(app.Params{Profile: profile, Document: *docFlag}),
	)

	fxApp.Run()
}
