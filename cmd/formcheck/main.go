package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/yyvfuruta/formcheck/internal/formfile"
	"github.com/yyvfuruta/formcheck/internal/logger"
	"github.com/yyvfuruta/formcheck/internal/models"
	"github.com/yyvfuruta/formcheck/internal/validator"
)

func main() {
	var dev bool
	flag.BoolVar(&dev, "dev", false, "Enable godotenv")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-dev] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if dev {
		if err := godotenv.Load(); err != nil {
			slog.Error("Error loading .env file", "error", err)
			os.Exit(1)
		}
	}

	logger := logger.New()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if !run(logger, flag.Args()) {
		os.Exit(1)
	}
}

// run validates every form in paths and reports whether all of them passed.
func run(logger *slog.Logger, paths []string) bool {
	ok := true

	for _, path := range paths {
		forms, err := formfile.Load(path)
		if err != nil {
			logger.Error("Failed to load forms", "file", path, "error", err)
			ok = false
			continue
		}

		for _, form := range forms {
			if !check(logger, path, form) {
				ok = false
			}
		}
	}

	return ok
}

func check(logger *slog.Logger, path string, form *models.Form) bool {
	v := validator.New()
	models.ValidateForm(v, form)

	attrs := []any{"file", path, "uuid", form.UUID, "name", form.Name, "version", form.Version}
	if !v.Valid() {
		logger.Warn("form invalid", append(attrs, "errors", v.Errors)...)
		return false
	}

	logger.Info("form valid", attrs...)
	return true
}
