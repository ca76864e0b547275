package main

import (
	"strings"

	"github.com/satkerboard/ikpagrid/internal/catalog"
	"github.com/satkerboard/ikpagrid/internal/config"
)

// loadRunConfig layers global config, the config in the working directory
// and the flag overrides, validates the result and loads its catalog.
func loadRunConfig(flags *config.Config) (*config.Config, *catalog.Catalog, error) {
	fileCfg, err := config.LoadLayered(".")
	if err != nil {
		return nil, nil, exitError(ExitInvalidArgs, "ikpagrid: failed to load config (%v)", err)
	}
	cfg := config.Merge(fileCfg, flags)
	if err := config.Validate(cfg); err != nil {
		return nil, nil, exitError(ExitInvalidArgs, "ikpagrid: %v", err)
	}

	cat, err := catalog.LoadFS(cmdFS, cfg.CatalogFile)
	if err != nil {
		return nil, nil, exitError(ExitInvalidArgs, "ikpagrid: %v", err)
	}
	return cfg, cat.WithFallback(cfg.FallbackText), nil
}

// resolveInputs makes every argument absolute and checks it exists.
func resolveInputs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		abs, err := cmdFS.Abs(a)
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "ikpagrid: cannot resolve path %q (%v)", a, err)
		}
		info, err := cmdFS.Stat(abs)
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "ikpagrid: path %q does not exist", a)
		}
		if info.IsDir() {
			return nil, exitError(ExitInvalidArgs, "ikpagrid: %q is a directory", a)
		}
		out = append(out, abs)
	}
	return out, nil
}

// trimList trims the elements of a string-slice flag, dropping blanks.
func trimList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
