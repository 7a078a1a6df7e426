package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/ftracker/internal/domain/model"
)

const packagesKey = "packages"

// LoadPackages reads sensor packages from a YAML file of the form
//
//	packages:
//	  - code: RUN
//	    data: [15000, 1, 75]
//
// Parameter values are passed through untyped; validation happens when the
// workout is built.
func LoadPackages(_ context.Context, path string) ([]model.Package, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrLoadPackages)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadPackages, path, err)
	}
	if !k.Exists(packagesKey) {
		return nil, fmt.Errorf("%w: %s: missing %q list", ErrLoadPackages, path, packagesKey)
	}

	var pkgs []model.Package
	if err := k.UnmarshalWithConf(packagesKey, &pkgs, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadPackages, path, err)
	}

	for i := range pkgs {
		pkgs[i].Code = strings.TrimSpace(pkgs[i].Code)
		if pkgs[i].Code == "" {
			return nil, fmt.Errorf("%w: %s: package %d has no code", ErrLoadPackages, path, i)
		}
	}
	return pkgs, nil
}
