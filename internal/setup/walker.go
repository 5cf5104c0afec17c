// Package setup turns configuration into walker options
package setup

import (
	"context"
	"fmt"

	"github.com/bethropolis/rmx/internal/ignore"
	"github.com/bethropolis/rmx/internal/utils"
	"github.com/bethropolis/rmx/internal/walker"
	"github.com/spf13/afero"
)

// WalkerConfig holds all parameters needed to configure a directory walk
type WalkerConfig struct {
	RootDir      string
	UseGitignore bool
	Exclude      string
	Context      context.Context
	Fs           afero.Fs
	OnSelect     walker.SelectFunc
	Tracker      *walker.SkippedTracker
	Stats        *walker.Stats
	Logger       utils.Logger
}

// ConfigureWalker builds the ignore matcher, when one is needed, and the
// option list for walker.Collect.
func ConfigureWalker(cfg WalkerConfig) ([]walker.Option, error) {
	log := utils.OrNoop(cfg.Logger)

	patterns := ignore.SplitPatterns(cfg.Exclude)
	if len(patterns) > 0 {
		log.Info("Using custom exclude patterns: %v", patterns)
	}

	matcher, err := ignore.NewFromConfig(ignore.Config{
		RootDir:      cfg.RootDir,
		UseGitignore: cfg.UseGitignore,
		CustomRules:  patterns,
		Logger:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}
	if cfg.UseGitignore {
		log.Info("Respecting .gitignore files under %s", matcher.Root())
	}

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithFs(cfg.Fs),
		walker.WithContext(cfg.Context),
		walker.WithSelectFunc(cfg.OnSelect),
		walker.WithTracker(cfg.Tracker),
		walker.WithStats(cfg.Stats),
	}
	if matcher != nil {
		walkOptions = append(walkOptions, walker.WithIgnore(matcher))
	}

	return walkOptions, nil
}
