package service

import (
	"github.com/dtroode/passguard/internal/generator"
	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
)

// Generator produces random passwords and suggestion lists.
type Generator struct {
	transliterator generator.Transliterator
	logger         *logger.Logger
}

// NewGenerator creates a Generator. A nil transliterator leaves suggestions
// unchanged.
func NewGenerator(tr generator.Transliterator, logger *logger.Logger) *Generator {
	if tr == nil {
		tr = generator.Identity
	}
	return &Generator{transliterator: tr, logger: logger}
}

func (g *Generator) Generate(opts model.GeneratorOptions) (string, error) {
	password, err := generator.Generate(opts)
	if err != nil {
		g.logger.Debug("Generator: rejected options",
			"length", opts.Length,
			"error", err.Error())
		return "", err
	}
	return password, nil
}

func (g *Generator) Suggest(opts model.GeneratorOptions, n int) ([]model.Suggestion, error) {
	return generator.Suggest(opts, n, g.transliterator)
}
