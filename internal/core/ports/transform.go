package ports

import "github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"

// Transform is a content-in/content-out capability applied to one resource.
// The resource carries the content to transform plus its source identity so
// location-sensitive transforms (path rewriting, import resolution) know
// where the content originally lived.
//
// Preprocessors that resolve nested imports report every additional local
// file folded into the output as a discovered dependency; the orchestrator
// adds them to the bundle's DependencySet before transformation completes.
type Transform func(res domain.ResolvedResource) (content string, discovered []domain.Dependency, err error)
