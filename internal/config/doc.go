// Package config defines the format-agnostic project model: the identity of the
// library being packaged (names, paths, peer dependencies, license) and the
// fixed plugin defaults the descriptor builder merges caller overrides into.
//
// Defaults() reproduces the coco-ssd packaging exactly. A Loader may overlay a
// project file on top of it; the concrete HCL implementation lives in a
// separate package.
package config
