// Package registry provides the central "glue" for the plugin module system.
//
// The Registry stores the mapping between the plugin names written into bundle
// descriptors (e.g., "typescript", "terser") and the compiled Go factories that
// construct those plugin invocations with their defaults applied.
//
// During application startup, every core module registers itself and the
// builder then validates that all plugins it needs are present, so a missing
// module is reported once at startup instead of on the first build.
package registry
