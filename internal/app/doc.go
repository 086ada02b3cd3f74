// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load project, assemble the
// bundle plan, replay warnings, emit the plan), decoupled from any specific
// entrypoint like a CLI.
package app
