package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode the top-level blocks of any project file.
type fileRoot struct {
	Libraries []*Library `hcl:"library,block"`
	Remain    hcl.Body   `hcl:",remain"`
}

// Library represents a `library` block. Pointer fields stay nil when the
// attribute is absent, which is how an override is told apart from a default.
type Library struct {
	Name             string      `hcl:"name,label"`
	FileName         *string     `hcl:"file_name,optional"`
	Input            *string     `hcl:"input,optional"`
	OutDir           *string     `hcl:"out_dir,optional"`
	LegacyTarget     *string     `hcl:"legacy_target,optional"`
	ModernTarget     *string     `hcl:"modern_target,optional"`
	SuppressWarnings *[]string   `hcl:"suppress_warnings,optional"`
	Peers            []*Peer     `hcl:"peer,block"`
	License          *License    `hcl:"license,block"`
	TypeScript       *TypeScript `hcl:"typescript,block"`
	CommonJS         *CommonJS   `hcl:"commonjs,block"`
}

// Peer represents a `peer "<module>" { global = "..." }` block.
type Peer struct {
	Module string `hcl:"module,label"`
	Global string `hcl:"global"`
}

// License represents the `license` block.
type License struct {
	Holder *string `hcl:"holder,optional"`
	Year   *int    `hcl:"year,optional"`
	Text   *string `hcl:"text,optional"`
}

// TypeScript represents the `typescript` block.
type TypeScript struct {
	Include *[]string `hcl:"include,optional"`
	Module  *string   `hcl:"module,optional"`
}

// CommonJS represents the `commonjs` block.
type CommonJS struct {
	Ignore       *[]string            `hcl:"ignore,optional"`
	Include      *string              `hcl:"include,optional"`
	NamedExports *map[string][]string `hcl:"named_exports,optional"`
}
