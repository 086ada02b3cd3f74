// Package hcl is the HCL implementation of config.Loader. It decodes a single
// `library` block, spread over one file or a directory of .hcl files, and
// overlays every attribute it finds on config.Defaults().
package hcl
