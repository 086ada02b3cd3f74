/*
Package builder turns a partial target configuration into a complete bundle
descriptor. It is the bridge between the project model (the 'config' package)
and the plan assembler (the 'plan' package).

Every Build call runs the same steps:

 1. Visualization: when requested, a visualizer plugin reporting to the output
    file plus ".html" is queued after the caller's plugins and the report path
    is logged.

 2. Compiler options: the project's default include pattern and module mode are
    merged with the caller's overrides, one level deep, overrides winning.

 3. Plugin chain: typescript, node-resolve and commonjs always come first and in
    that order, because each later plugin expects the module formats the earlier
    ones normalized. Caller plugins follow.

 4. Output: the fixed template (license banner, source maps, peer globals) is
    merged with the caller's output overrides key by key.

 5. Externals: the project's peer modules, then the caller's externals.

 6. Warning filter: expected warning codes are dropped; everything else is
    logged.

Build never fails and never validates caller input; the plugin factories it
calls apply defaults but accept any option value. Plugin availability is
checked once, when the Builder is created.

The visualization notice is logged at info level and surfaced warnings at warn
level, so a higher log level hides them.
*/
package builder
