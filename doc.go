// Package nodeopts parses, filters, and re-serializes Node.js interpreter
// options, such as the contents of the NODE_OPTIONS environment variable. A
// permissive tokenizer accepts unknown flags without erroring, and a
// reattachment pass restores values that were separated from their flag by
// whitespace instead of an "=" sign. This lets a parent process strip debugger
// flags, or compute the effective inspect address, before relaunching a child
// with the remaining options.
package nodeopts
