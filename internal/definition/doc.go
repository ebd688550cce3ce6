// Package definition loads declarative wizard documents and compiles them
// into navigator configurations.
//
// A document lists the wizard's steps, the fields shown on each step, the
// rules that pick the next step and the validation rules that gate forward
// navigation. [Load] reads YAML, JSON or TOML, [Definition.Validate] checks
// the step graph, and [Definition.Compile] turns the document plus an
// [Answers] store into a navigator.Config whose resolvers and validators
// read the answers at navigation time.
package definition
