// Package app contains the core application logic. It defines the App
// struct, its configuration, and the run lifecycle that turns the parsed
// command line into a finished stream transform, decoupled from the CLI.
//
// A run has three phases:
//
//  1. NewApp loads the optional settings file, applies environment
//     overrides, validates the result and builds an isolated logger tagged
//     with a run id.
//  2. Run compiles the character sets. Every set error is fatal and is
//     reported before a single input byte is read.
//  3. Run streams stdin to stdout through the translate or delete transform.
package app
